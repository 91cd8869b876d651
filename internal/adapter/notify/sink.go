// Package notify delivers viewer notifications. The server has no toast
// surface of its own, so notifications are written to the structured log and
// returned to the REST caller alongside the snapshot.
package notify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

// LogSink writes each notification as a log record.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{log: logger.With("adapter", "notify")}
}

// Notify logs n at a level matching its category.
func (s *LogSink) Notify(ctx context.Context, n domain.Notification) {
	s.log.Log(ctx, levelFor(n.Level), "notification",
		slog.String("category", string(n.Level)),
		slog.String("message", n.Message),
	)
}

func levelFor(l domain.NotificationLevel) slog.Level {
	switch l {
	case domain.NotificationWarning:
		return slog.LevelWarn
	case domain.NotificationDanger:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
