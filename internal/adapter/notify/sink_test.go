package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

func TestLogSink_Notify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		n         domain.Notification
		wantLevel string
	}{
		{"success", domain.AddedNotification("kutya"), "INFO"},
		{"warning", domain.DuplicateNotification("kutya"), "WARN"},
		{"danger", domain.RemovedNotification("kutya"), "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			sink := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

			sink.Notify(context.Background(), tt.n)

			var rec map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
			assert.Equal(t, "notification", rec["msg"])
			assert.Equal(t, "notify", rec["adapter"])
			assert.Equal(t, tt.wantLevel, rec["level"])
			assert.Equal(t, string(tt.n.Level), rec["category"])
			assert.Equal(t, tt.n.Message, rec["message"])
		})
	}
}
