package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/flashdeck/internal/adapter/notify"
	"github.com/heartmarshall/flashdeck/internal/config"
	"github.com/heartmarshall/flashdeck/internal/domain"
	"github.com/heartmarshall/flashdeck/internal/service/collection"
	"github.com/heartmarshall/flashdeck/internal/service/viewer"
	"github.com/heartmarshall/flashdeck/internal/transport/middleware"
	"github.com/heartmarshall/flashdeck/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// collection store, performs the initial deck selection and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("decks", cfg.Decks.Source),
	)

	store, closeStore, err := openStore(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeStore()

	source, err := newDeckSource(cfg.Decks, logger)
	if err != nil {
		return err
	}

	coll := collection.NewService(logger, store, cfg.Storage.CollectionKey)
	ctrl := viewer.NewController(logger, source, coll, notify.NewLogSink(logger), viewer.Options{
		FlipDuration: cfg.Viewer.FlipDuration,
		Orientation:  domain.Orientation(cfg.Viewer.Orientation),
		Shuffle:      cfg.Viewer.Shuffle,
		DefaultDeck:  domain.DeckKey(cfg.Decks.DefaultDeck),
	})

	snap, err := ctrl.Start(ctx)
	if err != nil {
		logger.Warn("initial deck selection failed", slog.String("error", err.Error()))
	} else {
		logger.Info("viewer ready",
			slog.String("deck", snap.Selected.String()),
			slog.Int("cards", snap.Total),
		)
	}

	handler := newRouter(cfg, logger, store, ctrl, coll)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

func newRouter(cfg *config.Config, logger *slog.Logger, store kvStore, ctrl *viewer.Controller, coll *collection.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Standard(logger, cfg.CORS))

	rest.NewHealthHandler(store, cfg.Storage.Driver, Version).Routes(r)
	r.Route("/api/v1", rest.NewViewerHandler(ctrl, coll, logger).Routes)

	return r
}
