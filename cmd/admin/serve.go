package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	pg "riavet-admin/internal/adapters/storage/postgres"
	"riavet-admin/internal/config"
	"riavet-admin/internal/domain/activity"
	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/platform/metrics"
	"riavet-admin/internal/router"
	"riavet-admin/internal/toast"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	m := metrics.New()

	backends, err := router.NewBackends(cfg.Backends, cfg.HTTPTimeout, log, m)
	if err != nil {
		return err
	}

	var activityRepo activity.Repository
	if cfg.DBDSN != "" {
		db, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := pg.Migrate(ctx, db); err != nil {
			return err
		}
		activityRepo = pg.NewActivityRepo(db)
		log.Info("activity journal on postgres", nil)
	}

	toasts := toast.New(toast.Options{
		MaxEntries:      cfg.ToastMaxEntries,
		DefaultDuration: cfg.ToastDefaultDuration,
	})
	defer toasts.Close()

	srv := &http.Server{
		Addr: cfg.ListenAddr(),
		Handler: router.NewRouter(router.Options{
			Backends: backends,
			Activity: activityRepo,
			Toasts:   toasts,
			Metrics:  m,
			Log:      log,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.HTTPTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "backends": cfg.Backends.All()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
