package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"kiegw/internal/adapter/repo"
	"kiegw/internal/infra"
	"kiegw/internal/kie"
	"kiegw/internal/reconcile"
)

// sweepLimit caps how many tasks of each active status one tick refreshes.
const sweepLimit = 100

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	if err := repo.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("worker: schema bootstrap failed")
	}

	client, err := kie.NewClient(kie.Options{
		APIKey:         cfg.KieAPIKey,
		BaseURL:        cfg.KieBaseURL,
		Logger:         &logger,
		RequestTimeout: cfg.KieTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: failed to build kie client")
	}

	reconciler, err := reconcile.NewReconciler(reconcile.Options{
		Client: client,
		Tasks:  repo.NewTaskRepository(pool),
		Logger: &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: failed to build reconciler")
	}

	if err := run(ctx, reconciler, cfg.WorkerPollInterval, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("worker: stopped with error")
	}
	logger.Info().Msg("worker: stopped")
}

// run sweeps pending and processing tasks on every tick until the context is
// canceled.
func run(ctx context.Context, reconciler *reconcile.Reconciler, interval time.Duration, logger infra.Logger) error {
	logger.Info().Dur("interval", interval).Msg("worker: started")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := reconciler.RefreshActive(ctx, sweepLimit)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				logger.Error().Err(err).Msg("worker: sweep failed")
				continue
			}
			if n > 0 {
				logger.Debug().Int("refreshed", n).Msg("worker: sweep complete")
			}
		}
	}
}
