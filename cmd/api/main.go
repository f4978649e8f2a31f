package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"kiegw/internal/adapter/repo"
	"kiegw/internal/http/handlers"
	httpapi "kiegw/internal/http/httpapi"
	"kiegw/internal/infra"
	"kiegw/internal/kie"
	"kiegw/internal/reconcile"
	"kiegw/internal/tools"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	if err := repo.EnsureSchema(ctx, dbpool); err != nil {
		logger.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	client, err := kie.NewClient(kie.Options{
		APIKey:         cfg.KieAPIKey,
		BaseURL:        cfg.KieBaseURL,
		Logger:         &logger,
		RequestTimeout: cfg.KieTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build kie client")
	}

	tasks := repo.NewTaskRepository(dbpool)
	reconciler, err := reconcile.NewReconciler(reconcile.Options{
		Client: client,
		Tasks:  tasks,
		Logger: &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build reconciler")
	}

	app := &handlers.App{
		Cfg:       cfg,
		Log:       &logger,
		Tools:     tools.NewRegistry(),
		Kie:       client,
		Tasks:     tasks,
		Refresher: reconciler,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
