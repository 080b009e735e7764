package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pawmart/storefront-backend/api/routes"
	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/pawmart/storefront-backend/internal/checkout"
	"github.com/pawmart/storefront-backend/internal/session"
	"github.com/pawmart/storefront-backend/pkg/config"
	"github.com/pawmart/storefront-backend/pkg/logger"
	"github.com/pawmart/storefront-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	source, err := catalog.Default()
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(registry)

	manager, err := session.NewManager(session.ManagerParams{
		Catalog: source,
		Config:  cfg.Session,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go func() {
		if err := manager.Run(sweepCtx); err != nil && err != context.Canceled {
			logg.Error(sweepCtx, "session sweep stopped unexpectedly", err)
		}
	}()

	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Config:  cfg.Checkout,
		Logger:  logg,
		Metrics: storeMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:   cfg,
			Logger:   logg,
			Catalog:  source,
			Manager:  manager,
			Checkout: checkoutService,
			Metrics:  storeMetrics,
			Registry: registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
