package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"handestiy-storefront/internal/backend"
	"handestiy-storefront/internal/config"
	"handestiy-storefront/internal/httpserver"
	"handestiy-storefront/internal/metrics"
	"handestiy-storefront/internal/repository/cartstate"
	"handestiy-storefront/internal/repository/credential"
	cartsvc "handestiy-storefront/internal/service/cart"
	catalogsvc "handestiy-storefront/internal/service/catalog"
	pricingsvc "handestiy-storefront/internal/service/pricing"
	sessionsvc "handestiy-storefront/internal/service/session"
)

func main() {
	configFile := flag.String("config", "", "optional config file (yaml), hot-reloaded")
	flag.Parse()

	logger := log.New(os.Stdout, "[web] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	loader, err := config.Load(*configFile, config.FromEnv(), logger)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	cfg := loader.Config()

	fs := afero.NewOsFs()
	cartRepo := cartstate.NewFile(fs, cfg.StateDir)
	credRepo := credential.NewFile(fs, cfg.StateDir)

	client := backend.New(cfg.BackendURL, logger)
	cartStore := cartsvc.NewStore(cartRepo, logger)
	catalogQuery := catalogsvc.New()
	pricingEngine := pricingsvc.New(cfg.Shipping, client, cartStore, logger)
	guard := sessionsvc.NewGuard(credRepo, logger)
	serverMetrics := metrics.NewServerMetrics()

	loader.Subscribe(func(next config.Config) {
		if err := pricingEngine.UpdateRates(next.Shipping); err != nil {
			logger.Printf("config reload: %v", err)
		}
	})
	loader.Watch()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Backend:        client,
		Cart:           cartStore,
		Catalog:        catalogQuery,
		Pricing:        pricingEngine,
		Guard:          guard,
		Metrics:        serverMetrics,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (backend %s)", cfg.HTTPAddr, cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
