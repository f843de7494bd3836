package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/httpserver"
	"storefront/internal/metrics"
	"storefront/internal/relay"
	cartrepo "storefront/internal/repository/cart"
	categoryrepo "storefront/internal/repository/category"
	customerrepo "storefront/internal/repository/customer"
	orderrepo "storefront/internal/repository/order"
	outboxrepo "storefront/internal/repository/outbox"
	productrepo "storefront/internal/repository/product"
	tokenrepo "storefront/internal/repository/token"
	cartsvc "storefront/internal/service/cart"
	catalogsvc "storefront/internal/service/catalog"
	checkoutsvc "storefront/internal/service/checkout"
	identitysvc "storefront/internal/service/identity"
	ordersvc "storefront/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	m := metrics.New(nil)

	productRepo := productrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	catalogService := catalogsvc.New(productRepo, categoryRepo)

	cartRepo := cartrepo.NewPostgres(dbpool)
	cartService := cartsvc.New(cartRepo, productRepo)

	orderRepo := orderrepo.NewPostgres(dbpool, cfg.OrderEventsTopic, logger)
	checkoutService := checkoutsvc.New(orderRepo, m.OrdersPlaced, logger)
	orderService := ordersvc.New(orderRepo, productRepo)

	customerRepo := customerrepo.NewPostgres(dbpool)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	identityService := identitysvc.New(customerRepo, tokenRepo, cfg.AccessTokenTTL)

	if len(cfg.KafkaBrokers) > 0 {
		publisher := relay.NewKafkaPublisher(cfg.KafkaBrokers, cfg.OrderEventsTopic)
		defer publisher.Close()
		outboxRelay := relay.New(outboxrepo.NewPostgres(dbpool), publisher, cfg.OutboxPollInterval, logger)
		go outboxRelay.Run(ctx)
		logger.Printf("outbox relay started, brokers=%v topic=%s", cfg.KafkaBrokers, cfg.OrderEventsTopic)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Identity: identityService,
		Catalog:  catalogService,
		Cart:     cartService,
		Checkout: checkoutService,
		Orders:   orderService,
		Metrics:  m,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
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

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
