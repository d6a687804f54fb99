package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-api/internal/config"
	"storefront-api/internal/db"
	"storefront-api/internal/httpserver"
	"storefront-api/internal/ratelimit"
	addressrepo "storefront-api/internal/repository/address"
	bannerrepo "storefront-api/internal/repository/banner"
	categoryrepo "storefront-api/internal/repository/category"
	orderrepo "storefront-api/internal/repository/order"
	productrepo "storefront-api/internal/repository/product"
	tokenrepo "storefront-api/internal/repository/token"
	userrepo "storefront-api/internal/repository/user"
	cartsvc "storefront-api/internal/service/cart"
	catalogsvc "storefront-api/internal/service/catalog"
	ordersvc "storefront-api/internal/service/order"
	shippingsvc "storefront-api/internal/service/shipping"
	usersvc "storefront-api/internal/service/user"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Printf("redis unreachable at %s, running without cache: %v", cfg.RedisAddr, err)
		}
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	bannerRepo := bannerrepo.NewPostgres(dbpool)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	addressRepo := addressrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	catalogService := catalogsvc.New(productRepo, categoryRepo, bannerRepo)
	userService := usersvc.New(userRepo, addressRepo, tokenRepo)
	shippingService := shippingsvc.New(rdb, logger)
	cartService := cartsvc.New(productRepo, orderRepo, addressRepo, shippingService, cfg.CheckoutBaseURL)
	orderService := ordersvc.New(orderRepo, productRepo)
	limiter := ratelimit.New(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:            catalogService,
		Cart:               cartService,
		Users:              userService,
		Orders:             orderService,
		Shipping:           shippingService,
		Limiter:            limiter,
		AssetBaseURL:       cfg.AssetBaseURL,
		ExposeErrorDetails: cfg.ExposeErrorDetails,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
