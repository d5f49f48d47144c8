package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jcmexdev/store-service/internal/pkg/cache"
	"github.com/jcmexdev/store-service/internal/pkg/config"
	"github.com/jcmexdev/store-service/internal/pkg/health"
	"github.com/jcmexdev/store-service/internal/pkg/metrics"
	"github.com/jcmexdev/store-service/internal/pkg/telemetry"
	"github.com/jcmexdev/store-service/internal/store/httpx"
	"github.com/jcmexdev/store-service/internal/store/service"
	"github.com/jcmexdev/store-service/internal/store/sqlite"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	shutdownTracer, err := telemetry.SetupTracer(ctx, cfg.ServiceName)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	probes := health.NewHandler()
	probes.Register("sqlite", func(context.Context) error { return store.Ping() })

	// The in-process cache is the default; REDIS_ADDR switches to Redis so
	// several replicas can share one read-model cache.
	var readCache cache.Cache = cache.NewMemoryCache()
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr, cfg.ServiceName)
		probes.Register("redis", redisCache.Ping)
		readCache = redisCache
	}

	storeMetrics := metrics.NewStoreMetrics()
	customers := service.NewCustomerService(store.Customers(), readCache, storeMetrics)
	products := service.NewProductService(store.Products(), readCache, storeMetrics)
	orders := service.NewOrderService(store.Orders(), store.Customers(), store.Products(), readCache, storeMetrics)

	handler := httpx.NewHandler(customers, products, orders)
	router := httpx.NewRouter(handler, probes)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("store service running", "addr", cfg.HTTPAddr, "db", cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}
}
