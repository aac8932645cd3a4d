package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shiprakart/seller-backend/api/routes"
	"github.com/shiprakart/seller-backend/internal/bulkimport"
	"github.com/shiprakart/seller-backend/internal/catalog"
	"github.com/shiprakart/seller-backend/internal/hierarchy"
	"github.com/shiprakart/seller-backend/internal/identity"
	"github.com/shiprakart/seller-backend/internal/inventory"
	"github.com/shiprakart/seller-backend/internal/onboarding"
	"github.com/shiprakart/seller-backend/internal/orders"
	"github.com/shiprakart/seller-backend/pkg/config"
	"github.com/shiprakart/seller-backend/pkg/db"
	"github.com/shiprakart/seller-backend/pkg/logger"
	"github.com/shiprakart/seller-backend/pkg/migrate"
	"github.com/shiprakart/seller-backend/pkg/otp"
	"github.com/shiprakart/seller-backend/pkg/redis"
	"github.com/shiprakart/seller-backend/pkg/storage"
	"github.com/shiprakart/seller-backend/pkg/storage/cloudinary"
)

const (
	localUploadDir  = "uploads"
	shutdownTimeout = 10 * time.Second
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

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	store, err := newObjectStore(cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create object store", err)
		os.Exit(1)
	}

	conn := dbClient.DB()
	otpStore := otp.NewStore(redisClient, cfg.OTP)

	identitySvc, err := identity.NewService(identity.NewRepository(conn), otpStore, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create identity service", err)
		os.Exit(1)
	}
	onboardingSvc, err := onboarding.NewService(onboarding.NewRepository(conn), onboarding.NoopVerifier{})
	if err != nil {
		logg.Error(context.Background(), "failed to create onboarding service", err)
		os.Exit(1)
	}
	hierarchySvc, err := hierarchy.NewService(hierarchy.NewRepository(conn))
	if err != nil {
		logg.Error(context.Background(), "failed to create hierarchy service", err)
		os.Exit(1)
	}
	catalogSvc, err := catalog.NewService(catalog.NewRepository(conn), dbClient, store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	inventorySvc, err := inventory.NewService(inventory.NewRepository(conn), dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}
	bulkSvc, err := bulkimport.NewService(bulkimport.NewRepository(conn), dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create bulk import service", err)
		os.Exit(1)
	}
	ordersSvc, err := orders.NewService(orders.NewRepository(conn))
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	router := routes.NewRouter(routes.Deps{
		Config:     cfg,
		Logger:     logg,
		Identity:   identitySvc,
		Onboarding: onboardingSvc,
		Hierarchy:  hierarchySvc,
		Catalog:    catalogSvc,
		Inventory:  inventorySvc,
		BulkImport: bulkSvc,
		Orders:     ordersSvc,
		Store:      store,
		DB:         dbClient,
		Cache:      redisClient,
	})

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
		Addr:    addr,
		Handler: router,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutting down api server")
		timeout, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(timeout); err != nil {
			logg.Error(ctx, "error during shutdown", err)
		}
	}
}

func newObjectStore(cfg *config.Config, logg *logger.Logger) (storage.ObjectStore, error) {
	if cfg.Cloudinary.Enabled() {
		return cloudinary.NewClient(cfg.Cloudinary, logg)
	}
	return storage.NewLocalStore(localUploadDir)
}
