package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/wwdevkhati/shop-backend/internal/config"
	"github.com/wwdevkhati/shop-backend/internal/http"
	"github.com/wwdevkhati/shop-backend/internal/log"
	"github.com/wwdevkhati/shop-backend/internal/repository"
	"github.com/wwdevkhati/shop-backend/internal/service"
	"github.com/wwdevkhati/shop-backend/internal/storage/db"
	"github.com/wwdevkhati/shop-backend/internal/storage/imagestore"
	"github.com/wwdevkhati/shop-backend/internal/storage/mail"
	"github.com/wwdevkhati/shop-backend/internal/telemetry"
	"github.com/wwdevkhati/shop-backend/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running shop server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log        config.Log
		Postgres   config.Postgres
		HTTP       config.HTTP
		Admin      config.Admin
		SMTP       config.SMTP
		Cloudinary config.Cloudinary
		Otel       config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)

	uploader, err := imagestore.NewCloudinaryUploader(cfg.Cloudinary)
	if err != nil {
		return fmt.Errorf("error creating cloudinary uploader: %w", err)
	}

	notifier := mail.NewSMTPNotifier(cfg.SMTP)

	productRepository := repository.NewProductRepository(dbClient)
	orderRepository := repository.NewOrderRepository(dbClient)

	catalogService := service.NewCatalogService(productRepository, uploader)
	orderService := service.NewOrderService(logger, orderRepository, notifier)

	interruptChan := cmdutil.InterruptChan()

	svc := http.New(cfg.HTTP, cfg.Admin, logger, catalogService, orderService, dbClient)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}

	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	<-interruptChan

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
