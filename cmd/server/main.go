package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/craftline/shop/internal/config"
	"github.com/craftline/shop/internal/db"
	"github.com/craftline/shop/internal/httpserver"
	loggingmw "github.com/craftline/shop/internal/middleware/logging"
	"github.com/craftline/shop/internal/mykafka"
	"github.com/craftline/shop/internal/repo"
	"github.com/craftline/shop/internal/search"
	"github.com/craftline/shop/internal/service"

	"github.com/craftline/shop/internal/logging"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	config.MustNonEmpty(cfg.AdminUsername, "ADMIN_USERNAME")
	config.MustNonEmpty(cfg.AdminPasswordHash, "ADMIN_PASSWORD_HASH")
	config.MustNonEmpty(cfg.WhatsAppPhone, "WHATSAPP_PHONE")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := repo.Migrate(database); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = mykafka.NewProducer(cfg.KafkaBrokers)
	} else {
		logger.Warn("KAFKA_BROKERS not set, domain events disabled")
	}

	var searchClient *search.Client
	if cfg.ESURL != "" {
		searchClient, err = search.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
	} else {
		logger.Warn("ES_URL not set, fuzzy search disabled")
	}

	store := &repo.GormRepo{DB: database}

	deps := &httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{
			Svc: &service.CatalogService{Repo: store, Producer: producer, Search: searchClient},
		},
		CartHandler: &httpserver.CartHTTP{
			Svc: &service.CartService{Repo: store},
		},
		CheckoutHandler: &httpserver.CheckoutHTTP{
			Svc: &service.CheckoutService{Repo: store, Producer: producer, Phone: cfg.WhatsAppPhone},
		},
		AuthHandler: &httpserver.AuthHTTP{
			JWTSecret:         cfg.JWTSecret,
			AdminUsername:     cfg.AdminUsername,
			AdminPasswordHash: cfg.AdminPasswordHash,
		},
		JWTSecret: cfg.JWTSecret,
	}
	if searchClient != nil {
		deps.SearchHandler = &httpserver.SearchHTTP{Client: searchClient}
	}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close", "error", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
