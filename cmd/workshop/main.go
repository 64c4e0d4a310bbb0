package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Skotchmaster/workshop/internal/config"
	"github.com/Skotchmaster/workshop/internal/db"
	"github.com/Skotchmaster/workshop/internal/events"
	"github.com/Skotchmaster/workshop/internal/httpserver"
	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/repo"
	"github.com/Skotchmaster/workshop/internal/search"
	"github.com/Skotchmaster/workshop/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustOneOf(cfg.DBDriver, "DB_DRIVER", db.DriverPostgres, db.DriverSQLite)
	if cfg.DBDriver == db.DriverPostgres {
		config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL, logger)
	if err == nil {
		err = db.Migrate(ctx, gdb)
	}
	cancel()
	if err != nil {
		log.Fatalf("db: %v", err)
	}

	var publisher service.EventPublisher = events.Nop{}
	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = events.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka: %v", err)
		}
		publisher = producer
	}

	var index service.ProductIndex
	if cfg.ESURL != "" {
		esCtx, esCancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := search.NewClient(esCtx, search.Config{URL: cfg.ESURL, User: cfg.ESUser, Password: cfg.ESPassword})
		esCancel()
		if err != nil {
			logger.Warn("elasticsearch_unavailable", "error", err)
		} else {
			index = &search.ESIndex{Client: client, Index: cfg.ESIndex}
		}
	}

	r := &repo.GormRepo{DB: gdb}
	products := &service.ProductService{Repo: r, Producer: publisher, Index: index}

	e := httpserver.New(logger, &httpserver.Deps{
		Users:      &httpserver.UserHTTP{Svc: &service.UserService{Repo: r}},
		Categories: &httpserver.CategoryHTTP{Svc: &service.CategoryService{Repo: r}},
		Products: &httpserver.ProductHTTP{
			Svc:    products,
			Search: &service.SearchService{Repo: r, Index: index},
		},
		Orders:     &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Producer: publisher}},
		OrderItems: &httpserver.OrderItemHTTP{Svc: &service.OrderItemService{Repo: r, Producer: publisher}},
		Payments:   &httpserver.PaymentHTTP{Svc: &service.PaymentService{Repo: r, Producer: publisher}},
		Auth:       &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret, TokenTTL: cfg.TokenTTL}},
		JWTSecret:  cfg.JWTSecret,
		Ready:      func(ctx context.Context) error { return db.Ping(ctx, gdb) },
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("workshop listening", "addr", srv.Addr, "db_driver", cfg.DBDriver,
			"search", index != nil, "events", producer != nil, "auth", len(cfg.JWTSecret) > 0)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	if producer != nil {
		_ = producer.Close()
	}
	db.Close(gdb)

	logger.Info("workshop stopped")
}
