package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"moviesearch/httpserver"
	"moviesearch/movie"
	"moviesearch/pkg/config"
	"moviesearch/pkg/sentry"
	"moviesearch/postgres"

	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)
	sentry.Configure(cfg)

	db, err := postgres.NewConnection(postgres.Options{
		DBName:          cfg.DB.Name,
		DBUser:          cfg.DB.User,
		Password:        cfg.DB.Pass,
		Host:            cfg.DB.Host,
		Port:            strconv.Itoa(cfg.DB.Port),
		SSLMode:         cfg.DB.EnableSSL,
		MaxOpenConns:    cfg.DB.MaxConns,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		slog.Error("Cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	movieService, err := movie.NewUsecase(postgres.NewMovieRepository(db), movie.DefaultListConfig)
	if err != nil {
		slog.Error("Invalid movie listing config", "error", err)
		os.Exit(1)
	}

	server := httpserver.Default(cfg)
	server.Logger = logger
	server.MovieService = movieService

	go func() {
		slog.Info("server started!", "addr", server.Addr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
