// Package main runs a small HTTP server that keeps visitor details in an
// encrypted "userInfo" cookie segment.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/secretcookie/pkg/config"
	"github.com/dmitrymomot/secretcookie/pkg/logger"
	"github.com/dmitrymomot/secretcookie/pkg/segment"
)

type appConfig struct {
	Addr    string `env:"HTTP_ADDR" envDefault:":8080"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_SERVICE" envDefault:"secretcookie-demo"`
	Segment segment.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	slog.SetDefault(log)

	segments, err := segment.NewFromConfig(cfg.Segment, segment.WithLogger(log))
	if err != nil {
		log.Error("failed to init segments", logger.Error(err))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(segments),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		<-sigCh

		log.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("server shutdown error", logger.Error(err))
		}
	}()

	log.Info("starting server", slog.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", logger.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}
