package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrewpaige1/studynote-api/config"
	"github.com/andrewpaige1/studynote-api/handlers"
	"github.com/andrewpaige1/studynote-api/logger"
	"github.com/andrewpaige1/studynote-api/media"
	"github.com/andrewpaige1/studynote-api/middleware"
	"github.com/andrewpaige1/studynote-api/schema"
	"github.com/rs/cors"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
	}
	cfg := config.Load()

	logg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logg.Sync()

	db, err := config.Connect(cfg)
	if err != nil {
		logg.Fatal("failed to connect database", "driver", cfg.DBDriver, "error", err)
	}
	if err := schema.Bootstrap(context.Background(), db); err != nil {
		logg.Fatal("failed to create base tables", "error", err)
	}

	store, err := media.New(cfg.UploadDir, cfg.AudioDir, cfg.PublicBaseURL)
	if err != nil {
		logg.Fatal("failed to prepare media directories", "error", err)
	}

	DBHandler := &handlers.DBHandler{DB: db, Log: logg, Media: store}
	mux := http.NewServeMux()
	DBHandler.Register(mux)

	// Any origin may call the API.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         86400,
	}).Handler(middleware.RequestLog(logg)(mux))

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: corsHandler,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("starting", "addr", srv.Addr, "driver", cfg.DBDriver, "env", cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logg.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logg.Error("shutdown failed", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server stopped", "error", err)
		}
	}
}
