package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conventional-commitizen/conventional-commitizen/internal/config"
	"github.com/conventional-commitizen/conventional-commitizen/internal/lint"
	"github.com/conventional-commitizen/conventional-commitizen/internal/parser"
	"github.com/conventional-commitizen/conventional-commitizen/internal/server"
	"github.com/conventional-commitizen/conventional-commitizen/internal/storage"
	"github.com/conventional-commitizen/conventional-commitizen/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}
	log.SetLevel(cfg.Log.Level)

	// Resolve the configured parser implementation and compile its rules.
	p, err := parser.DefaultRegistry().New(cfg.Parser.Name, parser.Config{
		Header:  cfg.Parser.Header,
		Footers: cfg.Parser.Footers,
	})
	if err != nil {
		log.Fatal("Failed to set up parser", "parser", cfg.Parser.Name, "error", err)
	}
	log.Info("Parser ready", "parser", cfg.Parser.Name, "footers", len(cfg.Parser.Footers))

	var checker *lint.Checker
	if cfg.Lint.Enabled {
		checker, err = lint.NewChecker(cfg.Lint, log)
		if err != nil {
			log.Fatal("Failed to build lint rules", "error", err)
		}
	}

	var store storage.Store
	if cfg.Cache.Enabled {
		redisStore := storage.NewRedisStore(cfg.Cache)
		if err := redisStore.Health(context.Background()); err != nil {
			log.Fatal("Failed to connect to redis", "addr", cfg.Cache.Redis.Addr, "error", err)
		}
		defer redisStore.Close()
		store = redisStore
		log.Info("Connected to redis", "addr", cfg.Cache.Redis.Addr)
	}

	srv := server.NewServer(cfg, p, checker, store, log)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: srv.Router(),
	}

	go func() {
		log.Info("Starting server", "port", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}
