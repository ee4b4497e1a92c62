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

	"blogspace/internal/config"
	"blogspace/internal/handlers"
	"blogspace/internal/router"
	"blogspace/internal/state"
	"blogspace/internal/store"
	"blogspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, log)

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	posts, err := store.New(store.Config{
		SearchCacheSize: cfg.SearchCacheSize,
		SearchCacheTTL:  cfg.SearchCacheTTL,
	}, store.SeedPosts(cfg.FakePosts))
	if err != nil {
		return err
	}

	states, err := state.NewRegistry(cfg.VisitorCapacity, cfg.VisitorTTL)
	if err != nil {
		return err
	}

	r, err := router.New(router.Options{
		SessionSecret: cfg.SessionSecret,
		TemplatesDir:  cfg.TemplatesDir,
		StaticDir:     cfg.StaticDir,
		Logger:        log,
	}, handlers.NewBlogHandler(posts, states))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", srv.Addr, "posts", posts.Len())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shCtx)

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
