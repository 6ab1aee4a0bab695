// The worker drains the transactional outbox: it publishes committed
// domain events to the broker, retries failures with backoff, and prunes
// published messages past the retention window.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sbhunu/landadmin/internal/app"
	"github.com/sbhunu/landadmin/pkg/config"
	"github.com/sbhunu/landadmin/pkg/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logCfg := observability.DefaultLogConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.ServiceName = "landadmin-worker"
	logger := observability.NewLogger(logCfg)

	logger.Info("starting worker", "env", cfg.AppEnv)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	container.OutboxProcessor.Start(ctx)
	logger.Info("outbox processor started",
		"poll_interval", cfg.OutboxPollInterval,
		"batch_size", cfg.OutboxBatchSize,
		"max_retries", cfg.OutboxMaxRetries,
	)

	cleanupTicker := time.NewTicker(cfg.OutboxCleanupInterval)
	defer cleanupTicker.Stop()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-cleanupTicker.C:
				deleted, err := container.OutboxRepo.DeleteOld(ctx, cfg.OutboxRetention)
				if err != nil {
					logger.Error("outbox cleanup failed", "error", err)
					continue
				}
				if deleted > 0 {
					logger.Info("outbox cleanup completed",
						"deleted", deleted,
						"retention", cfg.OutboxRetention,
					)
				}
			}
		}
	}()

	if cfg.WorkerHealthAddr != "" {
		serveHealth(ctx, cfg.WorkerHealthAddr, container, logger)
	}

	<-ctx.Done()
	logger.Info("shutting down worker")
}

func serveHealth(ctx context.Context, addr string, container *app.Container, logger *slog.Logger) {
	registry := observability.NewHealthRegistry()
	registry.Register("database", func(ctx context.Context) error {
		return container.Conn.Ping(ctx)
	})
	registry.Register("outbox", func(ctx context.Context) error {
		if !container.OutboxProcessor.IsRunning() {
			return errors.New("processor not running")
		}
		return nil
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		checkCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		results := registry.Check(checkCtx)
		w.Header().Set("Content-Type", "application/json")
		for _, r := range results {
			if r.Status != observability.HealthStatusHealthy {
				w.WriteHeader(http.StatusServiceUnavailable)
				break
			}
		}
		_ = json.NewEncoder(w).Encode(results)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("health server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("health server shutdown error", "error", err)
		}
	}()
}
