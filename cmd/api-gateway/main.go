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

	"github.com/jcmexdev/solid-examples/internal/api-gateway/infra/adapters/service"
	"github.com/jcmexdev/solid-examples/internal/api-gateway/infra/httpx"
	"github.com/jcmexdev/solid-examples/internal/order-service/app"
	"github.com/jcmexdev/solid-examples/internal/pkg/config"
	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
	"github.com/jcmexdev/solid-examples/internal/pkg/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load("api-gateway")
	telemetry.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.SetupTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	checkout := app.NewCheckoutService(sink.New(cfg.OutputEnabled))
	handler := httpx.NewHandler(service.NewLocalOrderService(checkout))

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpx.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		slog.Info("api gateway running", "addr", cfg.HTTPAddr)
		srvErr <- server.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
