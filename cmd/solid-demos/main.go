package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jcmexdev/solid-examples/internal/coordinator"
	"github.com/jcmexdev/solid-examples/internal/pkg/config"
	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
	"github.com/jcmexdev/solid-examples/internal/pkg/telemetry"
	"github.com/jcmexdev/solid-examples/internal/scenarios"
)

func main() {
	cfg := config.Load("solid-demos")
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

	out := sink.New(cfg.OutputEnabled)
	steps := coordinator.Select(scenarios.All(out), cfg.Scenarios)
	if len(steps) == 0 {
		slog.Warn("no scenario matched DEMO_SCENARIOS", "scenarios", cfg.Scenarios)
		return
	}

	if err := coordinator.NewOrchestrator(steps).Start(ctx); err != nil {
		slog.Error("demo run failed", "error", err)
		stop()
		os.Exit(1)
	}
}
