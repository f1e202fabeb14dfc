package coordinator

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/jcmexdev/solid-examples/internal/coordinator"

// Step is a single unit of work run by the Orchestrator.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
}

// Orchestrator runs a fixed list of steps one after another.
type Orchestrator struct {
	steps []Step
}

func NewOrchestrator(steps []Step) *Orchestrator {
	return &Orchestrator{steps: steps}
}

// Start runs the steps in order and stops at the first one that fails.
// Each step gets its own span.
func (o *Orchestrator) Start(ctx context.Context) error {
	tracer := otel.Tracer(tracerName)

	for i, step := range o.steps {
		stepCtx, span := tracer.Start(ctx, step.Name())
		span.SetAttributes(attribute.Int("step.index", i))

		slog.InfoContext(stepCtx, "executing step", "step", step.Name())
		if err := step.Execute(stepCtx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.End()
			slog.ErrorContext(stepCtx, "step failed", "step", step.Name(), "error", err)
			return fmt.Errorf("step %s: %w", step.Name(), err)
		}
		span.End()
	}

	slog.InfoContext(ctx, "all steps completed", "steps", len(o.steps))
	return nil
}
