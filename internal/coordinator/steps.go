package coordinator

import "context"

// StepFunc adapts a plain function into a Step.
type StepFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func NewStepFunc(name string, fn func(ctx context.Context) error) *StepFunc {
	return &StepFunc{name: name, fn: fn}
}

func (s *StepFunc) Name() string { return s.name }

func (s *StepFunc) Execute(ctx context.Context) error {
	return s.fn(ctx)
}

// Select keeps the steps whose names appear in names, in their original
// order. An empty names list keeps every step.
func Select(steps []Step, names []string) []Step {
	if len(names) == 0 {
		return steps
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		if wanted[s.Name()] {
			out = append(out, s)
		}
	}
	return out
}
