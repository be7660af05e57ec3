// Package workflow runs multi-step operations whose completed steps are
// compensated in reverse order when a later step fails.
package workflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Step is one unit of a workflow. Compensate is optional and is only called
// for steps whose Invoke succeeded.
type Step[S any] struct {
	Name       string
	Invoke     func(ctx context.Context, state *S) error
	Compensate func(ctx context.Context, state *S) error
}

// Workflow is an ordered list of steps sharing a state value
type Workflow[S any] struct {
	name   string
	steps  []Step[S]
	logger *zap.Logger
}

// New creates a workflow
func New[S any](name string, logger *zap.Logger, steps ...Step[S]) *Workflow[S] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow[S]{
		name:   name,
		steps:  steps,
		logger: logger.With(zap.String("workflow", name)),
	}
}

// Name returns the workflow name
func (w *Workflow[S]) Name() string {
	return w.name
}

// StepError reports which step of which workflow failed
type StepError struct {
	Workflow string
	Step     string
	Err      error
}

// Error implements the error interface
func (e *StepError) Error() string {
	return fmt.Sprintf("workflow %s: step %s: %v", e.Workflow, e.Step, e.Err)
}

// Unwrap returns the step's error
func (e *StepError) Unwrap() error {
	return e.Err
}

// Run invokes every step in order. When a step fails, the steps that already
// succeeded are compensated newest first and the failure is returned as a *StepError.
// Compensation failures are logged and do not stop the remaining compensations.
func (w *Workflow[S]) Run(ctx context.Context, state *S) error {
	completed := make([]Step[S], 0, len(w.steps))

	for _, step := range w.steps {
		if err := step.Invoke(ctx, state); err != nil {
			w.logger.Error("workflow step failed",
				zap.String("step", step.Name),
				zap.Error(err),
			)
			w.compensate(ctx, state, completed)
			return &StepError{Workflow: w.name, Step: step.Name, Err: err}
		}
		completed = append(completed, step)
	}

	w.logger.Debug("workflow completed", zap.Int("steps", len(w.steps)))
	return nil
}

func (w *Workflow[S]) compensate(ctx context.Context, state *S, completed []Step[S]) {
	if len(completed) == 0 {
		return
	}

	w.logger.Info("starting compensation", zap.Int("steps_to_compensate", len(completed)))

	failures := 0
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}
		// Compensation must run even if the caller's context was cancelled.
		if err := step.Compensate(context.WithoutCancel(ctx), state); err != nil {
			failures++
			w.logger.Error("compensation failed",
				zap.String("step", step.Name),
				zap.Error(err),
			)
		}
	}

	w.logger.Info("compensation completed",
		zap.Int("total_steps", len(completed)),
		zap.Int("failed_compensations", failures),
	)
}
