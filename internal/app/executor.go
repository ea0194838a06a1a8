package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/disaster-response/internal/platform/logging"
	"github.com/jsamuelsen/disaster-response/internal/platform/telemetry"
)

// Operations that call an upstream model and then persist its verdict run
// in five steps: validate, perform, verify, archive, respond. Nothing is
// written until the upstream result has been checked.

// ExecutionStep names one step of an Operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepArchive  ExecutionStep = "archive"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError records the step an operation failed in. It unwraps to the
// cause, so domain error checks still apply.
type ExecutionError struct {
	Operation string
	Step      ExecutionStep
	Cause     error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Operation, e.Step, e.Cause)
}

// Unwrap returns the cause.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs Operations with step logging and timing.
type Executor struct {
	logger *slog.Logger
	clock  clockwork.Clock
}

// NewExecutor creates an Executor. A nil clock uses the real clock.
func NewExecutor(logger *slog.Logger, clock clockwork.Clock) *Executor {
	return &Executor{logger: orDefaultLogger(logger), clock: orRealClock(clock)}
}

// Operation is the set of steps for one use case. I is the input, P what
// Perform produced, V the checked result and O the response. Nil steps are
// skipped.
type Operation[I, P, V, O any] struct {
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Archive  func(ctx context.Context, input I, verified V) error
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

// Execute runs op on input and stops at the first failing step.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (_ O, err error) {
	var zero O

	ctx, span := telemetry.StartSpan(ctx, "operation."+op.Name)
	defer func() { telemetry.EndSpan(span, err) }()

	logger := logging.FromContextOr(ctx, exec.logger).With(slog.String("operation", op.Name))
	start := exec.clock.Now()

	fail := func(step ExecutionStep, err error) (O, error) {
		level := slog.LevelError
		if step == StepValidate {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "operation step failed",
			slog.String("step", string(step)),
			slog.Any("error", err),
		)
		span.SetAttributes(attribute.String("operation.failed_step", string(step)))
		return zero, &ExecutionError{Operation: op.Name, Step: step, Cause: err}
	}

	if op.Validate != nil {
		if err := op.Validate(ctx, input); err != nil {
			return fail(StepValidate, err)
		}
	}

	var performed P
	if op.Perform != nil {
		var err error
		if performed, err = op.Perform(ctx, input); err != nil {
			return fail(StepPerform, err)
		}
	}
	logger.DebugContext(ctx, "operation performed")

	var verified V
	if op.Verify != nil {
		var err error
		if verified, err = op.Verify(ctx, input, performed); err != nil {
			return fail(StepVerify, err)
		}
	}

	if op.Archive != nil {
		if err := op.Archive(ctx, input, verified); err != nil {
			return fail(StepArchive, err)
		}
	}
	logger.DebugContext(ctx, "operation archived")

	var result O
	if op.Respond != nil {
		var err error
		if result, err = op.Respond(ctx, input, verified); err != nil {
			return fail(StepRespond, err)
		}
	}

	logger.InfoContext(ctx, "operation completed",
		slog.Duration("duration", exec.clock.Since(start)),
	)

	return result, nil
}

// GetExecutionStep returns the step err failed in, if it came from Execute.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
