package tapescript

import (
	"context"
	"fmt"

	"github.com/reusee/turingtape/logs"
	"github.com/reusee/turingtape/syncs"
	"github.com/reusee/turingtape/tapes"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Runner executes starlark scripts against a tape.
type Runner struct {
	Logger logs.Logger
	// zero means unbounded
	MaxSteps uint64
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Run executes src with tape builtins predeclared.
// Cancelling ctx stops the script at its next step.
func (r *Runner) Run(
	ctx context.Context,
	guard *syncs.Guard[*tapes.Tape],
	name string,
	src []byte,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			r.Logger.InfoContext(ctx, msg,
				"script", name,
			)
		},
	}
	if r.MaxSteps > 0 {
		thread.SetMaxExecutionSteps(r.MaxSteps)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	r.Logger.DebugContext(ctx, "run script", "script", name)
	if _, err := starlark.ExecFileOptions(fileOptions, thread, name, src, Builtins(guard)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return logs.WrapSpan(ctx, wrap(fmt.Errorf("script %s: %w", name, err)))
	}
	r.Logger.DebugContext(ctx, "script done",
		"script", name,
		"steps", thread.ExecutionSteps(),
	)
	return nil
}
