package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/turingtape/cmds"
	"github.com/reusee/turingtape/debugs"
	"github.com/reusee/turingtape/logs"
	"github.com/reusee/turingtape/modes"
	"github.com/reusee/turingtape/syncs"
	"github.com/reusee/turingtape/tapeconfigs"
	"github.com/reusee/turingtape/tapefiles"
	"github.com/reusee/turingtape/tapes"
	"github.com/reusee/turingtape/tapescript"
)

var (
	scriptFile = cmds.Var[string]("-script")
	tapFlag    = cmds.Switch("-tap")
	watchMS    = cmds.Var[int]("-watch")
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		tapeFile tapeconfigs.TapeFile,
		input tapeconfigs.Input,
		showHead tapeconfigs.ShowHead,
		newStore tapefiles.NewStore,
		newRunner tapescript.NewRunner,
		tap debugs.Tap,
	) {
		ctx, _ = newSpan(ctx, "")

		session := func(ctx context.Context, tape *tapes.Tape) error {
			return run(ctx, tape, logger, newRunner(), tap, os.Stdout)
		}

		var final *tapes.Tape
		if tapeFile != "" {
			err = newStore(string(tapeFile)).Update(ctx, func(ctx context.Context, tape *tapes.Tape) error {
				final = tape
				return session(ctx, tape)
			})
		} else {
			final = tapes.NewWithInput(string(input))
			err = session(ctx, final)
		}
		if err != nil {
			logger.ErrorContext(ctx, "tape session failed", "error", err)
			return
		}

		printTape(os.Stdout, final, bool(showHead))
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	tape *tapes.Tape,
	logger logs.Logger,
	runner *tapescript.Runner,
	tap debugs.Tap,
	out io.Writer,
) error {
	guard := syncs.NewGuard(tape)

	if *watchMS > 0 {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go watch(watchCtx, guard, logger, time.Duration(*watchMS)*time.Millisecond)
	}

	for _, op := range plan {
		if err := ctx.Err(); err != nil {
			return err
		}
		guard.Do(func(tape *tapes.Tape) {
			op(tape, out)
		})
	}

	if *scriptFile != "" {
		src, err := os.ReadFile(*scriptFile)
		if err != nil {
			return err
		}
		if err := runner.Run(ctx, guard, *scriptFile, src); err != nil {
			return err
		}
	}

	if *tapFlag {
		tap(ctx, "tape", debugs.TapeGlobals(guard))
	}

	return nil
}

func watch(ctx context.Context, guard *syncs.Guard[*tapes.Tape], logger logs.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var contents string
			var position, cells int
			guard.Do(func(tape *tapes.Tape) {
				contents = tape.Contents()
				position = tape.Position()
				cells = tape.Len()
			})
			logger.InfoContext(ctx, "watch",
				"contents", contents,
				"position", position,
				"cells", cells,
			)
		}
	}
}

// printTape writes the trimmed contents, and with showHead the raw cells plus a caret under the head.
func printTape(w io.Writer, tape *tapes.Tape, showHead bool) {
	if !showHead {
		fmt.Fprintln(w, tape.Contents())
		return
	}
	raw := []rune(tape.Raw())
	fmt.Fprintf(w, "|%s|\n", string(raw))
	fmt.Fprintf(w, " %s^\n", strings.Repeat(" ", tape.Head()))
}
