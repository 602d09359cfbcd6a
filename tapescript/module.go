package tapescript

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turingtape/logs"
	"github.com/reusee/turingtape/tapeconfigs"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
}

type NewRunner func() *Runner

func (Module) NewRunner(
	logger logs.Logger,
	maxSteps tapeconfigs.MaxSteps,
) NewRunner {
	return func() *Runner {
		return &Runner{
			Logger:   logger,
			MaxSteps: uint64(maxSteps),
		}
	}
}
