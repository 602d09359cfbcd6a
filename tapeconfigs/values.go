package tapeconfigs

import (
	"github.com/reusee/turingtape/cmds"
	"github.com/reusee/turingtape/configs"
	"github.com/reusee/turingtape/vars"
)

type Input string

var inputFlag = cmds.Var[string]("-input")

func (Module) Input(
	loader configs.Loader,
) Input {
	return Input(vars.FirstNonZero(
		*inputFlag,
		configs.First[string](loader, "input"),
	))
}

type TapeFile string

var tapeFileFlag = cmds.Var[string]("-file")

func (Module) TapeFile(
	loader configs.Loader,
) TapeFile {
	return TapeFile(vars.FirstNonZero(
		*tapeFileFlag,
		configs.First[string](loader, "tape_file"),
	))
}

type MaxSteps uint64

const DefaultMaxSteps = 1_000_000

var maxStepsFlag = cmds.Var[uint64]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[uint64](loader, "max_steps"),
		DefaultMaxSteps,
	))
}

type ShowHead bool

var showHeadFlag = cmds.Switch("-show-head")

func (Module) ShowHead(
	loader configs.Loader,
) ShowHead {
	return ShowHead(*showHeadFlag || configs.First[bool](loader, "show_head"))
}
