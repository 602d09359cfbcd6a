package tapefiles

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turingtape/logs"
	"github.com/reusee/turingtape/modes"
	"github.com/reusee/turingtape/tapeconfigs"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
}

type NewStore func(path string) *Store

func (Module) NewStore(
	logger logs.Logger,
	mode modes.Mode,
	input tapeconfigs.Input,
) NewStore {
	return func(path string) *Store {
		return &Store{
			FilePath: path,
			Input:    string(input),
			Logger:   logger,
			Verify:   mode == modes.ModeDevelopment,
		}
	}
}
