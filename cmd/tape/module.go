package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turingtape/debugs"
	"github.com/reusee/turingtape/tapefiles"
	"github.com/reusee/turingtape/tapescript"
)

type Module struct {
	dscope.Module
	Files   tapefiles.Module
	Scripts tapescript.Module
	Debugs  debugs.Module
}
