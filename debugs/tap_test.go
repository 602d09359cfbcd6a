package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/turingtape/syncs"
	"github.com/reusee/turingtape/tapes"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", TapeGlobals(syncs.NewGuard(tapes.New())))
	})
}
