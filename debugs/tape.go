package debugs

import (
	"fmt"
	"unicode/utf8"

	"github.com/reusee/turingtape/syncs"
	"github.com/reusee/turingtape/tapes"
)

// TapeGlobals exposes tape operations for a Tap session.
func TapeGlobals(guard *syncs.Guard[*tapes.Tape]) map[string]any {
	do := func(fn func(*tapes.Tape)) func() {
		return func() {
			guard.Do(fn)
		}
	}
	return map[string]any{
		"left":  do((*tapes.Tape).MoveLeft),
		"right": do((*tapes.Tape).MoveRight),
		"read": func() string {
			return string(syncs.Get(guard, (*tapes.Tape).Read))
		},
		"write": func(s string) error {
			r, size := utf8.DecodeRuneInString(s)
			if size == 0 || size != len(s) {
				return fmt.Errorf("expecting one character, got %q", s)
			}
			guard.Do(func(tape *tapes.Tape) {
				tape.Write(r)
			})
			return nil
		},
		"contents": func() string {
			return syncs.Get(guard, (*tapes.Tape).Contents)
		},
		"raw": func() string {
			return syncs.Get(guard, (*tapes.Tape).Raw)
		},
		"position": func() int {
			return syncs.Get(guard, (*tapes.Tape).Position)
		},
	}
}
