package tapescript

import (
	"fmt"
	"unicode/utf8"

	"github.com/reusee/turingtape/syncs"
	"github.com/reusee/turingtape/tapes"
	"go.starlark.net/starlark"
)

type builtinFunc = func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// Builtins returns the predeclared tape functions:
// left(), right(), read(), write(c), contents(), position().
func Builtins(guard *syncs.Guard[*tapes.Tape]) starlark.StringDict {

	noArgs := func(fn func(*tapes.Tape) starlark.Value) builtinFunc {
		return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return syncs.Get(guard, fn), nil
		}
	}

	dict := starlark.StringDict{

		"left": starlark.NewBuiltin("left", noArgs(func(tape *tapes.Tape) starlark.Value {
			tape.MoveLeft()
			return starlark.None
		})),

		"right": starlark.NewBuiltin("right", noArgs(func(tape *tapes.Tape) starlark.Value {
			tape.MoveRight()
			return starlark.None
		})),

		"read": starlark.NewBuiltin("read", noArgs(func(tape *tapes.Tape) starlark.Value {
			return starlark.String(string(tape.Read()))
		})),

		"contents": starlark.NewBuiltin("contents", noArgs(func(tape *tapes.Tape) starlark.Value {
			return starlark.String(tape.Contents())
		})),

		"position": starlark.NewBuiltin("position", noArgs(func(tape *tapes.Tape) starlark.Value {
			return starlark.MakeInt(tape.Position())
		})),

		"write": starlark.NewBuiltin("write", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var s string
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
				return nil, err
			}
			r, size := utf8.DecodeRuneInString(s)
			if size == 0 || size != len(s) || r == utf8.RuneError && size == 1 {
				return nil, fmt.Errorf("%s: expecting one character, got %q", b.Name(), s)
			}
			guard.Do(func(tape *tapes.Tape) {
				tape.Write(r)
			})
			return starlark.None, nil
		}),
	}

	dict["blank"] = starlark.String(string(tapes.Blank))

	return dict
}
