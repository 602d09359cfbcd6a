package main

import (
	"fmt"
	"io"

	"github.com/reusee/turingtape/cmds"
	"github.com/reusee/turingtape/tapes"
)

type op func(tape *tapes.Tape, out io.Writer)

// operations given on the command line, applied in order once the tape is loaded
var plan []op

func queue(o op) func() {
	return func() {
		plan = append(plan, o)
	}
}

func init() {
	cmds.Define("left", cmds.Func(queue(func(tape *tapes.Tape, _ io.Writer) {
		tape.MoveLeft()
	})).Desc("move the head one cell left").Alias("l"))

	cmds.Define("right", cmds.Func(queue(func(tape *tapes.Tape, _ io.Writer) {
		tape.MoveRight()
	})).Desc("move the head one cell right").Alias("r"))

	cmds.Define("write", cmds.Func(func(c rune) {
		plan = append(plan, func(tape *tapes.Tape, _ io.Writer) {
			tape.Write(c)
		})
	}).Desc("write one character under the head").Alias("w"))

	cmds.Define("read", cmds.Func(queue(func(tape *tapes.Tape, out io.Writer) {
		fmt.Fprintf(out, "%q\n", tape.Read())
	})).Desc("print the character under the head"))

	cmds.Define("print", cmds.Func(queue(func(tape *tapes.Tape, out io.Writer) {
		fmt.Fprintln(out, tape.Contents())
	})).Desc("print the tape contents"))
}
