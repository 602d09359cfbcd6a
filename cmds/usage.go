package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeUsage(w, p.commands, 0)
}

func writeUsage(w io.Writer, commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || printed[command] {
			continue
		}
		if slices.Contains(command.Aliases, name) {
			// listed under its primary name
			continue
		}
		printed[command] = true

		line := indent + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Func.IsValid() {
			for i := range command.Func.Type().NumIn() {
				line += fmt.Sprintf(" <%v>", command.Func.Type().In(i))
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			writeUsage(w, command.Subs, depth+1)
		}
	}
}
