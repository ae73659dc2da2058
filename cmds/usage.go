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
	primary := make(map[*Command]bool)
	for name, command := range commands {
		if command != nil && !slices.Contains(command.Aliases, name) {
			primary[command] = true
		}
	}
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] {
			continue
		}
		if primary[command] && slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true

		names := []string{name}
		for _, alias := range command.Aliases {
			if alias != name {
				names = append(names, alias)
			}
		}
		if command.Func.IsValid() {
			for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
				names[0] += " <" + command.Func.Type().In(i).String() + ">"
			}
		}

		if command.Description != "" {
			fmt.Fprintf(w, "%s%s\t%s\n", indent, strings.Join(names, ", "), command.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, strings.Join(names, ", "))
		}
		if len(command.Subs) > 0 {
			writeUsage(w, command.Subs, depth+1)
		}
	}
}
