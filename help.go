package cmdtree

import (
	"fmt"
	"io"
	"sort"
)

const helpPad = 12

// writeHelp prints the help view for cur: its own help line, then the
// child classes, actions and built-in commands grouped under section
// headers, names padded into a column and sorted. Write failures are
// ignored; help output is advisory.
func writeHelp[R any](w io.Writer, cur *Class[R], builtins []Builtin) {
	if cur.help != "" {
		fmt.Fprintf(w, "%s\n", cur.help)
	}
	if len(cur.classes) > 0 {
		fmt.Fprintf(w, "\nCLASSES\n")
		for _, child := range sortedClasses(cur) {
			fmt.Fprintf(w, "   %-*s  %s\n", helpPad, child.name, child.help)
		}
	}
	if len(cur.actions) > 0 {
		fmt.Fprintf(w, "\nACTIONS\n")
		for _, act := range sortedActions(cur) {
			fmt.Fprintf(w, "   %-*s  %s\n", helpPad, act.name, act.help)
		}
	}
	fmt.Fprintf(w, "\nCOMMANDS\n")
	for _, bi := range builtins {
		name := bi.Token
		switch bi.Token {
		case CancelShort:
			continue
		case CancelCommand:
			name = CancelCommand + ", " + CancelShort
		}
		fmt.Fprintf(w, "   %-*s  %s\n", helpPad, name, bi.Help)
	}
}

func sortedClasses[R any](c *Class[R]) []*Class[R] {
	out := c.Classes()
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func sortedActions[R any](c *Class[R]) []*Action[R] {
	out := c.Actions()
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
