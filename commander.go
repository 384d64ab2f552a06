package cmdtree

import (
	"io"
	"strings"
)

// PathSeparator joins class names in PathString and Entry.PathString
// output.
const PathSeparator = "."

// Commander executes lines against a finished tree and tracks which class
// the user is currently in. Obtain one from Builder.Build; give each
// concurrent session its own Commander from Session.
type Commander[R any] struct {
	root    *Class[R]
	path    []string
	rootCmd string
}

// Root returns the root class of the tree.
func (c *Commander[R]) Root() *Class[R] { return c.root }

// Current returns the class the cursor points at, re-derived from the
// recorded path on every call.
func (c *Commander[R]) Current() *Class[R] {
	cur := c.root
	for _, name := range c.path[1:] {
		cur = cur.childClass(name)
	}
	return cur
}

// Path returns the class names from the root to the cursor, root name
// first.
func (c *Commander[R]) Path() []string {
	out := make([]string, len(c.path))
	copy(out, c.path)
	return out
}

// PathString returns the cursor path joined with dots, e.g. "base.print".
// Interactive shells use it as the prompt.
func (c *Commander[R]) PathString() string {
	return strings.Join(c.path, PathSeparator)
}

// AtRoot reports whether the cursor is at the root class.
func (c *Commander[R]) AtRoot() bool { return len(c.path) == 1 }

// Depth returns how many classes deep the cursor sits, zero at the root.
func (c *Commander[R]) Depth() int { return len(c.path) - 1 }

// Reset moves the cursor back to the root class.
func (c *Commander[R]) Reset() { c.path = c.path[:1] }

// RootCommand returns the name of the extra return-to-root built-in
// configured with WithRootCommand, or "" when none was set.
func (c *Commander[R]) RootCommand() string { return c.rootCmd }

// Session returns a new Commander over the same tree with its own cursor
// at the root. The tree is read-only after build, so sessions may run on
// different goroutines as long as the handlers themselves tolerate it.
func (c *Commander[R]) Session() *Commander[R] {
	return &Commander[R]{
		root:    c.root,
		path:    []string{c.root.name},
		rootCmd: c.rootCmd,
	}
}

// Builtins lists the built-in commands this commander recognises,
// including the configured root command when one was set.
func (c *Commander[R]) Builtins() []Builtin {
	b := []Builtin{
		{Token: HelpCommand, Help: "show the classes and actions available here"},
		{Token: CancelCommand, Help: "move back up one class"},
		{Token: CancelShort, Help: "alias of cancel"},
		{Token: ExitCommand, Help: "leave the interactive session"},
	}
	if c.rootCmd != "" {
		b = append(b, Builtin{Token: c.rootCmd, Help: "return to the root class"})
	}
	return b
}

// Execute runs one line: tokenize on whitespace, resolve the first token
// against the current class, then move the cursor or run the matched
// action. Built-ins take precedence over tree names at any depth. A line
// that enters a class stops there; trailing tokens are discarded rather
// than resolved inside the new class. Lines that resolve to nothing leave
// the cursor exactly where it was.
//
// Handler output and help text go to w. Execute does not loop and holds
// no loop state; interactive callers wrap it (see the shell package) and
// stop on KindExit, while batch callers may invoke it directly.
func (c *Commander[R]) Execute(w io.Writer, line string) Outcome[R] {
	cur := c.Current()
	res := c.resolve(cur, strings.Fields(line))
	switch res.kind {
	case KindHelp:
		writeHelp(w, cur, c.Builtins())
		return Outcome[R]{Kind: KindHelp}
	case KindCancel:
		if !c.AtRoot() {
			c.path = c.path[:len(c.path)-1]
		}
		return Outcome[R]{Kind: KindCancel}
	case KindRoot:
		c.Reset()
		return Outcome[R]{Kind: KindRoot}
	case KindClass:
		c.path = append(c.path, res.class.name)
		return Outcome[R]{Kind: KindClass, Name: res.class.name}
	case KindAction:
		val := res.action.run(w, res.args)
		return Outcome[R]{Kind: KindAction, Name: res.action.name, Value: val}
	case KindNotFound:
		return Outcome[R]{Kind: KindNotFound, Token: res.token}
	default:
		return Outcome[R]{Kind: res.kind}
	}
}
