// Package cmdtree builds hierarchical command trees for interactive
// command-line applications and resolves input lines against them.
//
// A tree nests classes (sub-menus) holding actions (leaf commands). A
// Commander walks the tree one line at a time: naming a child class moves
// the cursor down, cancel moves it back up, and naming an action runs its
// handler with the rest of the line. Built-in commands (help, exit, cancel
// and its alias c) always win over tree names.
package cmdtree

import "io"

// Handler is the callable attached to an action. It receives the tokens
// following the action name and a sink for user-facing output. Every
// handler in one tree returns the same type R, fixed when the tree is
// built.
type Handler[R any] func(w io.Writer, args []string) R

// Class is one level of a command tree: a named group of child classes
// and actions. Classes are assembled through a Builder and are read-only
// once the tree is built.
type Class[R any] struct {
	name    string
	help    string
	classes []*Class[R]
	actions []*Action[R]
}

// Name returns the class name.
func (c *Class[R]) Name() string { return c.name }

// Help returns the class help text.
func (c *Class[R]) Help() string { return c.help }

// Classes returns the direct child classes in insertion order.
func (c *Class[R]) Classes() []*Class[R] {
	out := make([]*Class[R], len(c.classes))
	copy(out, c.classes)
	return out
}

// Actions returns the direct child actions in insertion order.
func (c *Class[R]) Actions() []*Action[R] {
	out := make([]*Action[R], len(c.actions))
	copy(out, c.actions)
	return out
}

func (c *Class[R]) childClass(name string) *Class[R] {
	for _, child := range c.classes {
		if child.name == name {
			return child
		}
	}
	return nil
}

func (c *Class[R]) childAction(name string) *Action[R] {
	for _, act := range c.actions {
		if act.name == name {
			return act
		}
	}
	return nil
}

// Action is a leaf command: a named handler with help text.
type Action[R any] struct {
	name string
	help string
	run  Handler[R]
}

// Name returns the action name.
func (a *Action[R]) Name() string { return a.name }

// Help returns the action help text.
func (a *Action[R]) Help() string { return a.help }
