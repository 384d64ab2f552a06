// Package completion derives advisory token completions from a command
// tree. Nothing here moves the cursor or runs handlers; shells call into
// it on every keystroke.
package completion

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kurtlawrence/cmdtree"
)

// Kind tags where a candidate token comes from.
type Kind int

const (
	KindBuiltin Kind = iota
	KindClass
	KindAction
)

// String returns a short tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindAction:
		return "action"
	default:
		return "builtin"
	}
}

// Candidate is one token accepted as the first word of a line at the
// commander's current position.
type Candidate struct {
	Token string
	Help  string
	Kind  Kind
}

// Candidates lists the legal first tokens at c's current class: the
// built-ins first, then child classes and actions in name order.
func Candidates[R any](c *cmdtree.Commander[R]) []Candidate {
	var out []Candidate
	for _, bi := range c.Builtins() {
		out = append(out, Candidate{Token: bi.Token, Help: bi.Help, Kind: KindBuiltin})
	}

	cur := c.Current()
	classes := cur.Classes()
	sort.Slice(classes, func(i, j int) bool { return classes[i].Name() < classes[j].Name() })
	for _, child := range classes {
		out = append(out, Candidate{Token: child.Name(), Help: child.Help(), Kind: KindClass})
	}

	actions := cur.Actions()
	sort.Slice(actions, func(i, j int) bool { return actions[i].Name() < actions[j].Name() })
	for _, act := range actions {
		out = append(out, Candidate{Token: act.Name(), Help: act.Help(), Kind: KindAction})
	}
	return out
}

// Complete returns full replacements for the word being typed at the
// start of line: every candidate token when the line is blank, the
// prefix matches while the first word is still open. Once the first word
// is complete the tree has nothing further to offer, since a line holds
// at most one navigation or one action; later words belong to the
// action's own arguments.
func Complete[R any](c *cmdtree.Commander[R], line string) []string {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 0:
		return matchingTokens(c, "")
	case len(fields) == 1 && !endsInSpace(line):
		return matchingTokens(c, fields[0])
	default:
		return nil
	}
}

func matchingTokens[R any](c *cmdtree.Commander[R], prefix string) []string {
	var out []string
	for _, cand := range Candidates(c) {
		if strings.HasPrefix(cand.Token, prefix) {
			out = append(out, cand.Token)
		}
	}
	return out
}

func endsInSpace(line string) bool {
	r, _ := utf8.DecodeLastRuneInString(line)
	return unicode.IsSpace(r)
}

// ArgsFunc supplies completions for an action's arguments. action is the
// class path from the root with the action name last; args holds the
// argument tokens typed so far, the one being completed last ("" when a
// fresh argument is starting). The returned strings replace that final
// token.
type ArgsFunc func(action []string, args []string) []string

// Completer bundles a commander with an optional hook for completing
// action arguments.
type Completer[R any] struct {
	Cmd  *cmdtree.Commander[R]
	Args ArgsFunc
}

// Complete behaves like the package-level Complete and, when the first
// word already names an action at the current class, hands the rest of
// the line to the Args hook.
func (cp Completer[R]) Complete(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 || (len(fields) == 1 && !endsInSpace(line)) {
		return Complete(cp.Cmd, line)
	}
	if cp.Args == nil {
		return nil
	}

	var act *cmdtree.Action[R]
	for _, a := range cp.Cmd.Current().Actions() {
		if a.Name() == fields[0] {
			act = a
			break
		}
	}
	if act == nil {
		return nil
	}

	args := fields[1:]
	if endsInSpace(line) {
		args = append(args, "")
	}
	return cp.Args(append(cp.Cmd.Path(), act.Name()), args)
}
