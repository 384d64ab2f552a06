package cmdtree

// Built-in command tokens. Matching is exact and case-sensitive; the
// builder refuses tree names that collide with them.
const (
	HelpCommand   = "help"
	ExitCommand   = "exit"
	CancelCommand = "cancel"
	CancelShort   = "c"
)

// Builtin describes one built-in command for help and completion
// consumers.
type Builtin struct {
	Token string
	Help  string
}

type resolution[R any] struct {
	kind   Kind
	class  *Class[R]
	action *Action[R]
	args   []string
	token  string
}

// resolve maps the tokens of one line onto cur. It only inspects; cursor
// movement and handler invocation stay with Execute so a failed lookup
// can never leave partial state behind.
func (c *Commander[R]) resolve(cur *Class[R], tokens []string) resolution[R] {
	if len(tokens) == 0 {
		return resolution[R]{kind: KindNoop}
	}
	first := tokens[0]
	switch first {
	case HelpCommand:
		return resolution[R]{kind: KindHelp}
	case ExitCommand:
		return resolution[R]{kind: KindExit}
	case CancelCommand, CancelShort:
		return resolution[R]{kind: KindCancel}
	}
	if c.rootCmd != "" && first == c.rootCmd {
		return resolution[R]{kind: KindRoot}
	}
	if child := cur.childClass(first); child != nil {
		// A class change consumes the whole line. Tokens after the class
		// name are dropped, never resolved inside the new class, so one
		// line is at most one navigation or one action.
		return resolution[R]{kind: KindClass, class: child}
	}
	if act := cur.childAction(first); act != nil {
		return resolution[R]{kind: KindAction, action: act, args: tokens[1:]}
	}
	return resolution[R]{kind: KindNotFound, token: first}
}
