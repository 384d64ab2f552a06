package cmdtree

// Kind identifies what one executed line resolved to.
type Kind int

const (
	// KindNoop is an empty or whitespace-only line; nothing changed.
	KindNoop Kind = iota
	// KindHelp reports the help built-in wrote the current class's help.
	KindHelp
	// KindExit reports the exit built-in; read loops stop on it.
	KindExit
	// KindCancel reports cancel (or c) moved the cursor up one level, or
	// was a no-op at the root.
	KindCancel
	// KindRoot reports the configured root command reset the cursor.
	KindRoot
	// KindClass reports the cursor entered a child class.
	KindClass
	// KindAction reports an action handler ran.
	KindAction
	// KindNotFound reports a first token matching nothing at the current
	// class; the cursor did not move.
	KindNotFound
)

// String returns a short tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindNoop:
		return "noop"
	case KindHelp:
		return "help"
	case KindExit:
		return "exit"
	case KindCancel:
		return "cancel"
	case KindRoot:
		return "root"
	case KindClass:
		return "class"
	case KindAction:
		return "action"
	case KindNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Outcome reports the result of executing one line. It is produced fresh
// per call and never stored by the Commander.
type Outcome[R any] struct {
	// Kind says how the line resolved.
	Kind Kind

	// Name carries the class entered for KindClass or the action run for
	// KindAction.
	Name string

	// Token carries the unmatched first token for KindNotFound.
	Token string

	// Value carries the handler's return value for KindAction and is the
	// zero value of R otherwise.
	Value R
}
