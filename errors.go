package cmdtree

import "fmt"

// BuildErrorKind classifies the ways tree construction can fail.
type BuildErrorKind int

const (
	// BuildNameExistsAsClass reports a name already taken by a sibling class.
	BuildNameExistsAsClass BuildErrorKind = iota
	// BuildNameExistsAsAction reports a name already taken by a sibling action.
	BuildNameExistsAsAction
	// BuildNameReserved reports a collision with a built-in command token.
	BuildNameReserved
	// BuildNameInvalid reports an empty name or one that whitespace
	// tokenization would split or trim.
	BuildNameInvalid
	// BuildNoParent reports End called while already at the root class.
	BuildNoParent
	// BuildUnfinished reports Build called inside a nested class under
	// WithStrictBuild.
	BuildUnfinished
)

// String returns a short tag for the kind.
func (k BuildErrorKind) String() string {
	switch k {
	case BuildNameExistsAsClass:
		return "name-exists-as-class"
	case BuildNameExistsAsAction:
		return "name-exists-as-action"
	case BuildNameReserved:
		return "name-reserved"
	case BuildNameInvalid:
		return "name-invalid"
	case BuildNoParent:
		return "no-parent"
	case BuildUnfinished:
		return "unfinished"
	default:
		return "unknown"
	}
}

// BuildError is the error returned when a Builder chain cannot produce a
// valid tree. Path is the dotted location of the class being built when
// the failure was recorded.
type BuildError struct {
	Kind BuildErrorKind
	Name string
	Path string
}

var _ error = (*BuildError)(nil)

func (e *BuildError) Error() string {
	switch e.Kind {
	case BuildNameExistsAsClass:
		return fmt.Sprintf("name %q already used by a class under %q", e.Name, e.Path)
	case BuildNameExistsAsAction:
		return fmt.Sprintf("name %q already used by an action under %q", e.Name, e.Path)
	case BuildNameReserved:
		return fmt.Sprintf("name %q is reserved for a built-in command", e.Name)
	case BuildNameInvalid:
		return fmt.Sprintf("name %q is empty or contains whitespace", e.Name)
	case BuildNoParent:
		return fmt.Sprintf("cannot end class %q: already at the root", e.Name)
	case BuildUnfinished:
		return fmt.Sprintf("build stopped inside class %q: close it with End or Root", e.Path)
	default:
		return fmt.Sprintf("build error at %q", e.Path)
	}
}
