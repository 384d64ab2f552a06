package cmdtree

import "strings"

// EntryKind tags a Structure entry as a class or an action.
type EntryKind int

const (
	EntryClass EntryKind = iota
	EntryAction
)

// String returns "class" or "action".
func (k EntryKind) String() string {
	if k == EntryAction {
		return "action"
	}
	return "class"
}

// Entry is one node of the exported tree shape.
type Entry struct {
	// Path holds the class names from the root down to this entry, the
	// entry's own name last.
	Path []string
	Kind EntryKind
	Help string
}

// PathString returns the entry path joined with dots, e.g.
// "base.print.echo".
func (e Entry) PathString() string {
	return strings.Join(e.Path, PathSeparator)
}

// Structure exports the shape of the whole tree for help UIs and
// completion engines: depth-first from the root, each class listing its
// actions and then its child classes, both in name order. The root class
// is the first entry. The export is a read-only snapshot; it does not
// consult or move the cursor.
func (c *Commander[R]) Structure() []Entry {
	var out []Entry
	structureWalk(c.root, nil, &out)
	return out
}

func structureWalk[R any](cur *Class[R], prefix []string, out *[]Entry) {
	path := append(append([]string{}, prefix...), cur.name)
	*out = append(*out, Entry{Path: path, Kind: EntryClass, Help: cur.help})
	for _, act := range sortedActions(cur) {
		actPath := append(append([]string{}, path...), act.name)
		*out = append(*out, Entry{Path: actPath, Kind: EntryAction, Help: act.help})
	}
	for _, child := range sortedClasses(cur) {
		structureWalk(child, path, out)
	}
}
