package cmdtree

import "strings"

// Option adjusts how a Builder validates and finalizes its tree.
type Option func(*buildConfig)

type buildConfig struct {
	strict  bool
	rootCmd string
}

// WithStrictBuild makes Build fail with BuildUnfinished when construction
// is still inside a nested class, instead of ascending to the root.
func WithStrictBuild() Option {
	return func(c *buildConfig) { c.strict = true }
}

// WithRootCommand registers name as an extra built-in that moves the
// cursor straight back to the root class. The name joins the reserved set
// and must be distinct from the fixed built-ins; in particular it cannot
// be "cancel", which only moves up one level.
func WithRootCommand(name string) Option {
	return func(c *buildConfig) { c.rootCmd = name }
}

// Builder assembles a command tree. Calls chain; the first failure sticks
// and turns every later call into a no-op, so a chain can be written
// straight through and checked once at Build.
type Builder[R any] struct {
	cfg   buildConfig
	stack []*Class[R]
	err   error
}

// NewBuilder opens a tree whose root class carries the given name and
// help text.
func NewBuilder[R any](name, help string, opts ...Option) *Builder[R] {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &Builder[R]{
		cfg:   cfg,
		stack: []*Class[R]{{name: name, help: help}},
	}
	if !validName(name) {
		b.err = &BuildError{Kind: BuildNameInvalid, Name: name, Path: name}
	} else if cfg.rootCmd != "" && !validName(cfg.rootCmd) {
		b.err = &BuildError{Kind: BuildNameInvalid, Name: cfg.rootCmd, Path: name}
	} else if reservedName(cfg.rootCmd, "") {
		b.err = &BuildError{Kind: BuildNameReserved, Name: cfg.rootCmd, Path: name}
	}
	return b
}

// Class opens a child class under the current one and descends into it.
func (b *Builder[R]) Class(name, help string) *Builder[R] {
	if b.err != nil {
		return b
	}
	if err := b.checkName(name); err != nil {
		b.err = err
		return b
	}
	child := &Class[R]{name: name, help: help}
	cur := b.current()
	cur.classes = append(cur.classes, child)
	b.stack = append(b.stack, child)
	return b
}

// Action attaches a leaf command to the current class.
func (b *Builder[R]) Action(name, help string, h Handler[R]) *Builder[R] {
	if b.err != nil {
		return b
	}
	if err := b.checkName(name); err != nil {
		b.err = err
		return b
	}
	cur := b.current()
	cur.actions = append(cur.actions, &Action[R]{name: name, help: help, run: h})
	return b
}

// End closes the current class and moves construction back to its parent.
func (b *Builder[R]) End() *Builder[R] {
	if b.err != nil {
		return b
	}
	if len(b.stack) == 1 {
		b.err = &BuildError{Kind: BuildNoParent, Name: b.stack[0].name, Path: b.pathString()}
		return b
	}
	b.stack = b.stack[:len(b.stack)-1]
	return b
}

// Root closes every open class, returning construction to the root.
func (b *Builder[R]) Root() *Builder[R] {
	if b.err != nil {
		return b
	}
	b.stack = b.stack[:1]
	return b
}

// Err returns the first error recorded by the chain, or nil.
func (b *Builder[R]) Err() error { return b.err }

// Build finalizes the tree and returns a Commander positioned at the
// root. When construction is still inside a nested class, Build ascends
// to the root first; WithStrictBuild turns that into an error instead.
// The tree cannot be changed afterwards and the builder must not be
// reused.
func (b *Builder[R]) Build() (*Commander[R], error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stack) > 1 {
		if b.cfg.strict {
			return nil, &BuildError{Kind: BuildUnfinished, Name: b.current().name, Path: b.pathString()}
		}
		b.stack = b.stack[:1]
	}
	root := b.stack[0]
	return &Commander[R]{
		root:    root,
		path:    []string{root.name},
		rootCmd: b.cfg.rootCmd,
	}, nil
}

// checkName validates a prospective child name against tokenization, the
// reserved built-in set and the current class's existing children.
func (b *Builder[R]) checkName(name string) error {
	if !validName(name) {
		return &BuildError{Kind: BuildNameInvalid, Name: name, Path: b.pathString()}
	}
	if reservedName(name, b.cfg.rootCmd) {
		return &BuildError{Kind: BuildNameReserved, Name: name, Path: b.pathString()}
	}
	cur := b.current()
	if cur.childClass(name) != nil {
		return &BuildError{Kind: BuildNameExistsAsClass, Name: name, Path: b.pathString()}
	}
	if cur.childAction(name) != nil {
		return &BuildError{Kind: BuildNameExistsAsAction, Name: name, Path: b.pathString()}
	}
	return nil
}

func (b *Builder[R]) current() *Class[R] { return b.stack[len(b.stack)-1] }

func (b *Builder[R]) pathString() string {
	names := make([]string, len(b.stack))
	for i, c := range b.stack {
		names[i] = c.name
	}
	return strings.Join(names, PathSeparator)
}

// validName reports whether name survives whitespace tokenization as a
// single unchanged token.
func validName(name string) bool {
	fields := strings.Fields(name)
	return len(fields) == 1 && fields[0] == name
}

func reservedName(name, rootCmd string) bool {
	switch name {
	case HelpCommand, ExitCommand, CancelCommand, CancelShort:
		return true
	}
	return rootCmd != "" && name == rootCmd
}
