package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/kurtlawrence/cmdtree"
	"github.com/kurtlawrence/cmdtree/internal/config"
	"github.com/kurtlawrence/cmdtree/internal/format"
	"github.com/kurtlawrence/cmdtree/internal/history"
	"github.com/kurtlawrence/cmdtree/internal/paths"
	"github.com/kurtlawrence/cmdtree/internal/style"
)

const defaultHistoryLimit = 1000

// appDeps carries what the action handlers need beyond their arguments.
type appDeps struct {
	cfg     *config.Provider
	history *history.Store // nil when --no-history
	version string
}

// buildTree assembles the demo command tree:
//
//	cmdtree
//	├── print
//	│   ├── echo
//	│   └── countdown
//	├── history
//	│   ├── show
//	│   └── prune
//	├── config
//	│   ├── show
//	│   ├── path
//	│   ├── set
//	│   └── unset
//	└── version
func buildTree(deps *appDeps) (*cmdtree.Commander[error], error) {
	b := cmdtree.NewBuilder[error]("cmdtree", "command tree demo shell",
		cmdtree.WithRootCommand("home"))

	b.Class("print", "printing commands").
		Action("echo", "echo the arguments", echoAction).
		Action("countdown", "count down from a number", countdownAction).
		End()

	b.Class("history", "inspect the input history").
		Action("show", "list recent entries", deps.historyShow).
		Action("prune", "trim stored entries", deps.historyPrune).
		End()

	b.Class("config", "inspect and edit configuration").
		Action("show", "list configuration values", deps.configShow).
		Action("path", "print the config file location", deps.configPath).
		Action("set", "set a configuration value", deps.configSet).
		Action("unset", "remove a configuration value", deps.configUnset).
		End()

	b.Action("version", "print the version", deps.showVersion)

	return b.Build()
}

func echoAction(w io.Writer, args []string) error {
	fmt.Fprintln(w, strings.Join(args, " "))
	return nil
}

func countdownAction(w io.Writer, args []string) error {
	if len(args) != 1 {
		return errors.New("countdown: expected exactly one number")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("countdown: %q is not a number", args[0])
	}
	if n < 0 {
		return fmt.Errorf("countdown: %d is negative", n)
	}

	for i := n; i >= 0; i-- {
		fmt.Fprintln(w, i)
	}
	return nil
}

func (d *appDeps) showVersion(w io.Writer, _ []string) error {
	fmt.Fprintln(w, "cmdtree "+d.version)
	return nil
}

func (d *appDeps) historyShow(w io.Writer, args []string) error {
	if d.history == nil {
		return errors.New("history is disabled")
	}

	limit := 20
	switch len(args) {
	case 0:
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("history show: %q is not a positive number", args[0])
		}
		limit = n
	default:
		return errors.New("history show: expected at most one argument")
	}

	entries, err := d.history.RecentEntries(limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, style.Muted("history is empty"))
		return nil
	}

	for _, e := range entries {
		when := fmt.Sprintf("%-12s", format.Relative(e.At))
		fmt.Fprintf(w, "%s %s\n", style.Muted(when), e.Line)
	}
	return nil
}

func (d *appDeps) historyPrune(w io.Writer, args []string) error {
	if d.history == nil {
		return errors.New("history is disabled")
	}

	keep := historyLimit(d.cfg)
	switch len(args) {
	case 0:
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("history prune: %q is not a non-negative number", args[0])
		}
		keep = n
	default:
		return errors.New("history prune: expected at most one argument")
	}

	removed, err := d.history.Prune(keep)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "removed %d entries, kept at most %d\n", removed, keep)
	return nil
}

func (d *appDeps) configShow(w io.Writer, _ []string) error {
	all, err := d.cfg.GetAll()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		value := all[k]
		if value == "" {
			value = style.Muted("(unset)")
		}
		fmt.Fprintf(w, "%-16s %s\n", k, value)
	}
	return nil
}

func (d *appDeps) configPath(w io.Writer, _ []string) error {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, path)
	return nil
}

func (d *appDeps) configSet(w io.Writer, args []string) error {
	if len(args) != 2 {
		return errors.New("config set: expected <key> <value>")
	}

	key, value := args[0], args[1]
	if _, ok := config.Defaults[key]; !ok {
		return fmt.Errorf("config set: unknown key %q", key)
	}

	if err := d.cfg.Set(key, value); err != nil {
		return err
	}

	fmt.Fprintln(w, style.Success(key+" saved"))
	return nil
}

func (d *appDeps) configUnset(w io.Writer, args []string) error {
	if len(args) != 1 {
		return errors.New("config unset: expected <key>")
	}

	key := args[0]
	if _, ok := config.Defaults[key]; !ok {
		return fmt.Errorf("config unset: unknown key %q", key)
	}

	if err := d.cfg.Unset(key); err != nil {
		return err
	}

	fmt.Fprintln(w, style.Success(key+" reset to default"))
	return nil
}

// completeArgs supplies argument completions for the config actions.
func (d *appDeps) completeArgs(action, args []string) []string {
	path := strings.Join(action, ".")

	switch {
	case strings.HasSuffix(path, ".config.set"):
		switch len(args) {
		case 1:
			return matchingConfigKeys(args[0])
		case 2:
			if args[0] == "theme" {
				return matchingThemes(args[1])
			}
		}

	case strings.HasSuffix(path, ".config.unset"):
		if len(args) == 1 {
			return matchingConfigKeys(args[0])
		}
	}

	return nil
}

func matchingConfigKeys(prefix string) []string {
	var out []string
	for _, key := range config.Keys {
		if strings.HasPrefix(key.Name, prefix) {
			out = append(out, key.Name)
		}
	}
	return out
}

func matchingThemes(prefix string) []string {
	var out []string
	for _, name := range style.BaseThemeNames {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// historyLimit reads the configured retention, falling back when the
// value is missing or malformed.
func historyLimit(cfg *config.Provider) int {
	raw, ok := cfg.Get("history_limit")
	if !ok {
		return defaultHistoryLimit
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return defaultHistoryLimit
	}
	return n
}
