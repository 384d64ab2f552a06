// cmdtree is a demo shell for the command tree library: a small tree of
// printing, history and config commands served over the interactive
// Bubble Tea prompt, or over a plain line loop for pipes.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/kurtlawrence/cmdtree"
	"github.com/kurtlawrence/cmdtree/internal/config"
	"github.com/kurtlawrence/cmdtree/internal/history"
	"github.com/kurtlawrence/cmdtree/internal/log"
	"github.com/kurtlawrence/cmdtree/internal/paths"
	"github.com/kurtlawrence/cmdtree/internal/style"
	"github.com/kurtlawrence/cmdtree/shell"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		plain       bool
		noColor     bool
		theme       string
		noHistory   bool
		logLevel    string
		showVersion bool
	)

	flagSet := pflag.NewFlagSet("cmdtree", pflag.ContinueOnError)
	flagSet.BoolVar(&plain, "plain", false, "line-based shell without the TUI prompt")
	flagSet.BoolVar(&noColor, "no-color", false, "disable styled output")
	flagSet.StringVar(&theme, "theme", "", "color theme for this run (default, vivid, mono)")
	flagSet.BoolVar(&noHistory, "no-history", false, "do not record input history")
	flagSet.StringVar(&logLevel, "log-level", "", "log level for this run (debug, info, warn, error)")
	flagSet.BoolVar(&showVersion, "version", false, "print the version and exit")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if showVersion {
		fmt.Println("cmdtree " + version)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	provider := config.NewProvider()

	cfg, err := provider.GetAll()
	if err != nil {
		return err
	}
	if theme != "" {
		cfg["theme"] = theme
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	style.Init(isTTY && !noColor, cfg)

	if cfg["enable_log"] == "true" {
		level := cfg["log_level"]
		if logLevel != "" {
			level = logLevel
		}
		if err := log.Init(paths.LogFilePath(), log.ParseLevel(level)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file: %v\n", err)
		}
	}
	defer log.Close()

	var hist *history.Store
	if !noHistory {
		hist, err = history.New(paths.HistoryDBPath())
		if err != nil {
			log.Warn("main: open history: %v", err)
			hist = nil
		}
	}
	if hist != nil {
		defer hist.Close()
		if removed, perr := hist.Prune(historyLimit(provider)); perr != nil {
			log.Warn("main: prune history: %v", perr)
		} else if removed > 0 {
			log.Debug("main: pruned %d history entries", removed)
		}
	}

	deps := &appDeps{cfg: provider, history: hist, version: version}

	cmd, err := buildTree(deps)
	if err != nil {
		return err
	}

	log.Info("main: session started (tty=%v plain=%v)", isTTY, plain)

	if plain || !isTTY {
		s := shell.Session[error]{
			Cmd:     cmd,
			In:      shell.NewScanReader(os.Stdin),
			Out:     os.Stdout,
			History: sessionHistory(hist),
			Present: presentOutcome,
		}
		return s.Run()
	}

	i := shell.Interactive[error]{
		Cmd:     cmd,
		History: sessionHistory(hist),
		Args:    deps.completeArgs,
		Present: presentOutcome,
	}
	return i.Run()
}

// sessionHistory avoids handing the shell an interface wrapping a nil
// pointer.
func sessionHistory(hist *history.Store) shell.History {
	if hist == nil {
		return nil
	}
	return hist
}

// presentOutcome adds handler-error rendering on top of the default
// not-found reporting.
func presentOutcome(w io.Writer, out cmdtree.Outcome[error], cmd *cmdtree.Commander[error]) {
	shell.DefaultPresenter(w, out, cmd)

	if out.Kind == cmdtree.KindAction && out.Value != nil {
		fmt.Fprintln(w, style.Error(out.Value.Error()))
	}
}
