// Package shell runs a Commander as an interactive session: a plain
// line-by-line loop for pipes and dumb terminals, and a Bubble Tea
// program with completion and history for real ones.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kurtlawrence/cmdtree"
	"github.com/kurtlawrence/cmdtree/internal/log"
	"github.com/kurtlawrence/cmdtree/internal/style"
)

// LineReader supplies input lines. Returning io.EOF ends the session
// the same way an exit command would.
type LineReader interface {
	ReadLine() (string, error)
}

type scanReader struct {
	s *bufio.Scanner
}

// NewScanReader returns a LineReader over r.
func NewScanReader(r io.Reader) LineReader {
	return &scanReader{s: bufio.NewScanner(r)}
}

func (r *scanReader) ReadLine() (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.s.Text(), nil
}

// History records submitted lines and replays recent ones.
// *history.Store satisfies it.
type History interface {
	Append(line string) error
	Recent(limit int) ([]string, error)
}

// Presenter renders one executed outcome to the session writer. The
// handlers have already written their own output by the time it runs.
type Presenter[R any] func(w io.Writer, out cmdtree.Outcome[R], cmd *cmdtree.Commander[R])

// Session drives a Commander over a line reader until the input is
// exhausted or an exit command runs.
type Session[R any] struct {
	Cmd     *cmdtree.Commander[R]
	In      LineReader
	Out     io.Writer
	History History      // optional
	Present Presenter[R] // optional, defaults to DefaultPresenter
}

// Run loops: prompt, read, execute, present. Blank lines are not
// recorded in history.
func (s *Session[R]) Run() error {
	present := s.Present
	if present == nil {
		present = DefaultPresenter[R]
	}

	for {
		fmt.Fprintf(s.Out, "%s ", style.Prompt(s.Cmd.PathString()+"=>"))

		line, err := s.In.ReadLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.Out)
			return nil
		}
		if err != nil {
			return err
		}

		if s.History != nil && strings.TrimSpace(line) != "" {
			if herr := s.History.Append(line); herr != nil {
				log.Warn("shell: append history: %v", herr)
			}
		}

		out := s.Cmd.Execute(s.Out, line)
		present(s.Out, out, s.Cmd)

		if out.Kind == cmdtree.KindExit {
			return nil
		}
	}
}

// DefaultPresenter reports unmatched tokens, with a suggestion when one
// is close enough. Other outcomes write nothing extra.
func DefaultPresenter[R any](w io.Writer, out cmdtree.Outcome[R], cmd *cmdtree.Commander[R]) {
	if out.Kind != cmdtree.KindNotFound {
		return
	}

	fmt.Fprintln(w, style.Error(fmt.Sprintf("unknown command %q", out.Token)))

	if sugg := cmd.Suggestions(out.Token); len(sugg) > 0 {
		fmt.Fprintln(w, style.Muted("did you mean "+sugg[0]+"?"))
	}
}
