package shell

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kurtlawrence/cmdtree"
	"github.com/kurtlawrence/cmdtree/completion"
	"github.com/kurtlawrence/cmdtree/internal/log"
	"github.com/kurtlawrence/cmdtree/internal/style"
)

// historyPreload caps how many stored lines are loaded for up/down
// navigation.
const historyPreload = 100

// Interactive runs a Commander as a Bubble Tea program: a prompt line
// with ghost completions (tab accepts, ctrl+n/ctrl+p cycle), up/down
// history, and executed output flowing into the terminal scrollback.
type Interactive[R any] struct {
	Cmd     *cmdtree.Commander[R]
	History History             // optional
	Args    completion.ArgsFunc // optional hook for action arguments
	Present Presenter[R]        // optional, defaults to DefaultPresenter
}

// Run blocks until the session ends with an exit command, ctrl+c, or
// ctrl+d on an empty line.
func (i *Interactive[R]) Run() error {
	p := tea.NewProgram(newShellModel(i))
	_, err := p.Run()
	return err
}

type shellModel[R any] struct {
	cmd       *cmdtree.Commander[R]
	history   History
	completer completion.Completer[R]
	present   Presenter[R]

	input textinput.Model

	inputHistory []string // oldest first
	historyIndex int      // -1 when not navigating
	currentInput string   // stashed value while navigating

	quitting bool
}

func newShellModel[R any](i *Interactive[R]) shellModel[R] {
	ti := textinput.New()
	ti.Placeholder = "help"
	ti.ShowSuggestions = true
	ti.Focus()

	if style.Enabled() {
		cfg := style.GetColors()
		ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Prompt))
	}

	present := i.Present
	if present == nil {
		present = DefaultPresenter[R]
	}

	m := shellModel[R]{
		cmd:          i.Cmd,
		history:      i.History,
		completer:    completion.Completer[R]{Cmd: i.Cmd, Args: i.Args},
		present:      present,
		input:        ti,
		historyIndex: -1,
	}

	if i.History != nil {
		recent, err := i.History.Recent(historyPreload)
		if err != nil {
			log.Warn("shell: load history: %v", err)
		}
		// Recent is newest first; navigation walks oldest to newest.
		for idx := len(recent) - 1; idx >= 0; idx-- {
			m.inputHistory = append(m.inputHistory, recent[idx])
		}
	}

	m.syncPrompt()
	m.refreshSuggestions()
	return m
}

func (m shellModel[R]) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel[R]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyCtrlD:
			// EOF on an empty line; otherwise the usual delete-forward.
			if m.input.Value() == "" {
				m.quitting = true
				return m, tea.Quit
			}
			return m.delegate(msg)

		case tea.KeyEnter:
			return m.handleEnter()

		case tea.KeyUp:
			if len(m.inputHistory) > 0 {
				if m.historyIndex == -1 {
					m.currentInput = m.input.Value()
					m.historyIndex = len(m.inputHistory) - 1
				} else if m.historyIndex > 0 {
					m.historyIndex--
				}
				m.input.SetValue(m.inputHistory[m.historyIndex])
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			if m.historyIndex != -1 {
				if m.historyIndex < len(m.inputHistory)-1 {
					m.historyIndex++
					m.input.SetValue(m.inputHistory[m.historyIndex])
				} else {
					m.historyIndex = -1
					m.input.SetValue(m.currentInput)
				}
				m.input.CursorEnd()
			}
			return m, nil
		}

		return m.delegate(msg)
	}

	return m, nil
}

// delegate hands a key to the textinput and recomputes completions for
// the resulting value.
func (m shellModel[R]) delegate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()
	return m, cmd
}

func (m shellModel[R]) handleEnter() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	cmds := []tea.Cmd{tea.Println(m.promptString() + line)}

	if strings.TrimSpace(line) != "" {
		if m.history != nil {
			if err := m.history.Append(line); err != nil {
				log.Warn("shell: append history: %v", err)
			}
		}
		// Skip consecutive duplicates in the navigation list.
		if n := len(m.inputHistory); n == 0 || m.inputHistory[n-1] != line {
			m.inputHistory = append(m.inputHistory, line)
			if len(m.inputHistory) > historyPreload {
				m.inputHistory = m.inputHistory[len(m.inputHistory)-historyPreload:]
			}
		}
	}
	m.historyIndex = -1
	m.currentInput = ""

	var buf bytes.Buffer
	out := m.cmd.Execute(&buf, line)
	m.present(&buf, out, m.cmd)

	if text := strings.TrimRight(buf.String(), "\n"); text != "" {
		cmds = append(cmds, tea.Println(text))
	}

	m.input.Reset()
	m.syncPrompt()
	m.refreshSuggestions()

	if out.Kind == cmdtree.KindExit {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	}

	return m, tea.Sequence(cmds...)
}

// syncPrompt rebuilds the prompt after the cursor may have moved.
func (m *shellModel[R]) syncPrompt() {
	m.input.Prompt = m.cmd.PathString() + "=> "
}

// promptString renders the prompt for transcript lines.
func (m shellModel[R]) promptString() string {
	return style.Prompt(m.cmd.PathString()+"=>") + " "
}

// refreshSuggestions feeds the textinput full-line suggestions built
// from the token completions for the word being typed.
func (m *shellModel[R]) refreshSuggestions() {
	line := m.input.Value()

	tokens := m.completer.Complete(line)
	if len(tokens) == 0 {
		m.input.SetSuggestions(nil)
		return
	}

	base := ""
	if idx := strings.LastIndexFunc(line, unicode.IsSpace); idx >= 0 {
		base = line[:idx+1]
	}

	full := make([]string, len(tokens))
	for i, tok := range tokens {
		full[i] = base + tok
	}
	m.input.SetSuggestions(full)
}

func (m shellModel[R]) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n"
}
