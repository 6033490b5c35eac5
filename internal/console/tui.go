package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/stockline/internal/dispatchers"
	"github.com/footprint-tools/stockline/internal/domain"
	"github.com/footprint-tools/stockline/internal/log"
	"github.com/footprint-tools/stockline/internal/ui/style"
)

// CommandLookup resolves the command being typed for the status line.
type CommandLookup interface {
	Lookup(name string) (dispatchers.CommandSpec, bool)
}

// Transcript collects everything shown in the TUI scrollback.
// The dispatcher writes its listings and failure details here.
type Transcript struct {
	b strings.Builder
}

func (t *Transcript) Write(p []byte) (int, error) {
	return t.b.Write(p)
}

func (t *Transcript) String() string {
	return t.b.String()
}

// reserved rows below the viewport: input and status line
const chromeHeight = 2

// TUI is a full-screen session: a scrollback viewport above a single-line
// prompt. Every Enter runs one dispatch cycle inside Update.
type TUI struct {
	proc       Processor
	commands   CommandLookup
	transcript *Transcript
	styler     domain.Styler
	logger     domain.Logger

	input    textinput.Model
	viewport viewport.Model
	ready    bool
	stopped  bool
}

type TUIOption func(*TUI)

func WithCommands(c CommandLookup) TUIOption {
	return func(t *TUI) {
		t.commands = c
	}
}

func WithTUIStyler(s domain.Styler) TUIOption {
	return func(t *TUI) {
		t.styler = s
	}
}

func WithTUILogger(l domain.Logger) TUIOption {
	return func(t *TUI) {
		t.logger = l
	}
}

// NewTUI creates a TUI writing its scrollback to transcript.
func NewTUI(transcript *Transcript, prompt string, opts ...TUIOption) *TUI {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = `"?" lists commands`
	ti.CharLimit = 512
	ti.Focus()

	t := &TUI{
		transcript: transcript,
		styler:     style.NopStyler{},
		logger:     log.NopLogger{},
		input:      ti,
		viewport:   viewport.New(80, 20),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Stop quits the program after the current line. Used as the quit hook.
func (t *TUI) Stop() {
	t.stopped = true
}

// Run starts p and blocks until the user quits.
func (t *TUI) Run(p Processor) error {
	t.proc = p
	p.Start()
	t.refresh()
	t.logger.Info("console: tui session started")

	_, err := tea.NewProgram(t, tea.WithAltScreen()).Run()
	if err != nil {
		t.logger.Error("console: tui: %v", err)
		return fmt.Errorf("run tui: %w", err)
	}
	t.logger.Info("console: tui session ended")
	return nil
}

func (t *TUI) Init() tea.Cmd {
	return textinput.Blink
}

func (t *TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.viewport.Width = msg.Width
		t.viewport.Height = max(msg.Height-chromeHeight, 1)
		t.input.Width = max(msg.Width-len(t.input.Prompt)-1, 1)
		t.ready = true
		t.refresh()
		return t, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return t, tea.Quit
		case tea.KeyEnter:
			return t, t.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			t.viewport, cmd = t.viewport.Update(msg)
			return t, cmd
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *TUI) submit() tea.Cmd {
	line := t.input.Value()
	t.input.Reset()

	fmt.Fprintln(t.transcript, t.styler.Muted(t.input.Prompt+line))
	result := t.proc.Process(line)
	if t.stopped {
		return tea.Quit
	}
	fmt.Fprintln(t.transcript, FormatResult(t.styler, result))

	t.refresh()
	return nil
}

func (t *TUI) refresh() {
	t.viewport.SetContent(t.transcript.String())
	t.viewport.GotoBottom()
}

func (t *TUI) View() string {
	if t.stopped {
		return ""
	}
	return t.viewport.View() + "\n" + t.input.View() + "\n" + t.status()
}

// status describes the arguments of the command being typed, marking the
// one the next token binds to.
func (t *TUI) status() string {
	fields := strings.Fields(t.input.Value())
	if t.commands == nil || len(fields) == 0 {
		return t.styler.Muted(`"?" lists commands, "q" quits`)
	}

	cmd, ok := t.commands.Lookup(fields[0])
	if !ok {
		return t.styler.Muted("unknown command")
	}
	return ArgHint(cmd, len(fields)-1, t.styler)
}

// ArgHint renders cmd's arguments, highlighting argument next.
func ArgHint(cmd dispatchers.CommandSpec, next int, st domain.Styler) string {
	parts := []string{st.Header(cmd.Name)}
	for i, a := range cmd.Args {
		label := a.Name
		if a.Description != "" {
			label += ": " + a.Description
		}
		label = "<" + label + ">"
		if i == next {
			label = st.Info(label)
		} else {
			label = st.Muted(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}
