package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/numeral/internal/convert"
	"github.com/csheth/numeral/internal/logging"
	"github.com/csheth/numeral/internal/theme"
)

// Config wires runtime collaborators into the form. Theme is the initial
// color scheme, detected once by the caller.
type Config struct {
	Client convert.Client
	Logger logging.Logger
	Theme  theme.Theme
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	return newModel(config)
}

func newModel(config Config) *model {
	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.Width = inputWidth
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &model{
		config:  config,
		log:     logging.Guard(config.Logger),
		state:   NewState(config.Theme),
		input:   input,
		spinner: spin,
		focus:   focusInput,
		layout:  newPageLayout(),
	}
}

type model struct {
	config  Config
	log     logging.Logger
	state   State
	input   textinput.Model
	spinner spinner.Model
	focus   focusTarget
	layout  pageLayout
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state.Conversion.Status != StatusPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case conversionResultMsg:
		return m, m.dispatch(ConversionSettled{
			Generation: msg.generation,
			Output:     msg.output,
			Err:        msg.err,
		})
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		return m, nil
	}
	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return tea.Quit
	case tea.KeyCtrlT:
		return m.dispatch(ThemeToggled{})
	case tea.KeyTab, tea.KeyShiftTab:
		m.cycleFocus()
		return nil
	case tea.KeyEnter:
		return m.submit()
	}
	if m.focus != focusInput {
		if key.Type == tea.KeySpace {
			return m.submit()
		}
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	if after := m.input.Value(); after != before {
		return tea.Batch(cmd, m.dispatch(InputChanged{Text: after}))
	}
	return cmd
}

func (m *model) cycleFocus() {
	if m.focus == focusInput {
		m.focus = focusButton
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *model) submit() tea.Cmd {
	if !m.state.Validation.Valid() {
		m.log.Warn("submission rejected", map[string]any{
			"input":  m.state.Input,
			"reason": m.state.Validation.Reason.String(),
		})
		return nil
	}
	return m.dispatch(SubmitRequested{})
}

// dispatch is the single entry point for state transitions. It applies ev
// and starts the conversion Reduce asks for, if any.
func (m *model) dispatch(ev Event) tea.Cmd {
	next, req := Reduce(m.state, ev)
	m.state = next
	if req == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, conversionJob(m.config.Client, *req))
}
