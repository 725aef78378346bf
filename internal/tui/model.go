// Package tui is the terminal front-end of the timer.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"
)

// SwitchConfirmMessage is asked before switching away from a running phase.
const SwitchConfirmMessage = "The timer is running, switch mode?"

const maxProgressWidth = 60

// Controller is the set of timer commands the terminal issues.
type Controller interface {
	Toggle()
	Reset()
	SwitchPhase(target model.Phase)
	Snapshot() timekeeper.State
}

// EffectMsg carries an effect from the timekeeper.
type EffectMsg struct {
	Effect timekeeper.Effect
}

type effectsClosedMsg struct{}

// Model is the bubbletea model for the TUI.
type Model struct {
	controller Controller
	effects    <-chan timekeeper.Effect
	appName    string
	state      timekeeper.State
	label      string
	notice     string
	pending    *model.Phase
	keys       keyMap
	help       help.Model
	progress   progress.Model
	spinner    spinner.Model
	width      int
	quitting   bool
}

// NewModel creates a model rendering controller. effects may be nil when
// the caller does not subscribe.
func NewModel(controller Controller, effects <-chan timekeeper.Effect, appName string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	state := controller.Snapshot()
	return Model{
		controller: controller,
		effects:    effects,
		appName:    appName,
		state:      state,
		label:      labelFor(state),
		keys:       defaultKeyMap(),
		help:       help.New(),
		progress:   progress.New(progress.WithSolidFill(string(phaseColor(state.Phase))), progress.WithoutPercentage()),
		spinner:    s,
	}
}

// Run starts the terminal program and blocks until the user quits.
func Run(controller Controller, effects <-chan timekeeper.Effect, appName string, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewModel(controller, effects, appName), opts...).Run()
	return err
}

func waitForEffect(effects <-chan timekeeper.Effect) tea.Cmd {
	if effects == nil {
		return nil
	}
	return func() tea.Msg {
		effect, ok := <-effects
		if !ok {
			return effectsClosedMsg{}
		}
		return EffectMsg{Effect: effect}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEffect(m.effects))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case EffectMsg:
		m.applyEffect(msg.Effect)
		return m, waitForEffect(m.effects)

	case effectsClosedMsg:
		m.effects = nil
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-4, 10), maxProgressWidth)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.pending != nil {
		switch {
		case key.Matches(msg, m.keys.Yes):
			target := *m.pending
			m.pending = nil
			m.controller.SwitchPhase(target)
			m.refresh()
		case key.Matches(msg, m.keys.No):
			m.pending = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.controller.Toggle()
		m.refresh()
	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
		m.refresh()
	case key.Matches(msg, m.keys.Focus):
		m.requestSwitch(model.PhaseFocus)
	case key.Matches(msg, m.keys.ShortBreak):
		m.requestSwitch(model.PhaseShortBreak)
	case key.Matches(msg, m.keys.LongBreak):
		m.requestSwitch(model.PhaseLongBreak)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) requestSwitch(target model.Phase) {
	if m.controller.Snapshot().Running {
		m.pending = &target
		return
	}
	m.controller.SwitchPhase(target)
	m.refresh()
}

// refresh reads the state after a command so the next frame does not wait
// for the effect round trip.
func (m *Model) refresh() {
	m.state = m.controller.Snapshot()
	m.label = labelFor(m.state)
	m.notice = ""
	m.recolor()
}

func labelFor(state timekeeper.State) string {
	switch {
	case state.Running:
		return state.Phase.RunningLabel()
	case state.Remaining == state.Total:
		return state.Phase.IdleName()
	case state.Remaining == 0:
		return state.Phase.CompleteLabel()
	default:
		return model.PausedLabel
	}
}

func (m *Model) applyEffect(effect timekeeper.Effect) {
	phaseChanged := effect.State.Phase != m.state.Phase
	m.state = effect.State
	switch effect.Type {
	case timekeeper.EffectLabel:
		m.label = effect.Label
	case timekeeper.EffectNotify:
		m.notice = notify.Icon + " " + effect.NotifyTitle + " " + effect.NotifyBody
	}
	if phaseChanged {
		m.recolor()
	}
}

func (m *Model) recolor() {
	fill := string(phaseColor(m.state.Phase))
	width := m.progress.Width
	m.progress = progress.New(progress.WithSolidFill(fill), progress.WithoutPercentage())
	m.progress.Width = width
}
