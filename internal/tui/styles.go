package tui

import (
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/model"
)

var phaseColors = map[model.Phase]lipgloss.Color{
	model.PhaseFocus:      lipgloss.Color("#ba4949"),
	model.PhaseShortBreak: lipgloss.Color("#38858a"),
	model.PhaseLongBreak:  lipgloss.Color("#397097"),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	clockBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 4).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	counterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e67e22")).
			Bold(true)

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

func phaseColor(phase model.Phase) lipgloss.Color {
	if c, ok := phaseColors[phase]; ok {
		return c
	}
	return phaseColors[model.PhaseFocus]
}
