package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/model"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	color := phaseColor(m.state.Phase)
	var b strings.Builder

	b.WriteString(titleStyle.Render("🍅 " + m.appName))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	clock := clockStyle.Render(m.state.Display())
	if m.state.Running {
		clock = m.spinner.View() + " " + clock
	}
	b.WriteString(clockBoxStyle.BorderForeground(color).Render(clock))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(m.label))
	b.WriteString("\n\n")
	b.WriteString(m.progress.ViewAs(m.state.Progress()))
	b.WriteString("\n")
	b.WriteString(counterStyle.Render(fmt.Sprintf("Completed pomodoros: %d", m.state.Completed)))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.pending != nil {
		b.WriteString(confirmStyle.Render(fmt.Sprintf("%s (%s)", SwitchConfirmMessage, m.pending.IdleName())))
		b.WriteString("\n")
		b.WriteString(m.help.View(confirmKeys{keys: m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(model.Phases))
	for _, phase := range model.Phases {
		if phase == m.state.Phase {
			tabs = append(tabs, activeTabStyle.Background(phaseColor(phase)).Render(phase.IdleName()))
			continue
		}
		tabs = append(tabs, tabStyle.Render(phase.IdleName()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
