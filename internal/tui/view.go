package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.todayModel.View())
	case StateHistory:
		content = docStyle.Render(m.historyModel.View())
	case StateBadges:
		content = docStyle.Render(m.badgesModel.View())
	case StateWorkout:
		content = docStyle.Render(m.suggestion.View())
	case StateMorningForm, StateNightForm:
		content = docStyle.Render(m.form.View())
	}

	parts := []string{m.viewTabs(), content}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg))
	} else if m.message != "" {
		parts = append(parts, messageStyle.Render(m.message))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active >= tabCount {
		active = m.previousState
	}
	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
