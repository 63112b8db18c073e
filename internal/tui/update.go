package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
		// Tabs, help and margins take roughly six lines.
		m.historyModel.SetSize(size.Width-4, size.Height-8)
		m.badgesModel.SetSize(size.Width-4, size.Height-8)
	}

	if m.state == StateMorningForm || m.state == StateNightForm {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Morning):
			m.message, m.errMsg = "", ""
			return m, m.openMorningForm()
		case key.Matches(msg, m.keys.Night):
			m.message, m.errMsg = "", ""
			return m, m.openNightForm()
		case key.Matches(msg, m.keys.Recommend):
			m.recommend()
			m.state = StateWorkout
			return m, nil
		case key.Matches(msg, m.keys.Done) && m.state == StateWorkout:
			m.markDone()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHistory:
		m.historyModel, cmd = m.historyModel.Update(msg)
	case StateBadges:
		m.badgesModel, cmd = m.badgesModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Back) {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.submitForm() {
			m.closeForm()
		} else {
			// Keep the answers so the user can correct them.
			m.form.State = huh.StateNormal
		}
	case huh.StateAborted:
		m.closeForm()
	}
	return m, cmd
}
