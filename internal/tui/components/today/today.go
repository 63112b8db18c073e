package today

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/tui/theme"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(14)

	barFull  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)

// Model shows one day's check-in with a bar per sub-score.
type Model struct {
	date   string
	record *models.CheckinRecord
	streak int
}

func New(date string) Model {
	return Model{date: date}
}

func (m *Model) SetRecord(date string, rec *models.CheckinRecord, streak int) {
	m.date = date
	m.record = rec
	m.streak = streak
}

func bar(v *int) string {
	if v == nil {
		return barEmpty.Render(strings.Repeat("·", 10)) + "  -"
	}
	return barFull.Render(strings.Repeat("█", *v)) + barEmpty.Render(strings.Repeat("░", 10-*v)) + fmt.Sprintf(" %2d", *v)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Today · " + m.date))
	b.WriteString("\n")

	if m.record == nil {
		b.WriteString("No check-in yet.\n\nPress 'm' for the morning check-in or 'n' for the night check-in.")
		return b.String()
	}

	rec := m.record
	rows := []struct {
		label string
		value *int
	}{
		{"Sleep", rec.SleepScore},
		{"Readiness", rec.ReadinessScoreNorm},
		{"Soreness", rec.SorenessScore},
		{"Mood", rec.MoodScore},
		{"Movement", rec.MovementScore},
		{"Hydration", rec.HydrationScore},
		{"Protein", rec.ProteinScoreNorm},
		{"Day strain", rec.DayStrainScore},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.label) + bar(r.value) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Daily score") + theme.Score(*rec) + "\n")

	switch rec.Status {
	case models.StatusIncompleteMorningOnly:
		b.WriteString("\nNight check-in pending (press 'n').")
	case models.StatusIncompleteNightOnly:
		b.WriteString("\nMorning check-in missing (press 'm').")
	}
	if m.streak > 0 {
		b.WriteString(fmt.Sprintf("\n🔥 %d day streak", m.streak))
	}
	return b.String()
}
