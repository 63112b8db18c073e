package history

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartygym/internal/models"
)

func intCell(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func statusCell(status models.CheckinStatus) string {
	switch status {
	case models.StatusComplete:
		return "✓"
	case models.StatusIncompleteMorningOnly:
		return "AM"
	case models.StatusIncompleteNightOnly:
		return "PM"
	default:
		return "✗"
	}
}

// Rows converts records to table rows, newest first as given.
func Rows(records []models.CheckinRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		category := "-"
		if rec.ScoreCategory != nil {
			category = string(*rec.ScoreCategory)
		}
		rows = append(rows, table.Row{
			rec.Date,
			statusCell(rec.Status),
			intCell(rec.DailySmartyScore),
			category,
			intCell(rec.SleepScore),
			intCell(rec.MovementScore),
			intCell(rec.HydrationScore),
		})
	}
	return rows
}

type Model struct {
	table table.Model
}

func New(width, height int) Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "", Width: 3},
		{Title: "Score", Width: 6},
		{Title: "Category", Width: 9},
		{Title: "Sleep", Width: 6},
		{Title: "Move", Width: 5},
		{Title: "Water", Width: 6},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 5)),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{table: t}
}

func (m *Model) SetRecords(records []models.CheckinRecord) {
	m.table.SetRows(Rows(records))
}

func (m *Model) SetSize(width, height int) {
	m.table.SetWidth(width)
	m.table.SetHeight(max(height, 5))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.table.Rows()) == 0 {
		return "\n  No check-ins yet."
	}
	return m.table.View()
}
