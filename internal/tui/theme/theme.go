// Package theme holds colours shared by the CLI output and the TUI.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartygym/internal/models"
)

var categoryColors = map[models.ScoreCategory]lipgloss.Color{
	models.CategoryRed:    lipgloss.Color("196"),
	models.CategoryOrange: lipgloss.Color("208"),
	models.CategoryYellow: lipgloss.Color("220"),
	models.CategoryGreen:  lipgloss.Color("42"),
}

var noteColors = map[models.NoteSeverity]lipgloss.Color{
	models.NoteCaution:       lipgloss.Color("208"),
	models.NoteEncouragement: lipgloss.Color("42"),
	models.NoteInfo:          lipgloss.Color("39"),
}

// Category returns the style for a score category.
func Category(cat models.ScoreCategory) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(categoryColors[cat]).Bold(true)
}

// Note returns the style for an advisory note.
func Note(severity models.NoteSeverity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(noteColors[severity])
}

// Score renders "64 (yellow)" in the category colour, or "-" when the day
// has no composite.
func Score(rec models.CheckinRecord) string {
	if !rec.HasComposite() {
		return "-"
	}
	return Category(*rec.ScoreCategory).Render(fmt.Sprintf("%d (%s)", *rec.DailySmartyScore, *rec.ScoreCategory))
}
