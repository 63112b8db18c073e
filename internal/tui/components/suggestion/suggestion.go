package suggestion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartygym/internal/recommend"
	"github.com/julianstephens/smartygym/internal/tui/theme"
)

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	reasonStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// Model shows the current workout suggestion.
type Model struct {
	result *recommend.Result
	err    error
}

func New() Model {
	return Model{}
}

func (m *Model) SetResult(res *recommend.Result, err error) {
	m.result = res
	m.err = err
}

// ContentID is the suggested item, or "" when there is none.
func (m Model) ContentID() string {
	if m.result == nil {
		return ""
	}
	return m.result.Suggestion.Item.ID
}

func (m Model) View() string {
	switch {
	case errors.Is(m.err, recommend.ErrNoSuitableContent):
		return "\n  The catalog is empty. Run 'smarty catalog import' to add workouts."
	case m.err != nil:
		return fmt.Sprintf("\n  Could not build a suggestion: %v", m.err)
	case m.result == nil:
		return "\n  Press 'r' for a workout suggestion."
	}

	s := m.result.Suggestion
	var b strings.Builder
	b.WriteString(nameStyle.Render(s.Item.Name) + "\n")
	meta := []string{s.Item.Category, string(s.Item.Type)}
	if s.Item.Duration != "" {
		meta = append(meta, s.Item.Duration)
	}
	if s.Item.Difficulty != nil {
		meta = append(meta, string(*s.Item.Difficulty))
	}
	b.WriteString(metaStyle.Render(strings.Join(meta, " · ")) + "\n\n")
	b.WriteString(fmt.Sprintf("Match score %d\n", s.Score))
	for _, r := range s.Reasons {
		b.WriteString(reasonStyle.Render("• "+r) + "\n")
	}
	if n := m.result.Note; n != nil {
		b.WriteString("\n" + theme.Note(n.Severity).Render(n.Message) + "\n")
	}
	b.WriteString("\n" + metaStyle.Render("Press 'd' once you have done it."))
	return b.String()
}
