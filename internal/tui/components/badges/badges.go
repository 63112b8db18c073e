package badges

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/smartygym/internal/models"
)

var levelIcons = map[models.BadgeLevel]string{
	models.LevelBronze:  "🥉",
	models.LevelSilver:  "🥈",
	models.LevelGold:    "🥇",
	models.LevelSpecial: "🏅",
}

type Item struct {
	Badge models.Badge
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", levelIcons[i.Badge.Level], i.Badge.Type.DisplayName())
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · earned %s", i.Badge.Level, i.Badge.EarnedAt.Local().Format("2006-01-02"))
}

func (i Item) FilterValue() string { return i.Badge.Type.DisplayName() }

type Model struct {
	list list.Model
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Badges"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	return Model{list: l}
}

// SetBadges shows the newest badge first.
func (m *Model) SetBadges(badges []models.Badge) {
	sorted := append([]models.Badge(nil), badges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EarnedAt.After(sorted[j].EarnedAt)
	})
	items := make([]list.Item, len(sorted))
	for i, b := range sorted {
		items[i] = Item{Badge: b}
	}
	m.list.SetItems(items)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No badges yet. Complete both check-ins to start earning them."
	}
	return m.list.View()
}
