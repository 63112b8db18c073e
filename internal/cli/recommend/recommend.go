package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartygym/internal/cli"
	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/recommend"
	"github.com/julianstephens/smartygym/internal/tui/theme"
)

// RecommendCmd suggests one workout. Flags override what the stored
// check-in and settings say for this request only.
type RecommendCmd struct {
	Goal         *string  `help:"Goal for this session (e.g. weight_loss, muscle_gain, endurance)."`
	Time         *int     `help:"Minutes available."`
	Equipment    *string  `help:"Equipment available: bodyweight or equipment."`
	Energy       *int     `help:"Energy level (1-10)."`
	Mood         *int     `help:"Mood (1-5)."`
	Soreness     *int     `help:"Soreness (1-5)."`
	Sleep        *float64 `help:"Hours slept last night."`
	Alternatives int      `help:"Number of runner-up suggestions to show." default:"2"`
	JSON         bool     `help:"Print the result as JSON."`
}

func (c *RecommendCmd) answers() models.QuestionAnswers {
	return models.QuestionAnswers{
		Goal:          c.Goal,
		TimeAvailable: c.Time,
		Equipment:     c.Equipment,
		Energy:        c.Energy,
		Mood:          c.Mood,
		Soreness:      c.Soreness,
		SleepHours:    c.Sleep,
	}
}

func (c *RecommendCmd) Run(ctx *cli.Context) error {
	res, err := ctx.Recommender().Recommend(ctx.Context(), c.answers())
	if errors.Is(err, recommend.ErrNoSuitableContent) {
		return fmt.Errorf("%w: the catalog is empty, run 'smarty catalog import' first", err)
	}
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	PrintResult(res, c.Alternatives)
	return nil
}

// PrintResult writes the suggestion, its reasons, the note and up to
// alternatives runner-ups.
func PrintResult(res recommend.Result, alternatives int) {
	s := res.Suggestion
	title := lipgloss.NewStyle().Bold(true).Render(s.Item.Name)
	fmt.Printf("Today's pick: %s  [%s, %s]\n", title, s.Item.Category, describe(s.Item))
	fmt.Printf("  Match score: %d\n", s.Score)
	for _, r := range s.Reasons {
		fmt.Printf("  • %s\n", r)
	}
	if len(res.Relaxed) > 0 {
		fmt.Printf("  (relaxed %s filter to find a match)\n", strings.Join(res.Relaxed, " and "))
	}
	if res.Note != nil {
		fmt.Println()
		fmt.Println(theme.Note(res.Note.Severity).Render(res.Note.Message))
	}

	others := res.Ranked
	if len(others) > 0 {
		others = others[1:]
	}
	if alternatives < len(others) {
		others = others[:max(alternatives, 0)]
	}
	if len(others) > 0 {
		fmt.Println("\nAlso worth a look:")
		for _, o := range others {
			fmt.Printf("  %-32s %3d  %s\n", o.Item.Name, o.Score, o.Item.Category)
		}
	}
}

func describe(item models.ContentItem) string {
	parts := []string{string(item.Type)}
	if item.Duration != "" {
		parts = append(parts, item.Duration)
	}
	if item.Difficulty != nil {
		parts = append(parts, string(*item.Difficulty))
	}
	return strings.Join(parts, ", ")
}
