package checkins

import (
	"fmt"
	"sort"

	"github.com/julianstephens/smartygym/internal/cli"
	"github.com/julianstephens/smartygym/internal/models"
)

type BadgesCmd struct{}

func (c *BadgesCmd) Run(ctx *cli.Context) error {
	badges, err := ctx.Checkins().Badges(ctx.Context())
	if err != nil {
		return err
	}
	if len(badges) == 0 {
		fmt.Println("No badges yet. Keep checking in!")
		return nil
	}

	sort.SliceStable(badges, func(i, j int) bool {
		return badges[i].EarnedAt.Before(badges[j].EarnedAt)
	})
	fmt.Printf("Badges (%d):\n", len(badges))
	for _, b := range badges {
		fmt.Printf("  %s  %s\n", b.EarnedAt.Local().Format("2006-01-02"), cli.FormatBadge(b))
	}
	return nil
}

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	streak, err := ctx.Checkins().Streak(ctx.Context())
	if err != nil {
		return err
	}
	switch streak {
	case 0:
		fmt.Println("No active streak. Complete both check-ins today to start one.")
	case 1:
		fmt.Println("🔥 1 day streak")
	default:
		fmt.Printf("🔥 %d day streak\n", streak)
	}
	return nil
}

type SummaryCmd struct {
	Days int `help:"Number of recent check-ins to summarize. Defaults to the history_window setting."`
}

func (c *SummaryCmd) Run(ctx *cli.Context) error {
	if c.Days < 0 {
		return fmt.Errorf("days must be positive")
	}
	sum, err := ctx.Checkins().Summary(ctx.Context(), c.Days)
	if err != nil {
		return err
	}
	if sum.Days == 0 {
		fmt.Println("No check-ins yet.")
		return nil
	}

	fmt.Printf("Last %d check-ins\n", sum.Days)
	fmt.Printf("  Scored days:  %d\n", sum.Scored)
	if sum.Scored > 0 {
		fmt.Printf("  Average:      %.1f\n", sum.Average)
		fmt.Printf("  Best / worst: %d / %d\n", *sum.Best, *sum.Worst)
	}
	for _, cat := range []models.ScoreCategory{models.CategoryGreen, models.CategoryYellow, models.CategoryOrange, models.CategoryRed} {
		if n := sum.Categories[cat]; n > 0 {
			fmt.Printf("  %-13s %d\n", string(cat)+":", n)
		}
	}
	if n := sum.Days - sum.Statuses[models.StatusComplete]; n > 0 {
		fmt.Printf("  Incomplete:   %d\n", n)
	}
	fmt.Printf("  Streak:       %d\n", sum.Streak)
	return nil
}
