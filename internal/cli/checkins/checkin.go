package checkins

import (
	"errors"
	"fmt"

	"github.com/julianstephens/smartygym/internal/checkin"
	"github.com/julianstephens/smartygym/internal/cli"
	"github.com/julianstephens/smartygym/internal/storage"
	"github.com/julianstephens/smartygym/internal/validation"
)

type CheckinCmd struct {
	Morning MorningCmd `cmd:"" help:"Record the morning check-in."`
	Night   NightCmd   `cmd:"" help:"Record the night check-in."`
	Show    ShowCmd    `cmd:"" help:"Show a day's scores." default:"1"`
	History HistoryCmd `cmd:"" help:"List recent check-ins."`
	Recalc  RecalcCmd  `cmd:"" help:"Recompute a day's scores and badges."`
}

type MorningCmd struct {
	Date         string   `help:"Day to record (YYYY-MM-DD). Defaults to today."`
	SleepHours   *float64 `help:"Hours slept (0-24)."`
	SleepQuality *int     `help:"Sleep quality (1-5)."`
	Readiness    *int     `help:"Readiness to train (1-10)."`
	Soreness     *int     `help:"Muscle soreness (1-5, 5 is very sore)."`
	Mood         *int     `help:"Mood (1-5)."`
	Interactive  bool     `short:"i" help:"Prompt for answers."`
}

func (c *MorningCmd) Run(ctx *cli.Context) error {
	in := checkin.MorningInput{
		Date: c.Date,
		Morning: validation.Morning{
			SleepHours:     c.SleepHours,
			SleepQuality:   c.SleepQuality,
			ReadinessScore: c.Readiness,
			SorenessRating: c.Soreness,
			MoodRating:     c.Mood,
		},
	}
	if c.Interactive {
		if err := promptMorning(&in.Morning); err != nil {
			return err
		}
	}

	res, err := ctx.Checkins().SubmitMorning(ctx.Context(), in)
	if err != nil {
		return err
	}
	fmt.Println("✓ Morning check-in saved")
	cli.PrintCheckin(res.Record)
	cli.PrintNewBadges(res.NewBadges)
	return nil
}

type NightCmd struct {
	Date        string   `help:"Day to record (YYYY-MM-DD). Defaults to today."`
	Steps       *int     `help:"Exact step count."`
	StepsBucket *int     `help:"Step range when the exact count is unknown (1: <2k, 2: 2-5k, 3: 5-8k, 4: 8-10k, 5: >10k)."`
	Water       *float64 `help:"Water drunk in litres."`
	Protein     *int     `help:"Protein intake (0-4)."`
	Strain      *int     `help:"How demanding the day was (0-10)."`
	Interactive bool     `short:"i" help:"Prompt for answers."`
}

func (c *NightCmd) Run(ctx *cli.Context) error {
	in := checkin.NightInput{
		Date: c.Date,
		Night: validation.Night{
			StepsValue:      c.Steps,
			StepsBucket:     c.StepsBucket,
			HydrationLiters: c.Water,
			ProteinLevel:    c.Protein,
			DayStrain:       c.Strain,
		},
	}
	if c.Interactive {
		if err := promptNight(&in.Night); err != nil {
			return err
		}
	}

	res, err := ctx.Checkins().SubmitNight(ctx.Context(), in)
	if err != nil {
		return err
	}
	fmt.Println("✓ Night check-in saved")
	cli.PrintCheckin(res.Record)
	cli.PrintNewBadges(res.NewBadges)
	return nil
}

type ShowCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD). Defaults to today."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	rec, err := ctx.Checkins().Get(ctx.Context(), c.Date)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Println("No check-in recorded for that day.")
		return nil
	}
	if err != nil {
		return err
	}
	cli.PrintCheckin(rec)
	return nil
}

type HistoryCmd struct {
	Limit int `help:"Number of days to list. Defaults to the history_window setting."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must be positive")
	}
	records, err := ctx.Checkins().History(ctx.Context(), c.Limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No check-ins yet. Start with 'smarty checkin morning'.")
		return nil
	}
	fmt.Printf("%-12s %-14s %s\n", "DATE", "STATUS", "SCORE")
	for _, rec := range records {
		fmt.Printf("%-12s %-14s %s\n", rec.Date, cli.FormatStatus(rec.Status), cli.FormatScore(rec))
	}
	return nil
}

type RecalcCmd struct {
	Date string `arg:"" optional:"" help:"Day to recompute (YYYY-MM-DD). Defaults to today."`
}

func (c *RecalcCmd) Run(ctx *cli.Context) error {
	res, err := ctx.Checkins().Recalculate(ctx.Context(), c.Date)
	if err != nil {
		return err
	}
	fmt.Println("✓ Scores recalculated")
	cli.PrintCheckin(res.Record)
	cli.PrintNewBadges(res.NewBadges)
	return nil
}
