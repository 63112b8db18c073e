package recommend

import (
	"fmt"

	"github.com/julianstephens/smartygym/internal/cli"
	"github.com/julianstephens/smartygym/internal/models"
)

type ActivityCmd struct {
	Done     ActivityDoneCmd     `cmd:"" help:"Mark a workout as completed."`
	Schedule ActivityScheduleCmd `cmd:"" help:"Schedule a workout for a day."`
	Enroll   ActivityEnrollCmd   `cmd:"" help:"Start a training program."`
	List     ActivityListCmd     `cmd:"" help:"List recorded activities."`
}

// ActivityArgs are shared by the done, schedule and enroll subcommands.
type ActivityArgs struct {
	ContentID string `arg:"" help:"Catalog item ID."`
	Date      string `help:"Day (YYYY-MM-DD). Defaults to today."`
}

func (a ActivityArgs) log(ctx *cli.Context, kind models.ActivityKind) error {
	act, err := ctx.Recommender().LogActivity(ctx.Context(), a.ContentID, kind, a.Date)
	if err != nil {
		return err
	}
	switch kind {
	case models.ActivityCompleted:
		fmt.Printf("✓ Logged %s as done on %s\n", act.ContentID, act.Date)
	case models.ActivityScheduled:
		fmt.Printf("✓ Scheduled %s for %s\n", act.ContentID, act.Date)
	case models.ActivityOngoing:
		fmt.Printf("✓ Enrolled in %s\n", act.ContentID)
	}
	return nil
}

type ActivityDoneCmd struct{ ActivityArgs }

func (c *ActivityDoneCmd) Run(ctx *cli.Context) error {
	return c.log(ctx, models.ActivityCompleted)
}

type ActivityScheduleCmd struct{ ActivityArgs }

func (c *ActivityScheduleCmd) Run(ctx *cli.Context) error {
	return c.log(ctx, models.ActivityScheduled)
}

type ActivityEnrollCmd struct{ ActivityArgs }

func (c *ActivityEnrollCmd) Run(ctx *cli.Context) error {
	return c.log(ctx, models.ActivityOngoing)
}

type ActivityListCmd struct {
	Kind  string `help:"done, schedule or enroll." default:"done"`
	Limit int    `help:"Maximum entries (0 for all)." default:"20"`
}

func (c *ActivityListCmd) Run(ctx *cli.Context) error {
	kind, err := cli.ParseActivityKind(c.Kind)
	if err != nil {
		return err
	}
	activities, err := ctx.Recommender().Activities(ctx.Context(), kind, c.Limit)
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		fmt.Println("No activities recorded.")
		return nil
	}
	for _, a := range activities {
		fmt.Printf("  %s  %-24s %s\n", a.Date, a.ContentID, a.Category)
	}
	return nil
}
