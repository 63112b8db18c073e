package settings

import (
	"fmt"

	"github.com/julianstephens/smartygym/internal/cli"
	"github.com/julianstephens/smartygym/internal/constants"
	"github.com/julianstephens/smartygym/internal/utils"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Update settings."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	orNone := func(s string) string {
		if s == "" {
			return "(none)"
		}
		return s
	}
	timeAvailable := "(no limit)"
	if settings.TimeAvailableMin > 0 {
		timeAvailable = fmt.Sprintf("%d min", settings.TimeAvailableMin)
	}

	fmt.Println("Current Settings:")
	fmt.Printf("  User ID:         %s\n", settings.UserID)
	fmt.Printf("  Timezone:        %s\n", settings.Timezone)
	fmt.Printf("  History Window:  %d days\n", settings.HistoryWindow)
	fmt.Println("\nTraining Preferences:")
	fmt.Printf("  Goal:            %s\n", orNone(settings.Goal))
	fmt.Printf("  Time Available:  %s\n", timeAvailable)
	fmt.Printf("  Equipment:       %s\n", orNone(settings.EquipmentPreference))
	return nil
}

type SettingsSetCmd struct {
	Timezone      *string `help:"IANA timezone that decides what 'today' is."`
	Goal          *string `help:"Fitness goal (e.g. weight_loss, muscle_gain, endurance). Empty to clear."`
	TimeAvailable *int    `help:"Default minutes available per workout (0 for no limit)."`
	Equipment     *string `help:"Equipment preference: bodyweight, equipment, or empty to clear." enum:",bodyweight,equipment"`
	HistoryWindow *int    `help:"Default number of days listed by checkin history and summary."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.Goal != nil {
		settings.Goal = *c.Goal
		updated = true
	}
	if c.TimeAvailable != nil {
		if *c.TimeAvailable < 0 {
			return fmt.Errorf("time available cannot be negative")
		}
		settings.TimeAvailableMin = *c.TimeAvailable
		updated = true
	}
	if c.Equipment != nil {
		settings.EquipmentPreference = *c.Equipment
		updated = true
	}
	if c.HistoryWindow != nil {
		if *c.HistoryWindow < constants.MinHistoryWindow || *c.HistoryWindow > constants.MaxHistoryWindow {
			return fmt.Errorf("history window must be between %d and %d", constants.MinHistoryWindow, constants.MaxHistoryWindow)
		}
		settings.HistoryWindow = *c.HistoryWindow
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use 'smarty settings show' to view settings or flags to update them.")
		return nil
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
