package system

import (
	"fmt"

	"github.com/julianstephens/smartygym/internal/catalog"
	"github.com/julianstephens/smartygym/internal/cli"
	"github.com/julianstephens/smartygym/internal/utils"
)

type InitCmd struct {
	Timezone  string `help:"IANA timezone used to decide what 'today' is (e.g. Europe/Nicosia)."`
	NoCatalog bool   `help:"Do not import the built-in workout catalog."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Timezone != "" && !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone: %s", c.Timezone)
	}
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if c.Timezone != "" {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		settings.Timezone = c.Timezone
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}

	if !c.NoCatalog {
		items, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("failed to load built-in catalog: %w", err)
		}
		n, err := catalog.Import(ctx.Store, items)
		if err != nil {
			return fmt.Errorf("failed to import catalog: %w", err)
		}
		fmt.Printf("Imported %d catalog items\n", n)
	}

	fmt.Printf("Initialized smarty storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
