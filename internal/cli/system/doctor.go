package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/smartygym/internal/backup"
	"github.com/julianstephens/smartygym/internal/cli"
	"github.com/julianstephens/smartygym/internal/constants"
	"github.com/julianstephens/smartygym/internal/migration"
	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/storage"
	"github.com/julianstephens/smartygym/internal/storage/sqlite"
	"github.com/julianstephens/smartygym/internal/utils"
)

// errWarning marks a check that should be reported but not fail the run.
var errWarning = errors.New("warning")

type check struct {
	name    string
	needsDB bool
	run     func(ctx *cli.Context) error
}

var checks = []check{
	{"Schema version", true, checkSchemaVersion},
	{"Settings", true, checkSettings},
	{"Content catalog", true, checkCatalog},
	{"Check-in integrity", true, checkCheckinIntegrity},
	{"Date formats", true, checkDateFormats},
	{"Backups present", false, checkBackupsPresent},
	{"Clock/timezone", false, func(*cli.Context) error { return checkClockTimezone(time.Now()) }},
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case errors.Is(err, errWarning):
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	migrator, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return nil
	}
	st, err := migrator.MigrationStatus()
	if err != nil {
		if errors.Is(err, migration.ErrSchemaTooNew) {
			return err
		}
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if !st.UpToDate() {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'smarty migrate')", st.Current, st.Latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.UserID == "" {
		return fmt.Errorf("user id missing (run 'smarty init')")
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone %q", settings.Timezone)
	}
	return nil
}

func checkCatalog(ctx *cli.Context) error {
	items, err := ctx.Store.GetAllContentItems()
	if err != nil {
		return fmt.Errorf("failed to get content items: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: catalog is empty, recommendations are unavailable (run 'smarty catalog import')", errWarning)
	}
	return nil
}

// checkCheckinIntegrity verifies that every stored record's status and
// composite agree with its completion flags.
func checkCheckinIntegrity(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	records, err := ctx.Store.GetRecentCheckins(settings.UserID, constants.MaxHistoryWindow)
	if err != nil {
		return fmt.Errorf("failed to get check-ins: %w", err)
	}
	for _, rec := range records {
		complete := rec.MorningCompleted && rec.NightCompleted
		if complete != (rec.Status == models.StatusComplete) {
			return fmt.Errorf("check-in %s has status %s but morning=%v night=%v", rec.Date, rec.Status, rec.MorningCompleted, rec.NightCompleted)
		}
		if rec.HasComposite() && !complete {
			return fmt.Errorf("check-in %s has a daily score but is not complete", rec.Date)
		}
	}
	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}
	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	for _, table := range []string{"checkins", "activities"} {
		var invalidCount int
		err := db.QueryRow(`SELECT COUNT(*) FROM ` + table + ` WHERE date NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'`).Scan(&invalidCount)
		if err != nil {
			return fmt.Errorf("failed to check %s dates: %w", table, err)
		}
		if invalidCount > 0 {
			return fmt.Errorf("found %d %s rows with invalid date format (expected YYYY-MM-DD)", invalidCount, table)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("%w: no backups found, consider creating one with 'smarty backup create'", errWarning)
	}
	return nil
}

func checkClockTimezone(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
