package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/smartygym/internal/backup"
	"github.com/julianstephens/smartygym/internal/checkin"
	"github.com/julianstephens/smartygym/internal/logger"
	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/recommend"
	"github.com/julianstephens/smartygym/internal/storage"
	"github.com/julianstephens/smartygym/internal/storage/sqlite"
	"github.com/julianstephens/smartygym/internal/tui/theme"
)

type Context struct {
	Store storage.Provider
	// Ctx is cancelled on interrupt; nil means context.Background.
	Ctx context.Context
	// Now overrides the wall clock; nil means time.Now.
	Now func() time.Time
}

// Context returns the cancellation context commands pass to services.
func (c *Context) Context() context.Context {
	if c.Ctx != nil {
		return c.Ctx
	}
	return context.Background()
}

// Clock returns the command clock.
func (c *Context) Clock() func() time.Time {
	if c.Now != nil {
		return c.Now
	}
	return time.Now
}

// Checkins returns a check-in service bound to the context's store and clock.
func (c *Context) Checkins() *checkin.Service {
	return checkin.NewService(c.Store, checkin.WithClock(c.Clock()))
}

// Recommender returns a recommendation service bound to the context's store and clock.
func (c *Context) Recommender() *recommend.Service {
	return recommend.NewService(c.Store, recommend.WithClock(c.Clock()))
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatScore renders a daily score with its category colour, or "-" when
// the day has no composite yet.
func FormatScore(rec models.CheckinRecord) string {
	return theme.Score(rec)
}

// FormatStatus turns a check-in status into a short label.
func FormatStatus(status models.CheckinStatus) string {
	switch status {
	case models.StatusComplete:
		return "complete"
	case models.StatusIncompleteMorningOnly:
		return "morning only"
	case models.StatusIncompleteNightOnly:
		return "night only"
	default:
		return "missed"
	}
}

// FormatBadge renders a badge as "Hydration Hero (gold)".
func FormatBadge(b models.Badge) string {
	return fmt.Sprintf("%s (%s)", b.Type.DisplayName(), b.Level)
}

// PrintNewBadges announces badges unlocked by a submission.
func PrintNewBadges(badges []models.Badge) {
	for _, b := range badges {
		fmt.Printf("🏅 New badge: %s\n", FormatBadge(b))
	}
}

// PrintCheckin writes the sub-scores and composite of a record.
func PrintCheckin(rec models.CheckinRecord) {
	fmt.Printf("Check-in for %s (%s)\n", rec.Date, FormatStatus(rec.Status))
	rows := []struct {
		label string
		value *int
	}{
		{"Sleep", rec.SleepScore},
		{"Readiness", rec.ReadinessScoreNorm},
		{"Soreness", rec.SorenessScore},
		{"Mood", rec.MoodScore},
		{"Movement", rec.MovementScore},
		{"Hydration", rec.HydrationScore},
		{"Protein", rec.ProteinScoreNorm},
		{"Day strain", rec.DayStrainScore},
	}
	for _, r := range rows {
		value := "-"
		if r.value != nil {
			value = fmt.Sprintf("%d/10", *r.value)
		}
		fmt.Printf("  %-11s %s\n", r.label+":", value)
	}
	fmt.Printf("  %-11s %s\n", "Daily:", FormatScore(rec))
}

// ParseActivityKind accepts the activity names used on the command line.
func ParseActivityKind(s string) (models.ActivityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "done", "completed", "complete":
		return models.ActivityCompleted, nil
	case "schedule", "scheduled":
		return models.ActivityScheduled, nil
	case "enroll", "ongoing":
		return models.ActivityOngoing, nil
	}
	return "", fmt.Errorf("unknown activity kind: %s", s)
}
