// Package recommend ranks catalog content for a user's current state and
// picks one suggestion with an optional advisory note.
package recommend

import (
	"strings"

	"github.com/julianstephens/smartygym/internal/constants"
	"github.com/julianstephens/smartygym/internal/models"
)

// Profile is the effective view of a user for one recommendation: context
// values with explicit answers applied on top.
type Profile struct {
	Goal          string
	TimeAvailable *int
	Equipment     string
	Readiness     *int // 1-10
	Mood          *int // 1-5
	Soreness      *int // 1-5
	SleepHours    *float64

	RecentCategories     []string
	CompletedIDs         map[string]bool
	DaysSinceLastWorkout int
	ScheduledToday       []models.ContentItem
	OngoingPrograms      []models.ContentItem
}

// Resolve merges answers over ctx. Any answer that is set wins over the
// matching check-in value or stored preference.
func Resolve(ctx models.SmartyContext, answers models.QuestionAnswers) Profile {
	p := Profile{
		Goal:                 ctx.Goal,
		TimeAvailable:        ctx.TimeAvailable,
		Equipment:            ctx.EquipmentPreference,
		RecentCategories:     ctx.RecentCategories,
		CompletedIDs:         ctx.CompletedIDs,
		DaysSinceLastWorkout: ctx.DaysSinceLastWorkout,
		ScheduledToday:       ctx.ScheduledToday,
		OngoingPrograms:      ctx.OngoingPrograms,
	}
	if p.CompletedIDs == nil {
		p.CompletedIDs = map[string]bool{}
	}

	if c := ctx.Checkin; c != nil && c.MorningCompleted {
		p.Readiness = c.ReadinessScore
		p.Mood = c.MoodRating
		p.Soreness = c.SorenessRating
		p.SleepHours = c.SleepHours
	}

	if answers.Goal != nil {
		p.Goal = *answers.Goal
	}
	if answers.TimeAvailable != nil {
		p.TimeAvailable = answers.TimeAvailable
	}
	if answers.Equipment != nil {
		p.Equipment = *answers.Equipment
	}
	if answers.Energy != nil {
		p.Readiness = answers.Energy
	}
	if answers.Mood != nil {
		p.Mood = answers.Mood
	}
	if answers.Soreness != nil {
		p.Soreness = answers.Soreness
	}
	if answers.SleepHours != nil {
		p.SleepHours = answers.SleepHours
	}

	p.Goal = normalizeGoal(p.Goal)
	p.Equipment = strings.ToLower(strings.TrimSpace(p.Equipment))
	if p.TimeAvailable != nil && *p.TimeAvailable <= 0 {
		p.TimeAvailable = nil
	}
	return p
}

// returningFromBreak reports a known gap of three or more days.
func (p Profile) returningFromBreak() bool {
	return p.DaysSinceLastWorkout >= 3 && p.DaysSinceLastWorkout < constants.UnknownDaysSinceWorkout
}

func (p Profile) lowSleep() bool {
	return p.SleepHours != nil && *p.SleepHours < 6
}

func (p Profile) highSoreness() bool {
	return p.Soreness != nil && *p.Soreness >= 4
}

func (p Profile) lowReadiness() bool {
	return p.Readiness != nil && *p.Readiness <= 4
}

func (p Profile) highReadiness() bool {
	return p.Readiness != nil && *p.Readiness >= 7
}

func (p Profile) lowMood() bool {
	return p.Mood != nil && *p.Mood <= 2
}

func normalizeGoal(goal string) string {
	g := strings.ToLower(strings.TrimSpace(goal))
	g = strings.NewReplacer(" ", "_", "-", "_").Replace(g)
	return g
}
