package recommend

import (
	"fmt"

	"github.com/julianstephens/smartygym/internal/models"
)

// noteRule returns a note when its condition holds.
type noteRule func(p Profile, suggestion *models.ScoredContent) *models.AdvisoryNote

// noteRules are checked in priority order; the first match wins.
var noteRules = []noteRule{
	lowSleepNote,
	sorenessNote,
	lowReadinessNote,
	lowMoodNote,
	welcomeBackNote,
	varietyNote,
	ongoingProgramNote,
	firstWorkoutNote,
	scheduledNote,
}

// GenerateNote returns the highest-priority note for p and suggestion, or
// nil when nothing applies.
func GenerateNote(p Profile, suggestion *models.ScoredContent) *models.AdvisoryNote {
	for _, rule := range noteRules {
		if n := rule(p, suggestion); n != nil {
			return n
		}
	}
	return nil
}

func note(severity models.NoteSeverity, format string, args ...any) *models.AdvisoryNote {
	return &models.AdvisoryNote{Message: fmt.Sprintf(format, args...), Severity: severity}
}

func lowSleepNote(p Profile, _ *models.ScoredContent) *models.AdvisoryNote {
	if !p.lowSleep() {
		return nil
	}
	return note(models.NoteCaution, "You slept less than 6 hours. Keep the intensity moderate and stay hydrated.")
}

func sorenessNote(p Profile, _ *models.ScoredContent) *models.AdvisoryNote {
	if !p.highSoreness() {
		return nil
	}
	return note(models.NoteCaution, "You're feeling sore. Warm up well and stop if anything feels sharp.")
}

func lowReadinessNote(p Profile, _ *models.ScoredContent) *models.AdvisoryNote {
	if !p.lowReadiness() {
		return nil
	}
	return note(models.NoteCaution, "Your energy is low today. It's fine to scale the session down.")
}

func lowMoodNote(p Profile, suggestion *models.ScoredContent) *models.AdvisoryNote {
	if !p.lowMood() {
		return nil
	}
	if suggestion != nil && isRecovery(suggestion.Item) {
		return note(models.NoteEncouragement, "A gentle session is a kind way to look after yourself today.")
	}
	return note(models.NoteEncouragement, "Moving can lift your mood. Go at your own pace.")
}

func welcomeBackNote(p Profile, _ *models.ScoredContent) *models.AdvisoryNote {
	if !p.returningFromBreak() {
		return nil
	}
	return note(models.NoteInfo, "Welcome back! It's been %d days, so ease in and build up.", p.DaysSinceLastWorkout)
}

func varietyNote(p Profile, suggestion *models.ScoredContent) *models.AdvisoryNote {
	if suggestion == nil {
		return nil
	}
	category, count := dominantCategory(p.RecentCategories)
	if count < 3 || sameCategory(category, suggestion.Item.Category) {
		return nil
	}
	return note(models.NoteInfo, "You've done %s %d times recently. %s adds some balance today.",
		category, count, suggestion.Item.Category)
}

func ongoingProgramNote(p Profile, suggestion *models.ScoredContent) *models.AdvisoryNote {
	if len(p.OngoingPrograms) == 0 {
		return nil
	}
	program := p.OngoingPrograms[0]
	if suggestion != nil && suggestion.Item.ID == program.ID {
		return nil
	}
	return note(models.NoteInfo, "Don't forget your ongoing program: %s.", program.Name)
}

func firstWorkoutNote(p Profile, _ *models.ScoredContent) *models.AdvisoryNote {
	if len(p.CompletedIDs) > 0 {
		return nil
	}
	return note(models.NoteEncouragement, "Your first workout is the hardest one. You've got this!")
}

func scheduledNote(p Profile, suggestion *models.ScoredContent) *models.AdvisoryNote {
	for _, item := range p.ScheduledToday {
		if suggestion != nil && item.ID == suggestion.Item.ID {
			continue
		}
		return note(models.NoteInfo, "You also have %s scheduled for today.", item.Name)
	}
	return nil
}

// dominantCategory returns the most frequent recent category. Ties go to
// the category seen most recently.
func dominantCategory(recent []string) (string, int) {
	counts := make(map[string]int)
	var order []string
	for _, c := range recent {
		key := normalizeCategory(c)
		if _, ok := counts[key]; !ok {
			order = append(order, c)
		}
		counts[key]++
	}

	best, bestCount := "", 0
	for _, c := range order {
		if n := counts[normalizeCategory(c)]; n > bestCount {
			best, bestCount = c, n
		}
	}
	return best, bestCount
}
