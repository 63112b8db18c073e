// Package badges awards achievement badges from a user's check-in history.
package badges

import (
	"sort"
	"time"

	"github.com/julianstephens/smartygym/internal/constants"
	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/utils"
)

// Evaluator checks a check-in history against every badge rule. Windows
// such as "the last 7 days" are calendar days ending on today.
type Evaluator struct {
	userID  string
	history []models.CheckinRecord
	held    map[models.BadgeKey]bool
	now     time.Time
	today   string
	anchor  string
}

// NewEvaluator builds an evaluator over a copy of history sorted by date,
// most recent first. now should be in the user's timezone: its date is the
// evaluation day, and rows dated after it or more than MaxHistoryWindow days
// before it are ignored. A zero now anchors windows on the newest row.
func NewEvaluator(userID string, history []models.CheckinRecord, existing []models.Badge, now time.Time) *Evaluator {
	today := ""
	if !now.IsZero() {
		today = now.Format(constants.DateFormat)
	}

	sorted := make([]models.CheckinRecord, 0, len(history))
	for _, c := range history {
		if today != "" && c.Date > today {
			continue
		}
		sorted = append(sorted, c)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	e := &Evaluator{
		userID: userID,
		held:   make(map[models.BadgeKey]bool, len(existing)),
		now:    now,
		today:  today,
		anchor: today,
	}
	if e.anchor == "" && len(sorted) > 0 {
		e.anchor = sorted[0].Date
	}
	for _, c := range sorted {
		if ago := e.daysAgo(c.Date); ago < 0 || ago >= constants.MaxHistoryWindow {
			continue
		}
		e.history = append(e.history, c)
	}
	for _, b := range existing {
		e.held[b.Key()] = true
	}
	return e
}

// Evaluate returns the badges newly earned by history. Badges already in
// existing are never returned again, and each rule yields at most one badge.
func Evaluate(userID string, history []models.CheckinRecord, existing []models.Badge, now time.Time) []models.Badge {
	return NewEvaluator(userID, history, existing, now).Evaluate()
}

// Evaluate runs every rule once.
func (e *Evaluator) Evaluate() []models.Badge {
	if len(e.history) == 0 {
		return nil
	}

	var awarded []models.Badge
	rules := []func() *models.Badge{
		e.consistencyBadge,
		func() *models.Badge { return e.countBadge(models.BadgeHydrationHero, hydrationTiers, hydrated) },
		func() *models.Badge { return e.countBadge(models.BadgeStepMachine, stepTiers, active) },
		func() *models.Badge { return e.countBadge(models.BadgeProteinPro, proteinTiers, proteinRich) },
		e.recoveryBadge,
		e.comebackBadge,
	}
	for _, rule := range rules {
		if b := rule(); b != nil {
			awarded = append(awarded, *b)
		}
	}
	return awarded
}

// Streak counts consecutive complete days ending today or yesterday. A day
// with no row breaks the streak like a missed one. Today's row does not
// break it while still incomplete.
func (e *Evaluator) Streak() int {
	records := e.history
	if e.today != "" && len(records) > 0 && records[0].Date == e.today && records[0].Status != models.StatusComplete {
		records = records[1:]
	}

	streak, want := 0, -1
	for _, c := range records {
		ago := e.daysAgo(c.Date)
		if want < 0 {
			if ago > 1 {
				return 0
			}
		} else if ago != want {
			break
		}
		if c.Status != models.StatusComplete {
			break
		}
		streak++
		want = ago + 1
	}
	return streak
}

// Streak is a convenience wrapper for callers that only need the streak.
func Streak(history []models.CheckinRecord, now time.Time) int {
	return NewEvaluator("", history, nil, now).Streak()
}

func (e *Evaluator) consistencyBadge() *models.Badge {
	streak := e.Streak()
	for _, t := range consistencyTiers {
		if streak >= t.required && !e.holds(models.BadgeConsistencyChampion, t.level) {
			return e.badge(models.BadgeConsistencyChampion, t.level, map[string]any{
				"streak": streak,
			})
		}
	}
	return nil
}

func (e *Evaluator) countBadge(badgeType models.BadgeType, tiers []tier, qualifies func(models.CheckinRecord) bool) *models.Badge {
	for _, t := range tiers {
		if e.holds(badgeType, t.level) {
			continue
		}
		days := e.countRecent(t.window, qualifies)
		if days >= t.required {
			return e.badge(badgeType, t.level, map[string]any{
				"days":   days,
				"window": t.window,
			})
		}
	}
	return nil
}

func (e *Evaluator) recoveryBadge() *models.Badge {
	if e.holds(models.BadgeRecoveryMaster, models.LevelSpecial) {
		return nil
	}
	days := e.countRecent(RecoveryWindow, recovered)
	if days < RecoveryRequiredDays {
		return nil
	}
	return e.badge(models.BadgeRecoveryMaster, models.LevelSpecial, map[string]any{
		"days":   days,
		"window": RecoveryWindow,
	})
}

func (e *Evaluator) comebackBadge() *models.Badge {
	if e.holds(models.BadgeComebackAward, models.LevelSpecial) {
		return nil
	}
	oldest := e.history[len(e.history)-1]
	if e.daysAgo(oldest.Date) < ComebackMinHistory-1 {
		return nil
	}

	recent, ok := meanScore(e.between(0, ComebackWindow))
	if !ok {
		return nil
	}
	prior, ok := meanScore(e.between(ComebackWindow, 2*ComebackWindow))
	if !ok {
		return nil
	}

	delta := recent - prior
	if delta < ComebackImprovement {
		return nil
	}
	return e.badge(models.BadgeComebackAward, models.LevelSpecial, map[string]any{
		"recent_avg": recent,
		"prior_avg":  prior,
		"delta":      delta,
	})
}

// countRecent counts qualifying check-ins dated within the last window days.
func (e *Evaluator) countRecent(window int, qualifies func(models.CheckinRecord) bool) int {
	count := 0
	for _, c := range e.between(0, window) {
		if qualifies(c) {
			count++
		}
	}
	return count
}

// between returns the rows dated from..to-1 days before the anchor.
func (e *Evaluator) between(from, to int) []models.CheckinRecord {
	var out []models.CheckinRecord
	for _, c := range e.history {
		if ago := e.daysAgo(c.Date); ago >= from && ago < to {
			out = append(out, c)
		}
	}
	return out
}

// daysAgo is how many days date lies before the anchor, or -1 if it
// cannot be parsed.
func (e *Evaluator) daysAgo(date string) int {
	n, err := utils.DaysBetween(date, e.anchor)
	if err != nil {
		return -1
	}
	return n
}

func (e *Evaluator) holds(badgeType models.BadgeType, level models.BadgeLevel) bool {
	return e.held[models.BadgeKey{Type: badgeType, Level: level}]
}

func (e *Evaluator) badge(badgeType models.BadgeType, level models.BadgeLevel, data map[string]any) *models.Badge {
	return &models.Badge{
		UserID:   e.userID,
		Type:     badgeType,
		Level:    level,
		EarnedAt: e.now,
		Data:     data,
	}
}

// meanScore averages the daily scores present in records.
func meanScore(records []models.CheckinRecord) (float64, bool) {
	total, n := 0, 0
	for _, c := range records {
		if c.DailySmartyScore == nil {
			continue
		}
		total += *c.DailySmartyScore
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(total) / float64(n), true
}
