package recommend

import (
	"fmt"

	"github.com/julianstephens/smartygym/internal/models"
)

// factor scores one aspect of an item. A zero delta with an empty reason
// means the factor did not fire.
type factor func(p Profile, item models.ContentItem) (int, string)

// factors are applied in order; reasons keep this order.
//
//	Goal alignment       +30 (generic +15)
//	Energy / readiness   +25 / -15
//	Mood                 +15
//	Variety              +15 / +10 / -10
//	Freshness            +10
//	Time fit             +20 / +10 / -20
//	Equipment            +15 / -20
//	Soreness             +15 / +10 / -15
//	Sleep                +10 / -10
//	Return from break    +10
var factors = []factor{
	goalFactor,
	energyFactor,
	moodFactor,
	varietyFactor,
	freshnessFactor,
	timeFactor,
	equipmentFactor,
	sorenessFactor,
	sleepFactor,
	breakFactor,
}

// ScoreItem adds up every factor for item.
func ScoreItem(p Profile, item models.ContentItem) models.ScoredContent {
	scored := models.ScoredContent{Item: item, Reasons: []string{}}
	for _, f := range factors {
		delta, reason := f(p, item)
		scored.Score += delta
		if reason != "" {
			scored.Reasons = append(scored.Reasons, reason)
		}
	}
	return scored
}

func goalFactor(p Profile, item models.ContentItem) (int, string) {
	keywords, known := goalCategories[p.Goal]
	if !known {
		return 15, "Good all-round session"
	}
	if categoryHasAny(item.Category, keywords) {
		return 30, fmt.Sprintf("Matches your %s goal", goalLabel(p.Goal))
	}
	return 0, ""
}

func energyFactor(p Profile, item models.ContentItem) (int, string) {
	switch {
	case p.lowReadiness():
		if difficultyIs(item, models.DifficultyAdvanced) {
			return -15, "Too demanding for your energy today"
		}
		if isRecovery(item) {
			return 25, "Gentle option for a low-energy day"
		}
		if difficultyIs(item, models.DifficultyBeginner) {
			return 20, "Lighter intensity suits your energy"
		}
	case p.highReadiness():
		if difficultyIs(item, models.DifficultyAdvanced) {
			return 25, "You're ready for a tough session"
		}
		if isChallenge(item) {
			return 20, "High energy is perfect for a challenge"
		}
	case p.Readiness != nil:
		if difficultyIs(item, models.DifficultyIntermediate) {
			return 15, "Balanced intensity for your energy"
		}
	}
	return 0, ""
}

func moodFactor(p Profile, item models.ContentItem) (int, string) {
	if !p.lowMood() {
		return 0, ""
	}
	if isRecovery(item) {
		return 15, "Calming session to lift your mood"
	}
	if p.highReadiness() && isChallenge(item) {
		return 10, "A challenge can turn your mood around"
	}
	return 0, ""
}

func varietyFactor(p Profile, item models.ContentItem) (int, string) {
	count := 0
	for _, c := range p.RecentCategories {
		if sameCategory(c, item.Category) {
			count++
		}
	}
	switch {
	case count == 0:
		return 15, "Adds variety to your routine"
	case count == 1:
		return 10, "Keeps your routine varied"
	case count >= 3:
		return -10, fmt.Sprintf("You've done %s often lately", item.Category)
	}
	return 0, ""
}

func freshnessFactor(p Profile, item models.ContentItem) (int, string) {
	if p.CompletedIDs[item.ID] {
		return 0, ""
	}
	return 10, "Something you haven't tried yet"
}

func timeFactor(p Profile, item models.ContentItem) (int, string) {
	if p.TimeAvailable == nil {
		return 0, ""
	}
	minutes, ok := ParseDurationMinutes(item.Duration)
	if !ok {
		return 0, ""
	}
	available := *p.TimeAvailable
	switch {
	case minutes <= available:
		return 20, fmt.Sprintf("Fits your %d minutes", available)
	case minutes <= available+10:
		return 10, "Slightly longer than your available time"
	default:
		return -20, "Longer than your available time"
	}
}

// equipmentFactor is neutral for items with no equipment listed, matching
// Filter which keeps them for bodyweight users.
func equipmentFactor(p Profile, item models.ContentItem) (int, string) {
	if !hasEquipmentField(item) {
		return 0, ""
	}
	switch p.Equipment {
	case EquipmentBodyweight:
		if isBodyweight(item) {
			return 15, "No equipment needed"
		}
		return -20, "Needs equipment you may not have"
	case EquipmentAny:
		if !isBodyweight(item) {
			return 15, "Makes use of your equipment"
		}
	}
	return 0, ""
}

func sorenessFactor(p Profile, item models.ContentItem) (int, string) {
	if !p.highSoreness() {
		return 0, ""
	}
	if difficultyIs(item, models.DifficultyAdvanced) {
		return -15, "Too intense while you're sore"
	}
	if isRecovery(item) {
		return 15, "Helps sore muscles recover"
	}
	if difficultyIs(item, models.DifficultyBeginner) {
		return 10, "Easy on sore muscles"
	}
	return 0, ""
}

func sleepFactor(p Profile, item models.ContentItem) (int, string) {
	if !p.lowSleep() {
		return 0, ""
	}
	if difficultyIs(item, models.DifficultyAdvanced) {
		return -10, "Demanding after a short night"
	}
	if isRecovery(item) || difficultyIs(item, models.DifficultyBeginner) {
		return 10, "Manageable after a short night"
	}
	return 0, ""
}

func breakFactor(p Profile, item models.ContentItem) (int, string) {
	if !p.returningFromBreak() {
		return 0, ""
	}
	if difficultyIs(item, models.DifficultyBeginner, models.DifficultyIntermediate) {
		return 10, "Good way to ease back in"
	}
	return 0, ""
}

func goalLabel(goal string) string {
	switch goal {
	case "weight_loss", "fat_loss", "lose_weight":
		return "weight loss"
	case "muscle_gain", "build_muscle":
		return "muscle gain"
	default:
		return goal
	}
}
