package recommend

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/julianstephens/smartygym/internal/models"
)

const (
	EquipmentBodyweight = "bodyweight"
	EquipmentAny        = "equipment"
)

var (
	recoveryKeywords  = []string{"recovery", "mobility", "stability", "stretch", "yoga"}
	challengeKeywords = []string{"challenge", "hiit"}
)

// goalCategories maps a normalized goal to keywords found in matching
// category names.
var goalCategories = map[string][]string{
	"weight_loss":  {"calorie", "metabolic", "cardio"},
	"fat_loss":     {"calorie", "metabolic", "cardio"},
	"lose_weight":  {"calorie", "metabolic", "cardio"},
	"muscle_gain":  {"strength"},
	"build_muscle": {"strength"},
	"strength":     {"strength"},
	"endurance":    {"cardio", "metabolic"},
	"cardio":       {"cardio", "metabolic"},
	"mobility":     {"mobility", "stability", "pilates", "recovery"},
	"flexibility":  {"mobility", "stability", "pilates", "recovery"},
}

// ParseDurationMinutes reads the leading integer of a duration such as
// "30 min" or "45-60 minutes".
func ParseDurationMinutes(duration string) (int, bool) {
	s := strings.TrimSpace(duration)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(s)
	}
	if end == 0 {
		return 0, false
	}
	minutes, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return minutes, true
}

func isBodyweight(item models.ContentItem) bool {
	eq := strings.ToLower(item.Equipment)
	return strings.Contains(eq, "bodyweight") ||
		strings.Contains(eq, "body weight") ||
		strings.Contains(eq, "no equipment") ||
		strings.TrimSpace(eq) == "none"
}

func hasEquipmentField(item models.ContentItem) bool {
	return strings.TrimSpace(item.Equipment) != ""
}

func isRecovery(item models.ContentItem) bool {
	return categoryHasAny(item.Category, recoveryKeywords)
}

func isChallenge(item models.ContentItem) bool {
	return categoryHasAny(item.Category, challengeKeywords)
}

func categoryHasAny(category string, keywords []string) bool {
	c := strings.ToLower(category)
	for _, k := range keywords {
		if strings.Contains(c, k) {
			return true
		}
	}
	return false
}

func difficultyIs(item models.ContentItem, levels ...models.Difficulty) bool {
	if item.Difficulty == nil {
		return false
	}
	for _, l := range levels {
		if strings.EqualFold(string(*item.Difficulty), string(l)) {
			return true
		}
	}
	return false
}

func sameCategory(a, b string) bool {
	return normalizeCategory(a) == normalizeCategory(b)
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
