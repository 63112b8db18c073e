package models

import "time"

type BadgeType string

const (
	BadgeConsistencyChampion BadgeType = "consistency_champion"
	BadgeHydrationHero       BadgeType = "hydration_hero"
	BadgeStepMachine         BadgeType = "step_machine"
	BadgeProteinPro          BadgeType = "protein_pro"
	BadgeRecoveryMaster      BadgeType = "recovery_master"
	BadgeComebackAward       BadgeType = "comeback_award"
)

type BadgeLevel string

const (
	LevelBronze  BadgeLevel = "bronze"
	LevelSilver  BadgeLevel = "silver"
	LevelGold    BadgeLevel = "gold"
	LevelSpecial BadgeLevel = "special"
)

// Badge is an awarded achievement. Badges are never updated or removed.
type Badge struct {
	ID       string         `json:"id"`
	UserID   string         `json:"user_id"`
	Type     BadgeType      `json:"badge_type"`
	Level    BadgeLevel     `json:"badge_level"`
	EarnedAt time.Time      `json:"earned_at"`
	Data     map[string]any `json:"badge_data,omitempty"`
}

// Key identifies a badge independent of when it was earned.
func (b Badge) Key() BadgeKey {
	return BadgeKey{Type: b.Type, Level: b.Level}
}

type BadgeKey struct {
	Type  BadgeType
	Level BadgeLevel
}

// DisplayName returns a human-readable badge title.
func (t BadgeType) DisplayName() string {
	switch t {
	case BadgeConsistencyChampion:
		return "Consistency Champion"
	case BadgeHydrationHero:
		return "Hydration Hero"
	case BadgeStepMachine:
		return "Step Machine"
	case BadgeProteinPro:
		return "Protein Pro"
	case BadgeRecoveryMaster:
		return "Recovery Master"
	case BadgeComebackAward:
		return "Comeback Award"
	default:
		return string(t)
	}
}
