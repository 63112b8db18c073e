package badges

import "github.com/julianstephens/smartygym/internal/models"

// tier is one level of a count-based badge: at least required qualifying
// days among the most recent window check-ins.
type tier struct {
	level    models.BadgeLevel
	window   int
	required int
}

// Tiers are listed from the highest level down.
var (
	consistencyTiers = []tier{
		{level: models.LevelGold, required: 90},
		{level: models.LevelSilver, required: 30},
		{level: models.LevelBronze, required: 7},
	}
	hydrationTiers = []tier{
		{level: models.LevelSilver, window: 30, required: 20},
		{level: models.LevelBronze, window: 7, required: 5},
	}
	stepTiers = []tier{
		{level: models.LevelSilver, window: 30, required: 22},
		{level: models.LevelBronze, window: 14, required: 10},
	}
	proteinTiers = []tier{
		{level: models.LevelSilver, window: 30, required: 22},
		{level: models.LevelBronze, window: 14, required: 10},
	}
)

const (
	// HighSubScore is the sub-score a day needs to count toward the
	// hydration, step and protein badges.
	HighSubScore = 8

	RecoveryWindow       = 7
	RecoveryRequiredDays = 5
	RecoveryMinSleep     = 8
	RecoveryMinReadiness = 7
	RecoveryMaxSoreness  = 4

	ComebackMinHistory  = 14
	ComebackWindow      = 7
	ComebackImprovement = 15.0
)

func hydrated(c models.CheckinRecord) bool {
	return atLeast(c.HydrationScore, HighSubScore)
}

func active(c models.CheckinRecord) bool {
	return atLeast(c.MovementScore, HighSubScore)
}

func proteinRich(c models.CheckinRecord) bool {
	return atLeast(c.ProteinScoreNorm, HighSubScore)
}

func recovered(c models.CheckinRecord) bool {
	return atLeast(c.SleepScore, RecoveryMinSleep) &&
		atLeast(c.ReadinessScoreNorm, RecoveryMinReadiness) &&
		c.SorenessRating != nil && *c.SorenessRating <= RecoveryMaxSoreness
}

func atLeast(v *int, min int) bool {
	return v != nil && *v >= min
}
