package wellness

import (
	"github.com/julianstephens/smartygym/internal/models"
)

// Composite weights in percent. They must sum to 100 so that sub-scores on a
// 0-10 scale produce a daily score on a 0-100 scale.
const (
	WeightSleep     = 15
	WeightReadiness = 15
	WeightMovement  = 20
	WeightHydration = 15
	WeightProtein   = 15
	WeightMood      = 10
	WeightDayStrain = 10
)

// Category lower bounds; each band includes its lower bound.
const (
	OrangeThreshold = 40
	YellowThreshold = 60
	GreenThreshold  = 80
)

func init() {
	total := WeightSleep + WeightReadiness + WeightMovement + WeightHydration +
		WeightProtein + WeightMood + WeightDayStrain
	if total != 100 {
		panic("composite weights must sum to 100")
	}
}

// SubScores are the seven components of the daily score, each in [0,10].
type SubScores struct {
	Sleep     int
	Readiness int
	Movement  int
	Hydration int
	Protein   int
	Mood      int
	DayStrain int
}

// DailyScore combines sub-scores into a 0-100 score, rounding half up.
func DailyScore(s SubScores) int {
	weighted := WeightSleep*s.Sleep +
		WeightReadiness*s.Readiness +
		WeightMovement*s.Movement +
		WeightHydration*s.Hydration +
		WeightProtein*s.Protein +
		WeightMood*s.Mood +
		WeightDayStrain*s.DayStrain
	return (weighted + 5) / 10
}

// ScoreCategoryFor bands a daily score into red, orange, yellow or green.
func ScoreCategoryFor(score int) models.ScoreCategory {
	switch {
	case score < OrangeThreshold:
		return models.CategoryRed
	case score < YellowThreshold:
		return models.CategoryOrange
	case score < GreenThreshold:
		return models.CategoryYellow
	default:
		return models.CategoryGreen
	}
}

// DeriveStatus reports which sections of the day were completed.
func DeriveStatus(morningCompleted, nightCompleted bool) models.CheckinStatus {
	switch {
	case morningCompleted && nightCompleted:
		return models.StatusComplete
	case morningCompleted:
		return models.StatusIncompleteMorningOnly
	case nightCompleted:
		return models.StatusIncompleteNightOnly
	default:
		return models.StatusMissed
	}
}

// Score returns a copy of rec with sub-scores for every completed section,
// the composite when both sections are complete, and the derived status.
// Sub-scores of an incomplete section and an unavailable composite are nil.
func Score(rec models.CheckinRecord) models.CheckinRecord {
	out := rec

	out.SleepScore = nil
	out.ReadinessScoreNorm = nil
	out.SorenessScore = nil
	out.MoodScore = nil
	if rec.MorningCompleted {
		if rec.SleepHours != nil && rec.SleepQuality != nil {
			out.SleepScore = models.Int(SleepScore(*rec.SleepHours, *rec.SleepQuality))
		}
		if rec.ReadinessScore != nil {
			out.ReadinessScoreNorm = models.Int(ReadinessScore(*rec.ReadinessScore))
		}
		if rec.SorenessRating != nil {
			out.SorenessScore = models.Int(SorenessScore(*rec.SorenessRating))
		}
		if rec.MoodRating != nil {
			out.MoodScore = models.Int(MoodScore(*rec.MoodRating))
		}
	}

	out.MovementScore = nil
	out.HydrationScore = nil
	out.ProteinScoreNorm = nil
	out.DayStrainScore = nil
	if rec.NightCompleted {
		if steps, ok := stepsFor(rec); ok {
			out.MovementScore = models.Int(MovementScore(steps))
		}
		if rec.HydrationLiters != nil {
			out.HydrationScore = models.Int(HydrationScore(*rec.HydrationLiters))
		}
		if rec.ProteinLevel != nil {
			out.ProteinScoreNorm = models.Int(ProteinScore(*rec.ProteinLevel))
		}
		if rec.DayStrain != nil {
			out.DayStrainScore = models.Int(DayStrainScore(*rec.DayStrain))
		}
	}

	out.DailySmartyScore = nil
	out.ScoreCategory = nil
	if subs, ok := compositeInputs(out); ok {
		score := DailyScore(subs)
		category := ScoreCategoryFor(score)
		out.DailySmartyScore = &score
		out.ScoreCategory = &category
	}

	out.Status = DeriveStatus(rec.MorningCompleted, rec.NightCompleted)
	return out
}

// stepsFor prefers the measured step count and falls back to the bucket.
func stepsFor(rec models.CheckinRecord) (int, bool) {
	if rec.StepsValue != nil {
		return *rec.StepsValue, true
	}
	if rec.StepsBucket != nil {
		return StepsFromBucket(*rec.StepsBucket), true
	}
	return 0, false
}

func compositeInputs(rec models.CheckinRecord) (SubScores, bool) {
	if !rec.MorningCompleted || !rec.NightCompleted {
		return SubScores{}, false
	}
	parts := []*int{
		rec.SleepScore, rec.ReadinessScoreNorm, rec.MovementScore,
		rec.HydrationScore, rec.ProteinScoreNorm, rec.MoodScore, rec.DayStrainScore,
	}
	for _, p := range parts {
		if p == nil {
			return SubScores{}, false
		}
	}
	return SubScores{
		Sleep:     *rec.SleepScore,
		Readiness: *rec.ReadinessScoreNorm,
		Movement:  *rec.MovementScore,
		Hydration: *rec.HydrationScore,
		Protein:   *rec.ProteinScoreNorm,
		Mood:      *rec.MoodScore,
		DayStrain: *rec.DayStrainScore,
	}, true
}
