package models

import "time"

type ScoreCategory string

const (
	CategoryRed    ScoreCategory = "red"
	CategoryOrange ScoreCategory = "orange"
	CategoryYellow ScoreCategory = "yellow"
	CategoryGreen  ScoreCategory = "green"
)

type CheckinStatus string

const (
	StatusComplete              CheckinStatus = "complete"
	StatusIncompleteMorningOnly CheckinStatus = "incomplete_morning_only"
	StatusIncompleteNightOnly   CheckinStatus = "incomplete_night_only"
	StatusMissed                CheckinStatus = "missed"
)

// CheckinRecord is one user's check-in for one calendar day.
// Raw inputs are nil until the matching section is submitted; derived
// scores are nil until computed.
type CheckinRecord struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Date   string `json:"date"` // YYYY-MM-DD format

	MorningCompleted bool     `json:"morning_completed"`
	SleepHours       *float64 `json:"sleep_hours,omitempty"`
	SleepQuality     *int     `json:"sleep_quality,omitempty"`   // 1-5
	ReadinessScore   *int     `json:"readiness_score,omitempty"` // 1-10
	SorenessRating   *int     `json:"soreness_rating,omitempty"` // 1-5
	MoodRating       *int     `json:"mood_rating,omitempty"`     // 1-5

	NightCompleted  bool     `json:"night_completed"`
	StepsValue      *int     `json:"steps_value,omitempty"`
	StepsBucket     *int     `json:"steps_bucket,omitempty"` // 1-5
	HydrationLiters *float64 `json:"hydration_liters,omitempty"`
	ProteinLevel    *int     `json:"protein_level,omitempty"` // 0-4
	DayStrain       *int     `json:"day_strain,omitempty"`    // 0-10

	SleepScore         *int `json:"sleep_score,omitempty"`
	ReadinessScoreNorm *int `json:"readiness_score_norm,omitempty"`
	SorenessScore      *int `json:"soreness_score,omitempty"`
	MoodScore          *int `json:"mood_score,omitempty"`
	MovementScore      *int `json:"movement_score,omitempty"`
	HydrationScore     *int `json:"hydration_score,omitempty"`
	ProteinScoreNorm   *int `json:"protein_score_norm,omitempty"`
	DayStrainScore     *int `json:"day_strain_score,omitempty"`

	DailySmartyScore *int           `json:"daily_smarty_score,omitempty"` // 0-100
	ScoreCategory    *ScoreCategory `json:"score_category,omitempty"`
	Status           CheckinStatus  `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasComposite reports whether the daily score and its category are present.
func (c CheckinRecord) HasComposite() bool {
	return c.DailySmartyScore != nil && c.ScoreCategory != nil
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
