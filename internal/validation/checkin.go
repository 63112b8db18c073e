package validation

// Accepted raw input ranges.
const (
	MaxSleepHours      = 24.0
	MaxHydrationLiters = 20.0
	MaxStepsValue      = 200000
)

// Morning holds raw morning inputs as submitted.
type Morning struct {
	SleepHours     *float64
	SleepQuality   *int
	ReadinessScore *int
	SorenessRating *int
	MoodRating     *int
}

// Night holds raw night inputs as submitted.
type Night struct {
	StepsValue      *int
	StepsBucket     *int
	HydrationLiters *float64
	ProteinLevel    *int
	DayStrain       *int
}

// ValidateMorning requires every morning field and checks its range.
func ValidateMorning(m Morning) Result {
	var r Result
	r.required("sleep_hours", m.SleepHours != nil)
	r.required("sleep_quality", m.SleepQuality != nil)
	r.required("readiness_score", m.ReadinessScore != nil)
	r.required("soreness_rating", m.SorenessRating != nil)
	r.required("mood_rating", m.MoodRating != nil)

	r.floatRange("sleep_hours", m.SleepHours, 0, MaxSleepHours)
	r.intRange("sleep_quality", m.SleepQuality, 1, 5)
	r.intRange("readiness_score", m.ReadinessScore, 1, 10)
	r.intRange("soreness_rating", m.SorenessRating, 1, 5)
	r.intRange("mood_rating", m.MoodRating, 1, 5)
	return r
}

// ValidateNight requires steps (exact count or bucket) plus the remaining
// night fields, and checks their ranges.
func ValidateNight(n Night) Result {
	var r Result
	if n.StepsValue == nil && n.StepsBucket == nil {
		r.add(IssueMissingField, "steps", "either steps_value or steps_bucket is required")
	}
	r.required("hydration_liters", n.HydrationLiters != nil)
	r.required("protein_level", n.ProteinLevel != nil)
	r.required("day_strain", n.DayStrain != nil)

	r.intRange("steps_value", n.StepsValue, 0, MaxStepsValue)
	r.intRange("steps_bucket", n.StepsBucket, 1, 5)
	r.floatRange("hydration_liters", n.HydrationLiters, 0, MaxHydrationLiters)
	r.intRange("protein_level", n.ProteinLevel, 0, 4)
	r.intRange("day_strain", n.DayStrain, 0, 10)
	return r
}
