package wellness

// Field names a raw check-in input that has a fallback value.
type Field string

const (
	FieldSleepQuality Field = "sleep_quality"
	FieldMood         Field = "mood_rating"
	FieldProtein      Field = "protein_level"
	FieldStepsBucket  Field = "steps_bucket"
)

// defaults holds the value each mapping returns for input outside its table.
// Ratings fall back to the neutral score 6; an unknown step bucket counts as
// 5000 steps.
var defaults = map[Field]int{
	FieldSleepQuality: 6,
	FieldMood:         6,
	FieldProtein:      6,
	FieldStepsBucket:  5000,
}

// DefaultFor returns the fallback value for field. Unknown fields return 0.
func DefaultFor(field Field) int {
	return defaults[field]
}
