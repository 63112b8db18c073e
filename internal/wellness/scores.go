// Package wellness turns a daily check-in into normalized sub-scores, a
// weighted daily score and a traffic-light category.
package wellness

const (
	// MinSubScore and MaxSubScore bound every sub-score.
	MinSubScore = 0
	MaxSubScore = 10
)

// ratingScores maps a 1-5 rating to a sub-score.
var ratingScores = map[int]int{1: 2, 2: 4, 3: 6, 4: 8, 5: 10}

var proteinScores = map[int]int{0: 2, 1: 4, 2: 6, 3: 8, 4: 10}

var bucketSteps = map[int]int{1: 1000, 2: 3500, 3: 6500, 4: 9000, 5: 11000}

// SleepHoursScore scores hours slept: <5 is 2, [5,6) is 4, [6,7) is 7,
// [7,9] is 10 and anything above 9 drops back to 7.
func SleepHoursScore(hours float64) int {
	switch {
	case hours < 5:
		return 2
	case hours < 6:
		return 4
	case hours < 7:
		return 7
	case hours <= 9:
		return 10
	default:
		return 7
	}
}

// SleepQualityScore maps a 1-5 quality rating linearly onto 2..10.
func SleepQualityScore(quality int) int {
	if s, ok := ratingScores[quality]; ok {
		return s
	}
	return DefaultFor(FieldSleepQuality)
}

// SleepScore averages the hours and quality scores, rounding half up.
func SleepScore(hours float64, quality int) int {
	sum := SleepHoursScore(hours) + SleepQualityScore(quality)
	return (sum + 1) / 2
}

// ReadinessScore normalizes a 1-10 readiness rating.
func ReadinessScore(readiness int) int {
	return clamp(readiness, MinSubScore, MaxSubScore)
}

// SorenessScore inverts a 1-5 soreness rating: more soreness, lower score.
func SorenessScore(rating int) int {
	return clamp(10-rating, MinSubScore, MaxSubScore)
}

// MoodScore maps a 1-5 mood rating linearly onto 2..10.
func MoodScore(rating int) int {
	if s, ok := ratingScores[rating]; ok {
		return s
	}
	return DefaultFor(FieldMood)
}

// MovementScore scores a daily step count.
func MovementScore(steps int) int {
	switch {
	case steps < 2000:
		return 2
	case steps < 5000:
		return 4
	case steps < 8000:
		return 7
	case steps < 10000:
		return 9
	default:
		return 10
	}
}

// HydrationScore scores liters of water drunk.
func HydrationScore(liters float64) int {
	switch {
	case liters < 1.0:
		return 2
	case liters < 1.5:
		return 4
	case liters < 2.0:
		return 7
	case liters < 2.5:
		return 9
	default:
		return 10
	}
}

// ProteinScore maps a 0-4 protein intake level onto 2..10.
func ProteinScore(level int) int {
	if s, ok := proteinScores[level]; ok {
		return s
	}
	return DefaultFor(FieldProtein)
}

// DayStrainScore rewards moderate strain. Both very light (<=2) and very
// heavy (>7) days score lower than the 5-7 band.
func DayStrainScore(strain int) int {
	switch {
	case strain <= 2:
		return 5
	case strain <= 4:
		return 8
	case strain <= 7:
		return 10
	default:
		return 7
	}
}

// StepsFromBucket estimates a step count from a self-reported 1-5 bucket.
func StepsFromBucket(bucket int) int {
	if steps, ok := bucketSteps[bucket]; ok {
		return steps
	}
	return DefaultFor(FieldStepsBucket)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
