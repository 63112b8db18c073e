package checkins

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smartygym/internal/validation"
)

// ratingOptions builds select options for an inclusive integer scale.
func ratingOptions(lo, hi int, labels map[int]string) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		label := strconv.Itoa(v)
		if l, ok := labels[v]; ok {
			label = fmt.Sprintf("%d - %s", v, l)
		}
		opts = append(opts, huh.NewOption(label, v))
	}
	return opts
}

func validateFloat(max float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if v < 0 || v > max {
			return fmt.Errorf("must be between 0 and %g", max)
		}
		return nil
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

// promptMorning fills m interactively, using any values already set as defaults.
func promptMorning(m *validation.Morning) error {
	hours := formatFloat(m.SleepHours)
	quality := intOr(m.SleepQuality, 3)
	readiness := intOr(m.ReadinessScore, 5)
	soreness := intOr(m.SorenessRating, 1)
	mood := intOr(m.MoodRating, 3)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Hours slept").Value(&hours).Validate(validateFloat(validation.MaxSleepHours)),
			huh.NewSelect[int]().Title("Sleep quality").
				Options(ratingOptions(1, 5, map[int]string{1: "terrible", 5: "excellent"})...).Value(&quality),
			huh.NewSelect[int]().Title("Readiness to train").
				Options(ratingOptions(1, 10, map[int]string{1: "exhausted", 10: "raring to go"})...).Value(&readiness),
			huh.NewSelect[int]().Title("Muscle soreness").
				Options(ratingOptions(1, 5, map[int]string{1: "none", 5: "very sore"})...).Value(&soreness),
			huh.NewSelect[int]().Title("Mood").
				Options(ratingOptions(1, 5, map[int]string{1: "low", 5: "great"})...).Value(&mood),
		).Title("Morning check-in"),
	)
	if err := form.Run(); err != nil {
		return err
	}

	h, err := strconv.ParseFloat(strings.TrimSpace(hours), 64)
	if err != nil {
		return fmt.Errorf("invalid sleep hours: %w", err)
	}
	m.SleepHours = &h
	m.SleepQuality = &quality
	m.ReadinessScore = &readiness
	m.SorenessRating = &soreness
	m.MoodRating = &mood
	return nil
}

// promptNight fills n interactively. Steps are asked as a bucket unless an
// exact count was already given.
func promptNight(n *validation.Night) error {
	bucket := intOr(n.StepsBucket, 3)
	hydration := formatFloat(n.HydrationLiters)
	protein := intOr(n.ProteinLevel, 2)
	strain := intOr(n.DayStrain, 5)

	fields := []huh.Field{}
	if n.StepsValue == nil {
		fields = append(fields, huh.NewSelect[int]().Title("Steps today").Options(
			huh.NewOption("under 2,000", 1),
			huh.NewOption("2,000 - 5,000", 2),
			huh.NewOption("5,000 - 8,000", 3),
			huh.NewOption("8,000 - 10,000", 4),
			huh.NewOption("over 10,000", 5),
		).Value(&bucket))
	}
	fields = append(fields,
		huh.NewInput().Title("Water (litres)").Value(&hydration).Validate(validateFloat(validation.MaxHydrationLiters)),
		huh.NewSelect[int]().Title("Protein intake").
			Options(ratingOptions(0, 4, map[int]string{0: "none", 4: "every meal"})...).Value(&protein),
		huh.NewSelect[int]().Title("Day strain").
			Options(ratingOptions(0, 10, map[int]string{0: "rest day", 10: "brutal"})...).Value(&strain),
	)

	form := huh.NewForm(huh.NewGroup(fields...).Title("Night check-in"))
	if err := form.Run(); err != nil {
		return err
	}

	h, err := strconv.ParseFloat(strings.TrimSpace(hydration), 64)
	if err != nil {
		return fmt.Errorf("invalid hydration: %w", err)
	}
	if n.StepsValue == nil {
		n.StepsBucket = &bucket
	}
	n.HydrationLiters = &h
	n.ProteinLevel = &protein
	n.DayStrain = &strain
	return nil
}
