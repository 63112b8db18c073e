package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smartygym/internal/checkin"
	"github.com/julianstephens/smartygym/internal/validation"
)

type MorningFormModel struct {
	SleepHours   string
	SleepQuality int
	Readiness    int
	Soreness     int
	Mood         int
}

type NightFormModel struct {
	StepsBucket int
	Water       string
	Protein     int
	Strain      int
}

func scale(lo, hi int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(v), v))
	}
	return opts
}

func numberUpTo(max float64) func(string) error {
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

func NewMorningForm(fm *MorningFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Hours slept").Value(&fm.SleepHours).Validate(numberUpTo(validation.MaxSleepHours)),
			huh.NewSelect[int]().Title("Sleep quality (1-5)").Options(scale(1, 5)...).Value(&fm.SleepQuality),
			huh.NewSelect[int]().Title("Readiness (1-10)").Options(scale(1, 10)...).Value(&fm.Readiness),
			huh.NewSelect[int]().Title("Soreness (1-5)").Options(scale(1, 5)...).Value(&fm.Soreness),
			huh.NewSelect[int]().Title("Mood (1-5)").Options(scale(1, 5)...).Value(&fm.Mood),
		).Title("Morning check-in"),
	)
}

func NewNightForm(fm *NightFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().Title("Steps").Options(
				huh.NewOption("under 2,000", 1),
				huh.NewOption("2,000 - 5,000", 2),
				huh.NewOption("5,000 - 8,000", 3),
				huh.NewOption("8,000 - 10,000", 4),
				huh.NewOption("over 10,000", 5),
			).Value(&fm.StepsBucket),
			huh.NewInput().Title("Water (litres)").Value(&fm.Water).Validate(numberUpTo(validation.MaxHydrationLiters)),
			huh.NewSelect[int]().Title("Protein (0-4)").Options(scale(0, 4)...).Value(&fm.Protein),
			huh.NewSelect[int]().Title("Day strain (0-10)").Options(scale(0, 10)...).Value(&fm.Strain),
		).Title("Night check-in"),
	)
}

func (fm MorningFormModel) Input() (checkin.MorningInput, error) {
	hours, err := strconv.ParseFloat(strings.TrimSpace(fm.SleepHours), 64)
	if err != nil {
		return checkin.MorningInput{}, fmt.Errorf("invalid sleep hours: %w", err)
	}
	return checkin.MorningInput{Morning: validation.Morning{
		SleepHours:     &hours,
		SleepQuality:   &fm.SleepQuality,
		ReadinessScore: &fm.Readiness,
		SorenessRating: &fm.Soreness,
		MoodRating:     &fm.Mood,
	}}, nil
}

func (fm NightFormModel) Input() (checkin.NightInput, error) {
	water, err := strconv.ParseFloat(strings.TrimSpace(fm.Water), 64)
	if err != nil {
		return checkin.NightInput{}, fmt.Errorf("invalid water amount: %w", err)
	}
	return checkin.NightInput{Night: validation.Night{
		StepsBucket:     &fm.StepsBucket,
		HydrationLiters: &water,
		ProteinLevel:    &fm.Protein,
		DayStrain:       &fm.Strain,
	}}, nil
}

func (m *Model) openMorningForm() tea.Cmd {
	m.morningForm = &MorningFormModel{SleepHours: "7.5", SleepQuality: 3, Readiness: 5, Soreness: 1, Mood: 3}
	m.form = NewMorningForm(m.morningForm)
	m.previousState = m.state
	m.state = StateMorningForm
	return m.form.Init()
}

func (m *Model) openNightForm() tea.Cmd {
	m.nightForm = &NightFormModel{StepsBucket: 3, Water: "2", Protein: 2, Strain: 5}
	m.form = NewNightForm(m.nightForm)
	m.previousState = m.state
	m.state = StateNightForm
	return m.form.Init()
}

// submitForm saves the completed form and reports whether it succeeded.
func (m *Model) submitForm() bool {
	ctx := context.Background()
	var (
		res  checkin.Result
		err  error
		what string
	)
	switch m.state {
	case StateMorningForm:
		what = "Morning"
		var in checkin.MorningInput
		if in, err = m.morningForm.Input(); err == nil {
			res, err = m.checkins.SubmitMorning(ctx, in)
		}
	case StateNightForm:
		what = "Night"
		var in checkin.NightInput
		if in, err = m.nightForm.Input(); err == nil {
			res, err = m.checkins.SubmitNight(ctx, in)
		}
	default:
		return false
	}
	if err != nil {
		m.errMsg = "Failed to save check-in: " + err.Error()
		return false
	}
	m.errMsg = ""
	m.announce(res, what)
	m.refresh()
	return true
}

func (m *Model) closeForm() {
	m.form = nil
	m.state = m.previousState
}
