package validation

import (
	"errors"
	"strings"
	"testing"
)

func ip(v int) *int         { return &v }
func fp(v float64) *float64 { return &v }

func validMorning() Morning {
	return Morning{SleepHours: fp(7.5), SleepQuality: ip(4), ReadinessScore: ip(7), SorenessRating: ip(2), MoodRating: ip(4)}
}

func validNight() Night {
	return Night{StepsValue: ip(8000), HydrationLiters: fp(2.2), ProteinLevel: ip(3), DayStrain: ip(5)}
}

func TestValidateMorning(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Morning)
		wantField string
	}{
		{"valid", func(*Morning) {}, ""},
		{"sleep hours above 24", func(m *Morning) { m.SleepHours = fp(24.5) }, "sleep_hours"},
		{"negative sleep hours", func(m *Morning) { m.SleepHours = fp(-1) }, "sleep_hours"},
		{"quality zero", func(m *Morning) { m.SleepQuality = ip(0) }, "sleep_quality"},
		{"readiness eleven", func(m *Morning) { m.ReadinessScore = ip(11) }, "readiness_score"},
		{"soreness six", func(m *Morning) { m.SorenessRating = ip(6) }, "soreness_rating"},
		{"missing mood", func(m *Morning) { m.MoodRating = nil }, "mood_rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMorning()
			tt.mutate(&m)
			r := ValidateMorning(m)
			if tt.wantField == "" {
				if r.HasIssues() {
					t.Fatalf("expected no issues, got %s", r.FormatReport())
				}
				return
			}
			if len(r.Issues) != 1 || r.Issues[0].Field != tt.wantField {
				t.Fatalf("expected one issue on %s, got %+v", tt.wantField, r.Issues)
			}
		})
	}
}

func TestValidateMorningBoundariesAccepted(t *testing.T) {
	m := Morning{SleepHours: fp(0), SleepQuality: ip(1), ReadinessScore: ip(10), SorenessRating: ip(5), MoodRating: ip(1)}
	if r := ValidateMorning(m); r.HasIssues() {
		t.Errorf("boundary values rejected: %s", r.FormatReport())
	}
}

func TestValidateNight(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Night)
		wantField string
	}{
		{"valid with steps", func(*Night) {}, ""},
		{"valid with bucket only", func(n *Night) { n.StepsValue = nil; n.StepsBucket = ip(3) }, ""},
		{"no steps at all", func(n *Night) { n.StepsValue = nil }, "steps"},
		{"bucket six", func(n *Night) { n.StepsBucket = ip(6) }, "steps_bucket"},
		{"negative steps", func(n *Night) { n.StepsValue = ip(-5) }, "steps_value"},
		{"protein five", func(n *Night) { n.ProteinLevel = ip(5) }, "protein_level"},
		{"strain eleven", func(n *Night) { n.DayStrain = ip(11) }, "day_strain"},
		{"missing hydration", func(n *Night) { n.HydrationLiters = nil }, "hydration_liters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := validNight()
			tt.mutate(&n)
			r := ValidateNight(n)
			if tt.wantField == "" {
				if r.HasIssues() {
					t.Fatalf("expected no issues, got %s", r.FormatReport())
				}
				return
			}
			if len(r.Issues) != 1 || r.Issues[0].Field != tt.wantField {
				t.Fatalf("expected one issue on %s, got %+v", tt.wantField, r.Issues)
			}
		})
	}
}

func TestResultErr(t *testing.T) {
	if err := ValidateMorning(validMorning()).Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	m := validMorning()
	m.MoodRating = ip(9)
	err := ValidateMorning(m).Err()
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !strings.Contains(err.Error(), "mood_rating must be between 1 and 5") {
		t.Errorf("unexpected message: %v", err)
	}
	if verr.Hint() == "" {
		t.Error("expected a hint")
	}
}

func TestValidateDateAndTimezone(t *testing.T) {
	if r := ValidateDate("2024-02-29"); r.HasIssues() {
		t.Error("leap day should be valid")
	}
	if r := ValidateDate("2023-02-29"); !r.HasIssues() {
		t.Error("non-leap Feb 29 should be invalid")
	}
	if r := ValidateTimezone("Europe/Athens"); r.HasIssues() {
		t.Error("Europe/Athens should be valid")
	}
	if r := ValidateTimezone("Atlantis/Capital"); !r.HasIssues() {
		t.Error("unknown timezone should be invalid")
	}
}
