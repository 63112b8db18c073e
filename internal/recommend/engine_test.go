package recommend

import (
	"errors"
	"testing"

	"github.com/julianstephens/smartygym/internal/constants"
	"github.com/julianstephens/smartygym/internal/models"
)

func difficulty(d models.Difficulty) *models.Difficulty { return &d }

func item(id, category string, d models.Difficulty, duration, equipment string) models.ContentItem {
	return models.ContentItem{
		ID:         id,
		Name:       "Workout " + id,
		Type:       models.ContentWorkout,
		Category:   category,
		Difficulty: difficulty(d),
		Duration:   duration,
		Equipment:  equipment,
	}
}

func baseProfile() Profile {
	return Profile{
		CompletedIDs:         map[string]bool{},
		DaysSinceLastWorkout: constants.UnknownDaysSinceWorkout,
	}
}

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"30 min", 30, true},
		{"45-60 minutes", 45, true},
		{"  20", 20, true},
		{"", 0, false},
		{"about 30 min", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDurationMinutes(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseDurationMinutes(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResolve_AnswersOverrideContext(t *testing.T) {
	ctx := models.SmartyContext{
		Checkin: &models.CheckinRecord{
			MorningCompleted: true,
			ReadinessScore:   models.Int(3),
			MoodRating:       models.Int(4),
			SorenessRating:   models.Int(2),
			SleepHours:       models.Float(7.5),
		},
		Goal:                "Weight Loss",
		TimeAvailable:       models.Int(30),
		EquipmentPreference: "Equipment",
	}
	goal := "muscle gain"
	bodyweight := "bodyweight"
	answers := models.QuestionAnswers{
		Goal:      &goal,
		Equipment: &bodyweight,
		Energy:    models.Int(9),
	}

	p := Resolve(ctx, answers)
	if p.Goal != "muscle_gain" {
		t.Errorf("expected goal muscle_gain, got %q", p.Goal)
	}
	if p.Equipment != EquipmentBodyweight {
		t.Errorf("expected bodyweight, got %q", p.Equipment)
	}
	if p.Readiness == nil || *p.Readiness != 9 {
		t.Errorf("expected answered readiness 9, got %v", p.Readiness)
	}
	if p.Mood == nil || *p.Mood != 4 {
		t.Errorf("expected check-in mood 4, got %v", p.Mood)
	}
	if p.TimeAvailable == nil || *p.TimeAvailable != 30 {
		t.Errorf("expected context time 30, got %v", p.TimeAvailable)
	}
	if p.CompletedIDs == nil {
		t.Error("completed IDs should never be nil")
	}
}

func TestResolve_IgnoresUnsubmittedMorning(t *testing.T) {
	ctx := models.SmartyContext{
		Checkin: &models.CheckinRecord{ReadinessScore: models.Int(2)},
	}
	if p := Resolve(ctx, models.QuestionAnswers{}); p.Readiness != nil {
		t.Errorf("expected no readiness before morning check-in, got %d", *p.Readiness)
	}
}

func TestRank_GoalMatchWins(t *testing.T) {
	p := baseProfile()
	p.Goal = "weight_loss"

	pool := []models.ContentItem{
		item("strength-1", "STRENGTH", models.DifficultyIntermediate, "30 min", ""),
		item("cardio-1", "CARDIO", models.DifficultyIntermediate, "30 min", ""),
	}

	ranked := Rank(p, pool)
	if ranked[0].Item.ID != "cardio-1" {
		t.Fatalf("expected goal-matching item first, got %s", ranked[0].Item.ID)
	}
	if diff := ranked[0].Score - ranked[1].Score; diff < 30 {
		t.Errorf("expected goal match to lead by at least 30, got %d", diff)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	p := baseProfile()
	pool := []models.ContentItem{
		item("a", "STRENGTH", models.DifficultyIntermediate, "30 min", ""),
		item("b", "CARDIO", models.DifficultyIntermediate, "30 min", ""),
		item("c", "PILATES", models.DifficultyIntermediate, "30 min", ""),
	}

	ranked := Rank(p, pool)
	for i, want := range []string{"a", "b", "c"} {
		if ranked[i].Item.ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, ranked[i].Item.ID)
		}
	}
}

func TestFilter_TimeBudgetIsHard(t *testing.T) {
	p := baseProfile()
	p.TimeAvailable = models.Int(20)
	p.Goal = "weight_loss"

	long := item("long", "CARDIO", models.DifficultyBeginner, "36 min", "bodyweight")
	edge := item("edge", "STRENGTH", models.DifficultyIntermediate, "35 min", "")
	unknown := item("unknown", "STRENGTH", models.DifficultyIntermediate, "", "")

	pool := Filter(p, []models.ContentItem{long, edge, unknown})
	if len(pool) != 2 {
		t.Fatalf("expected 2 items after filtering, got %d", len(pool))
	}

	res, err := Recommend(p, []models.ContentItem{long, edge, unknown})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, sc := range res.Ranked {
		if sc.Item.ID == "long" {
			t.Error("item over budget+15 must never be scored")
		}
	}
	if len(res.Relaxed) != 0 {
		t.Errorf("expected no relaxed filters, got %v", res.Relaxed)
	}
}

func TestFilter_BodyweightOnly(t *testing.T) {
	p := baseProfile()
	p.Equipment = EquipmentBodyweight

	catalog := []models.ContentItem{
		item("dumbbells", "STRENGTH", models.DifficultyIntermediate, "30 min", "Dumbbells"),
		item("bw", "STRENGTH", models.DifficultyIntermediate, "30 min", "Bodyweight"),
		item("unspecified", "CARDIO", models.DifficultyIntermediate, "30 min", ""),
	}

	pool := Filter(p, catalog)
	if len(pool) != 2 || pool[0].ID != "bw" || pool[1].ID != "unspecified" {
		t.Errorf("unexpected pool: %+v", pool)
	}
}

func TestRecommend_RelaxesFilters(t *testing.T) {
	p := baseProfile()
	p.TimeAvailable = models.Int(10)
	p.Equipment = EquipmentBodyweight

	catalog := []models.ContentItem{
		item("kettlebell", "STRENGTH", models.DifficultyAdvanced, "60 min", "Kettlebell"),
		item("bw-long", "CARDIO", models.DifficultyIntermediate, "45 min", "Bodyweight"),
	}

	res, err := Recommend(p, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Suggestion.Item.ID != "bw-long" {
		t.Errorf("expected bodyweight item once time is relaxed, got %s", res.Suggestion.Item.ID)
	}
	if len(res.Relaxed) != 1 || res.Relaxed[0] != FilterTime {
		t.Errorf("expected time filter relaxed, got %v", res.Relaxed)
	}

	res, err = Recommend(p, catalog[:1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Suggestion.Item.ID != "kettlebell" || len(res.Relaxed) != 2 {
		t.Errorf("expected both filters relaxed, got %s %v", res.Suggestion.Item.ID, res.Relaxed)
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	_, err := Recommend(baseProfile(), nil)
	if !errors.Is(err, ErrNoSuitableContent) {
		t.Errorf("expected ErrNoSuitableContent, got %v", err)
	}
}

func TestRecommendFor_LowEnergyPrefersRecovery(t *testing.T) {
	ctx := models.SmartyContext{
		Checkin: &models.CheckinRecord{
			MorningCompleted: true,
			ReadinessScore:   models.Int(3),
			SorenessRating:   models.Int(4),
			MoodRating:       models.Int(3),
			SleepHours:       models.Float(7),
		},
		DaysSinceLastWorkout: constants.UnknownDaysSinceWorkout,
	}
	catalog := []models.ContentItem{
		item("hiit", "CHALLENGE", models.DifficultyAdvanced, "30 min", ""),
		item("stretch", "RECOVERY", models.DifficultyBeginner, "20 min", ""),
	}

	res, err := RecommendFor(ctx, models.QuestionAnswers{}, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Suggestion.Item.ID != "stretch" {
		t.Errorf("expected recovery session, got %s", res.Suggestion.Item.ID)
	}
	if len(res.Suggestion.Reasons) == 0 {
		t.Error("expected reasons for the suggestion")
	}
	if res.Note == nil || res.Note.Severity != models.NoteCaution {
		t.Errorf("expected caution note, got %+v", res.Note)
	}
}

func TestScoreItem_Factors(t *testing.T) {
	tests := []struct {
		name    string
		profile func(p *Profile)
		item    models.ContentItem
		want    int
	}{
		{
			// generic goal 15 + variety 15 + freshness 10
			name:    "baseline",
			profile: func(p *Profile) {},
			item:    item("x", "STRENGTH", models.DifficultyIntermediate, "30 min", ""),
			want:    40,
		},
		{
			name: "completed and repeated category",
			profile: func(p *Profile) {
				p.CompletedIDs["x"] = true
				p.RecentCategories = []string{"strength", "Strength", "STRENGTH"}
			},
			item: item("x", "STRENGTH", models.DifficultyIntermediate, "30 min", ""),
			want: 15 - 10,
		},
		{
			name:    "one recent occurrence",
			profile: func(p *Profile) { p.RecentCategories = []string{"CARDIO", "STRENGTH"} },
			item:    item("x", "STRENGTH", models.DifficultyIntermediate, "30 min", ""),
			want:    15 + 10 + 10,
		},
		{
			name:    "time fits",
			profile: func(p *Profile) { p.TimeAvailable = models.Int(30) },
			item:    item("x", "STRENGTH", models.DifficultyIntermediate, "30 min", ""),
			want:    40 + 20,
		},
		{
			name:    "time within tolerance",
			profile: func(p *Profile) { p.TimeAvailable = models.Int(30) },
			item:    item("x", "STRENGTH", models.DifficultyIntermediate, "40 min", ""),
			want:    40 + 10,
		},
		{
			name:    "time over tolerance",
			profile: func(p *Profile) { p.TimeAvailable = models.Int(30) },
			item:    item("x", "STRENGTH", models.DifficultyIntermediate, "45 min", ""),
			want:    40 - 20,
		},
		{
			name:    "bodyweight match",
			profile: func(p *Profile) { p.Equipment = EquipmentBodyweight },
			item:    item("x", "STRENGTH", models.DifficultyIntermediate, "30 min", "Bodyweight"),
			want:    40 + 15,
		},
		{
			name:    "bodyweight user, equipment item",
			profile: func(p *Profile) { p.Equipment = EquipmentBodyweight },
			item:    item("x", "STRENGTH", models.DifficultyIntermediate, "30 min", "Barbell"),
			want:    40 - 20,
		},
		{
			name:    "bodyweight user, unspecified equipment",
			profile: func(p *Profile) { p.Equipment = EquipmentBodyweight },
			item:    item("x", "STRENGTH", models.DifficultyIntermediate, "30 min", ""),
			want:    40,
		},
		{
			name:    "equipment user, unspecified equipment",
			profile: func(p *Profile) { p.Equipment = EquipmentAny },
			item:    item("x", "STRENGTH", models.DifficultyIntermediate, "30 min", "  "),
			want:    40,
		},
		{
			name:    "equipment user, equipment item",
			profile: func(p *Profile) { p.Equipment = EquipmentAny },
			item:    item("x", "STRENGTH", models.DifficultyIntermediate, "30 min", "Barbell"),
			want:    40 + 15,
		},
		{
			name:    "low readiness penalizes advanced",
			profile: func(p *Profile) { p.Readiness = models.Int(2) },
			item:    item("x", "STRENGTH", models.DifficultyAdvanced, "30 min", ""),
			want:    40 - 15,
		},
		{
			name:    "high readiness favors advanced",
			profile: func(p *Profile) { p.Readiness = models.Int(8) },
			item:    item("x", "STRENGTH", models.DifficultyAdvanced, "30 min", ""),
			want:    40 + 25,
		},
		{
			name:    "low mood favors recovery",
			profile: func(p *Profile) { p.Mood = models.Int(2) },
			item:    item("x", "RECOVERY", models.DifficultyBeginner, "30 min", ""),
			want:    40 + 15,
		},
		{
			name:    "low mood with high energy favors a challenge",
			profile: func(p *Profile) { p.Mood = models.Int(1); p.Readiness = models.Int(9) },
			item:    item("x", "CHALLENGE", models.DifficultyIntermediate, "30 min", ""),
			want:    40 + 20 + 10,
		},
		{
			name:    "soreness favors beginner",
			profile: func(p *Profile) { p.Soreness = models.Int(4) },
			item:    item("x", "STRENGTH", models.DifficultyBeginner, "30 min", ""),
			want:    40 + 10,
		},
		{
			name:    "short sleep penalizes advanced",
			profile: func(p *Profile) { p.SleepHours = models.Float(5) },
			item:    item("x", "STRENGTH", models.DifficultyAdvanced, "30 min", ""),
			want:    40 - 10,
		},
		{
			name:    "returning from a break",
			profile: func(p *Profile) { p.DaysSinceLastWorkout = 5 },
			item:    item("x", "STRENGTH", models.DifficultyBeginner, "30 min", ""),
			want:    40 + 10,
		},
		{
			name:    "unknown last workout is not a break",
			profile: func(p *Profile) { p.DaysSinceLastWorkout = constants.UnknownDaysSinceWorkout },
			item:    item("x", "STRENGTH", models.DifficultyBeginner, "30 min", ""),
			want:    40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseProfile()
			tt.profile(&p)
			got := ScoreItem(p, tt.item)
			if got.Score != tt.want {
				t.Errorf("expected score %d, got %d (reasons: %v)", tt.want, got.Score, got.Reasons)
			}
		})
	}
}

func TestRecommend_UnspecifiedEquipmentRanksWithBodyweight(t *testing.T) {
	p := baseProfile()
	p.Equipment = EquipmentBodyweight

	catalog := []models.ContentItem{
		item("unspecified", "STRENGTH", models.DifficultyIntermediate, "30 min", ""),
		item("bw", "STRENGTH", models.DifficultyIntermediate, "30 min", "Bodyweight"),
	}
	res, err := Recommend(p, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var unspecified *models.ScoredContent
	for i := range res.Ranked {
		if res.Ranked[i].Item.ID == "unspecified" {
			unspecified = &res.Ranked[i]
		}
	}
	if res.Suggestion.Item.ID != "bw" || unspecified == nil {
		t.Fatalf("expected bw first with unspecified ranked, got %+v", res)
	}
	if unspecified.Score != 40 {
		t.Errorf("unspecified score = %d, want 40", unspecified.Score)
	}
	for _, r := range unspecified.Reasons {
		if r == "Needs equipment you may not have" {
			t.Errorf("kept item should not be penalized for missing equipment: %v", unspecified.Reasons)
		}
	}
}
