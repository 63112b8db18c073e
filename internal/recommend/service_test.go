package recommend

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/smartygym/internal/constants"
	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/storage"
	"github.com/julianstephens/smartygym/internal/storage/sqlite"
)

func setupTestService(t *testing.T) (*Service, *sqlite.Store, models.Settings) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "smarty.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.Timezone = "UTC"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC)
	svc := NewService(store, WithClock(func() time.Time { return now }))
	return svc, store, settings
}

func seedCatalog(t *testing.T, store *sqlite.Store) {
	t.Helper()
	items := []models.ContentItem{
		item("w-hiit", "HIIT", models.DifficultyAdvanced, "30 min", ""),
		item("w-mob", "MOBILITY & STRETCHING", models.DifficultyBeginner, "20 min", ""),
		item("w-str", "STRENGTH", models.DifficultyIntermediate, "40 min", "Dumbbells"),
		{ID: "p-str", Name: "Strength Foundations", Type: models.ContentProgram, Category: "STRENGTH"},
	}
	for _, it := range items {
		if err := store.SaveContentItem(it); err != nil {
			t.Fatal(err)
		}
	}
}

func addActivity(t *testing.T, store *sqlite.Store, userID, id, contentID, category string, kind models.ActivityKind, date string) {
	t.Helper()
	err := store.AddActivity(models.Activity{
		ID: id, UserID: userID, ContentID: contentID, Category: category,
		Kind: kind, Date: date, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestBuildContextEmpty(t *testing.T) {
	svc, _, _ := setupTestService(t)
	sc, err := svc.BuildContext(context.Background(), "2024-03-10")
	if err != nil {
		t.Fatalf("BuildContext failed: %v", err)
	}
	if sc.Checkin != nil {
		t.Error("expected no check-in")
	}
	if sc.DaysSinceLastWorkout != constants.UnknownDaysSinceWorkout {
		t.Errorf("DaysSinceLastWorkout = %d, want %d", sc.DaysSinceLastWorkout, constants.UnknownDaysSinceWorkout)
	}
	if len(sc.CompletedIDs) != 0 || sc.TimeAvailable != nil {
		t.Errorf("unexpected context: %+v", sc)
	}
}

func TestBuildContextFromActivities(t *testing.T) {
	svc, store, settings := setupTestService(t)
	seedCatalog(t, store)
	settings.Goal = "build_strength"
	settings.TimeAvailableMin = 30
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	uid := settings.UserID
	addActivity(t, store, uid, "a1", "w-hiit", "HIIT", models.ActivityCompleted, "2024-03-01")
	addActivity(t, store, uid, "a2", "w-str", "STRENGTH", models.ActivityCompleted, "2024-03-05")
	addActivity(t, store, uid, "a3", "w-mob", "MOBILITY & STRETCHING", models.ActivityScheduled, "2024-03-10")
	addActivity(t, store, uid, "a4", "w-hiit", "HIIT", models.ActivityScheduled, "2024-03-11")
	addActivity(t, store, uid, "a5", "p-str", "STRENGTH", models.ActivityOngoing, "2024-03-02")
	addActivity(t, store, uid, "a6", "gone", "CARDIO", models.ActivityOngoing, "2024-03-03")

	sc, err := svc.BuildContext(context.Background(), "2024-03-10")
	if err != nil {
		t.Fatal(err)
	}
	if sc.DaysSinceLastWorkout != 5 {
		t.Errorf("DaysSinceLastWorkout = %d, want 5", sc.DaysSinceLastWorkout)
	}
	if len(sc.RecentCategories) != 2 || sc.RecentCategories[0] != "STRENGTH" {
		t.Errorf("RecentCategories = %v, want newest first", sc.RecentCategories)
	}
	if !sc.CompletedIDs["w-hiit"] || !sc.CompletedIDs["w-str"] {
		t.Errorf("CompletedIDs = %v", sc.CompletedIDs)
	}
	if len(sc.ScheduledToday) != 1 || sc.ScheduledToday[0].ID != "w-mob" {
		t.Errorf("ScheduledToday = %+v, want only w-mob", sc.ScheduledToday)
	}
	if len(sc.OngoingPrograms) != 1 || sc.OngoingPrograms[0].ID != "p-str" {
		t.Errorf("OngoingPrograms = %+v, want p-str with unknown content skipped", sc.OngoingPrograms)
	}
	if sc.Goal != "build_strength" || sc.TimeAvailable == nil || *sc.TimeAvailable != 30 {
		t.Errorf("settings not applied: %+v", sc)
	}
}

func TestServiceRecommendUsesTodaysCheckin(t *testing.T) {
	svc, store, settings := setupTestService(t)
	seedCatalog(t, store)

	now := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)
	err := store.SaveCheckin(models.CheckinRecord{
		ID: "c1", UserID: settings.UserID, Date: "2024-03-10",
		MorningCompleted: true,
		SleepHours:       models.Float(7),
		SleepQuality:     models.Int(3),
		ReadinessScore:   models.Int(3),
		SorenessRating:   models.Int(2),
		MoodRating:       models.Int(3),
		Status:           models.StatusIncompleteMorningOnly,
		CreatedAt:        now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := svc.Recommend(context.Background(), models.QuestionAnswers{})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if res.Suggestion.Item.ID != "w-mob" {
		t.Errorf("suggestion = %s, want w-mob for a low-energy day", res.Suggestion.Item.ID)
	}
	if res.Note == nil || res.Note.Severity != models.NoteCaution {
		t.Errorf("expected a caution note, got %+v", res.Note)
	}
	if len(res.Ranked) != 4 {
		t.Errorf("expected the whole catalog ranked, got %d", len(res.Ranked))
	}
}

func TestServiceRecommendEmptyCatalog(t *testing.T) {
	svc, _, _ := setupTestService(t)
	_, err := svc.Recommend(context.Background(), models.QuestionAnswers{})
	if !errors.Is(err, ErrNoSuitableContent) {
		t.Errorf("expected ErrNoSuitableContent, got %v", err)
	}
}

func TestLogActivity(t *testing.T) {
	svc, store, settings := setupTestService(t)
	seedCatalog(t, store)
	ctx := context.Background()

	a, err := svc.LogActivity(ctx, "w-str", models.ActivityCompleted, "")
	if err != nil {
		t.Fatalf("LogActivity failed: %v", err)
	}
	if a.Date != "2024-03-10" || a.Category != "STRENGTH" || a.UserID != settings.UserID {
		t.Errorf("unexpected activity: %+v", a)
	}

	if _, err := svc.LogActivity(ctx, "missing", models.ActivityCompleted, ""); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown content, got %v", err)
	}
	if _, err := svc.LogActivity(ctx, "w-str", models.ActivityOngoing, ""); err == nil {
		t.Error("expected error enrolling in a single workout")
	}
	if _, err := svc.LogActivity(ctx, "p-str", models.ActivityOngoing, "2024-13-01"); err == nil {
		t.Error("expected error for invalid date")
	}
	if _, err := svc.LogActivity(ctx, "p-str", models.ActivityKind("paused"), ""); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestActivities(t *testing.T) {
	svc, store, _ := setupTestService(t)
	seedCatalog(t, store)
	ctx := context.Background()

	for _, date := range []string{"2024-03-08", "2024-03-09"} {
		if _, err := svc.LogActivity(ctx, "w-str", models.ActivityCompleted, date); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.LogActivity(ctx, "w-hiit", models.ActivityScheduled, "2024-03-11"); err != nil {
		t.Fatal(err)
	}

	done, err := svc.Activities(ctx, models.ActivityCompleted, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(done) != 2 || done[0].Date != "2024-03-09" {
		t.Errorf("expected 2 completed activities newest first, got %+v", done)
	}
	latest, err := svc.Activities(ctx, models.ActivityCompleted, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(latest) != 1 {
		t.Errorf("expected limit to apply, got %d", len(latest))
	}
}
