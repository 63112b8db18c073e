package sqlite

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/smartygym/internal/constants"
	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/storage"
)

var _ storage.Provider = (*Store)(nil)
var _ storage.Migrator = (*Store)(nil)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "smarty.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitSeedsSettings(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.UserID == "" {
		t.Error("expected a generated user id")
	}
	if settings.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", settings.Timezone, constants.DefaultTimezone)
	}
	if settings.HistoryWindow != constants.DefaultHistoryWindow {
		t.Errorf("HistoryWindow = %d, want %d", settings.HistoryWindow, constants.DefaultHistoryWindow)
	}

	// Re-running Init keeps the existing identity.
	if err := store.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	again, _ := store.GetSettings()
	if again.UserID != settings.UserID {
		t.Errorf("user id changed across Init: %s -> %s", settings.UserID, again.UserID)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "init") {
		t.Errorf("expected not-initialized error, got %v", err)
	}
}

func TestLoadAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smarty.db")
	first := NewStore(path)
	if err := first.Init(); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second := NewStore(path)
	if err := second.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer second.Close()

	st, err := second.MigrationStatus()
	if err != nil {
		t.Fatal(err)
	}
	if !st.UpToDate() {
		t.Errorf("expected schema up to date, got %+v", st)
	}
}

func TestSaveSettings(t *testing.T) {
	store := setupTestStore(t)
	settings, _ := store.GetSettings()
	settings.Goal = "weight_loss"
	settings.TimeAvailableMin = 30
	settings.EquipmentPreference = "bodyweight"
	settings.Timezone = "Europe/Athens"

	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	got, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got != settings {
		t.Errorf("settings round trip mismatch:\n got %+v\nwant %+v", got, settings)
	}
}

func sampleCheckin(userID, date string) models.CheckinRecord {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return models.CheckinRecord{
		ID:               "c-" + date,
		UserID:           userID,
		Date:             date,
		MorningCompleted: true,
		SleepHours:       models.Float(7.5),
		SleepQuality:     models.Int(4),
		ReadinessScore:   models.Int(7),
		SorenessRating:   models.Int(2),
		MoodRating:       models.Int(4),
		SleepScore:       models.Int(9),
		Status:           models.StatusIncompleteMorningOnly,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestCheckinRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	rec := sampleCheckin("u1", "2024-03-01")

	if err := store.SaveCheckin(rec); err != nil {
		t.Fatalf("SaveCheckin failed: %v", err)
	}
	got, err := store.GetCheckin("u1", "2024-03-01")
	if err != nil {
		t.Fatalf("GetCheckin failed: %v", err)
	}
	if *got.SleepHours != 7.5 || *got.ReadinessScore != 7 || *got.SleepScore != 9 {
		t.Errorf("unexpected values: %+v", got)
	}
	if got.StepsValue != nil || got.DailySmartyScore != nil || got.ScoreCategory != nil {
		t.Error("expected unset night fields and composite to stay nil")
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, rec.CreatedAt)
	}
}

func TestSaveCheckinUpsertsByUserAndDate(t *testing.T) {
	store := setupTestStore(t)
	rec := sampleCheckin("u1", "2024-03-01")
	if err := store.SaveCheckin(rec); err != nil {
		t.Fatal(err)
	}

	rec.NightCompleted = true
	rec.StepsValue = models.Int(9000)
	rec.DailySmartyScore = models.Int(72)
	cat := models.CategoryYellow
	rec.ScoreCategory = &cat
	rec.Status = models.StatusComplete
	rec.UpdatedAt = rec.UpdatedAt.Add(12 * time.Hour)
	if err := store.SaveCheckin(rec); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := store.GetCheckin("u1", "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusComplete || *got.DailySmartyScore != 72 || *got.ScoreCategory != models.CategoryYellow {
		t.Errorf("upsert not applied: %+v", got)
	}

	recent, _ := store.GetRecentCheckins("u1", 10)
	if len(recent) != 1 {
		t.Errorf("expected a single row per (user, date), got %d", len(recent))
	}
}

func TestGetCheckinNotFound(t *testing.T) {
	store := setupTestStore(t)
	_, err := store.GetCheckin("u1", "2024-03-01")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRecentCheckinsOrderAndLimit(t *testing.T) {
	store := setupTestStore(t)
	for _, d := range []string{"2024-03-02", "2024-03-05", "2024-03-01", "2024-03-04"} {
		if err := store.SaveCheckin(sampleCheckin("u1", d)); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.SaveCheckin(sampleCheckin("u2", "2024-03-06")); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetRecentCheckins("u1", 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2024-03-05", "2024-03-04", "2024-03-02"}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Date != want[i] {
			t.Errorf("record %d date = %s, want %s", i, got[i].Date, want[i])
		}
	}
}

func TestAwardBadgeInsertIfAbsent(t *testing.T) {
	store := setupTestStore(t)
	badge := models.Badge{
		ID:       "b1",
		UserID:   "u1",
		Type:     models.BadgeHydrationHero,
		Level:    models.LevelBronze,
		EarnedAt: time.Date(2024, 3, 7, 21, 0, 0, 0, time.UTC),
		Data:     map[string]any{"days": 5, "window": 7},
	}

	inserted, err := store.AwardBadge(badge)
	if err != nil || !inserted {
		t.Fatalf("first award: inserted=%v err=%v", inserted, err)
	}

	dup := badge
	dup.ID = "b2"
	inserted, err = store.AwardBadge(dup)
	if err != nil {
		t.Fatalf("duplicate award errored: %v", err)
	}
	if inserted {
		t.Error("duplicate (type, level) should not be inserted")
	}

	silver := badge
	silver.ID = "b3"
	silver.Level = models.LevelSilver
	if inserted, _ := store.AwardBadge(silver); !inserted {
		t.Error("a different level should be inserted")
	}

	badges, err := store.GetBadges("u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(badges) != 2 {
		t.Fatalf("expected 2 badges, got %d", len(badges))
	}
	if badges[0].ID != "b1" || badges[0].Data["days"] != float64(5) {
		t.Errorf("unexpected first badge: %+v", badges[0])
	}
}

func TestContentItems(t *testing.T) {
	store := setupTestStore(t)
	beginner := models.DifficultyBeginner
	items := []models.ContentItem{
		{ID: "w2", Name: "Mobility Flow", Type: models.ContentWorkout, Category: "MOBILITY & STRETCHING", Difficulty: &beginner, Duration: "20 min"},
		{ID: "p1", Name: "Strength Block", Type: models.ContentProgram, Category: "STRENGTH", Equipment: "Dumbbells"},
	}
	for _, item := range items {
		if err := store.SaveContentItem(item); err != nil {
			t.Fatalf("SaveContentItem failed: %v", err)
		}
	}

	all, err := store.GetAllContentItems()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].ID != "p1" {
		t.Fatalf("unexpected catalog: %+v", all)
	}
	if all[0].Difficulty != nil {
		t.Error("expected nil difficulty for p1")
	}

	items[0].Name = "Mobility Flow II"
	if err := store.SaveContentItem(items[0]); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetContentItem("w2")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Mobility Flow II" || *got.Difficulty != models.DifficultyBeginner {
		t.Errorf("unexpected item after upsert: %+v", got)
	}

	if _, err := store.GetContentItem("nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestActivities(t *testing.T) {
	store := setupTestStore(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	activities := []models.Activity{
		{ID: "a1", UserID: "u1", ContentID: "w1", Category: "CARDIO", Kind: models.ActivityCompleted, Date: "2024-03-01", CreatedAt: created},
		{ID: "a2", UserID: "u1", ContentID: "w2", Category: "STRENGTH", Kind: models.ActivityCompleted, Date: "2024-03-03", CreatedAt: created},
		{ID: "a3", UserID: "u1", ContentID: "w3", Category: "CARDIO", Kind: models.ActivityScheduled, Date: "2024-03-04", CreatedAt: created},
	}
	for _, a := range activities {
		if err := store.AddActivity(a); err != nil {
			t.Fatalf("AddActivity failed: %v", err)
		}
	}

	completed, err := store.GetActivities("u1", models.ActivityCompleted, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(completed) != 2 || completed[0].ID != "a2" {
		t.Errorf("expected newest completed first, got %+v", completed)
	}

	limited, _ := store.GetActivities("u1", models.ActivityCompleted, 1)
	if len(limited) != 1 {
		t.Errorf("expected limit 1, got %d", len(limited))
	}

	if err := store.DeleteActivity("a3"); err != nil {
		t.Fatalf("DeleteActivity failed: %v", err)
	}
	if scheduled, _ := store.GetActivities("u1", models.ActivityScheduled, 0); len(scheduled) != 0 {
		t.Errorf("expected no scheduled activities, got %d", len(scheduled))
	}
	if err := store.DeleteActivity("a3"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}
