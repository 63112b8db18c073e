// Package checkin records morning and night check-ins, scores them and
// awards any badges the updated history earns.
package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/julianstephens/smartygym/internal/badges"
	"github.com/julianstephens/smartygym/internal/constants"
	"github.com/julianstephens/smartygym/internal/logger"
	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/storage"
	"github.com/julianstephens/smartygym/internal/utils"
	"github.com/julianstephens/smartygym/internal/validation"
	"github.com/julianstephens/smartygym/internal/wellness"
)

// Service runs the check-in flow against a storage provider.
type Service struct {
	store storage.Provider
	now   func() time.Time
	log   *log.Logger
}

type Option func(*Service)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store storage.Provider, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		log:   logger.With("checkin"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MorningInput is a morning submission. An empty Date means today in the
// configured timezone.
type MorningInput struct {
	Date string
	validation.Morning
}

// NightInput is a night submission. An empty Date means today.
type NightInput struct {
	Date string
	validation.Night
}

// Result is the stored record after scoring plus any badges it unlocked.
type Result struct {
	Record    models.CheckinRecord
	NewBadges []models.Badge
}

// Today returns the current date in the user's timezone.
func (s *Service) Today() (string, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("loading settings: %w", err)
	}
	return utils.DateIn(s.now(), settings.Timezone)
}

// localNow is the clock reading in the user's timezone.
func (s *Service) localNow(settings models.Settings) (time.Time, error) {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return s.now().In(loc), nil
}

func (s *Service) resolveDate(settings models.Settings, date string) (string, error) {
	if date == "" {
		return utils.DateIn(s.now(), settings.Timezone)
	}
	if err := validation.ValidateDate(date).Err(); err != nil {
		return "", err
	}
	return date, nil
}

// loadOrNew returns the stored record for date or a fresh one.
func (s *Service) loadOrNew(userID, date string) (models.CheckinRecord, error) {
	rec, err := s.store.GetCheckin(userID, date)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.CheckinRecord{}, fmt.Errorf("loading check-in: %w", err)
	}
	now := s.now().UTC()
	return models.CheckinRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		Status:    models.StatusMissed,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SubmitMorning stores the morning section and rescores the day.
// Re-submitting replaces the previous morning answers.
func (s *Service) SubmitMorning(ctx context.Context, in MorningInput) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := validation.ValidateMorning(in.Morning).Err(); err != nil {
		return Result{}, err
	}
	settings, err := s.store.GetSettings()
	if err != nil {
		return Result{}, fmt.Errorf("loading settings: %w", err)
	}
	date, err := s.resolveDate(settings, in.Date)
	if err != nil {
		return Result{}, err
	}

	rec, err := s.loadOrNew(settings.UserID, date)
	if err != nil {
		return Result{}, err
	}
	rec.MorningCompleted = true
	rec.SleepHours = in.SleepHours
	rec.SleepQuality = in.SleepQuality
	rec.ReadinessScore = in.ReadinessScore
	rec.SorenessRating = in.SorenessRating
	rec.MoodRating = in.MoodRating

	s.log.Debug("morning check-in", "date", date)
	return s.finalize(ctx, settings, rec)
}

// SubmitNight stores the night section and rescores the day.
func (s *Service) SubmitNight(ctx context.Context, in NightInput) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := validation.ValidateNight(in.Night).Err(); err != nil {
		return Result{}, err
	}
	settings, err := s.store.GetSettings()
	if err != nil {
		return Result{}, fmt.Errorf("loading settings: %w", err)
	}
	date, err := s.resolveDate(settings, in.Date)
	if err != nil {
		return Result{}, err
	}

	rec, err := s.loadOrNew(settings.UserID, date)
	if err != nil {
		return Result{}, err
	}
	rec.NightCompleted = true
	rec.StepsValue = in.StepsValue
	rec.StepsBucket = in.StepsBucket
	rec.HydrationLiters = in.HydrationLiters
	rec.ProteinLevel = in.ProteinLevel
	rec.DayStrain = in.DayStrain

	s.log.Debug("night check-in", "date", date)
	return s.finalize(ctx, settings, rec)
}

// Recalculate rescores an existing record and re-runs badge evaluation.
func (s *Service) Recalculate(ctx context.Context, date string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	settings, err := s.store.GetSettings()
	if err != nil {
		return Result{}, fmt.Errorf("loading settings: %w", err)
	}
	date, err = s.resolveDate(settings, date)
	if err != nil {
		return Result{}, err
	}
	rec, err := s.store.GetCheckin(settings.UserID, date)
	if err != nil {
		return Result{}, fmt.Errorf("loading check-in: %w", err)
	}
	return s.finalize(ctx, settings, rec)
}

// finalize scores rec, saves it, then awards newly earned badges.
func (s *Service) finalize(ctx context.Context, settings models.Settings, rec models.CheckinRecord) (Result, error) {
	scored := wellness.Score(rec)
	scored.UpdatedAt = s.now().UTC()
	if err := s.store.SaveCheckin(scored); err != nil {
		return Result{}, fmt.Errorf("saving check-in: %w", err)
	}
	if scored.HasComposite() {
		s.log.Info("daily score computed", "date", scored.Date, "score", *scored.DailySmartyScore, "category", *scored.ScoreCategory)
	}

	result := Result{Record: scored}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	awarded, err := s.awardBadges(settings)
	result.NewBadges = awarded
	if err != nil {
		return result, fmt.Errorf("evaluating badges: %w", err)
	}
	return result, nil
}

func (s *Service) awardBadges(settings models.Settings) ([]models.Badge, error) {
	now, err := s.localNow(settings)
	if err != nil {
		return nil, err
	}
	history, err := s.store.GetRecentCheckins(settings.UserID, constants.MaxHistoryWindow)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.GetBadges(settings.UserID)
	if err != nil {
		return nil, err
	}

	var awarded []models.Badge
	for _, b := range badges.Evaluate(settings.UserID, history, existing, now) {
		b.ID = uuid.NewString()
		inserted, err := s.store.AwardBadge(b)
		if err != nil {
			return awarded, fmt.Errorf("awarding %s %s: %w", b.Type, b.Level, err)
		}
		if !inserted {
			// Another evaluation stored it first.
			s.log.Debug("badge already held", "type", b.Type, "level", b.Level)
			continue
		}
		s.log.Info("badge awarded", "type", b.Type, "level", b.Level)
		awarded = append(awarded, b)
	}
	return awarded, nil
}

// Get returns the record for date, or today when date is empty.
func (s *Service) Get(ctx context.Context, date string) (models.CheckinRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.CheckinRecord{}, err
	}
	settings, err := s.store.GetSettings()
	if err != nil {
		return models.CheckinRecord{}, fmt.Errorf("loading settings: %w", err)
	}
	date, err = s.resolveDate(settings, date)
	if err != nil {
		return models.CheckinRecord{}, err
	}
	return s.store.GetCheckin(settings.UserID, date)
}

// History returns up to limit records, newest first. limit <= 0 uses the
// history_window setting.
func (s *Service) History(ctx context.Context, limit int) ([]models.CheckinRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if limit <= 0 {
		limit = settings.HistoryWindow
	}
	return s.store.GetRecentCheckins(settings.UserID, limit)
}

// Badges lists every badge the user holds.
func (s *Service) Badges(ctx context.Context) ([]models.Badge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return s.store.GetBadges(settings.UserID)
}
