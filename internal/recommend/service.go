package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/julianstephens/smartygym/internal/constants"
	"github.com/julianstephens/smartygym/internal/logger"
	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/storage"
	"github.com/julianstephens/smartygym/internal/utils"
	"github.com/julianstephens/smartygym/internal/validation"
)

// Service assembles recommendation context from storage and records the
// activities that feed it.
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
		log:   logger.With("recommend"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today(settings models.Settings) (string, error) {
	return utils.DateIn(s.now(), settings.Timezone)
}

// BuildContext snapshots everything the engine reads for the given day.
func (s *Service) BuildContext(ctx context.Context, today string) (models.SmartyContext, error) {
	if err := ctx.Err(); err != nil {
		return models.SmartyContext{}, err
	}
	settings, err := s.store.GetSettings()
	if err != nil {
		return models.SmartyContext{}, fmt.Errorf("loading settings: %w", err)
	}

	sc := models.SmartyContext{
		Goal:                 settings.Goal,
		EquipmentPreference:  settings.EquipmentPreference,
		CompletedIDs:         map[string]bool{},
		DaysSinceLastWorkout: constants.UnknownDaysSinceWorkout,
	}
	if settings.TimeAvailableMin > 0 {
		sc.TimeAvailable = models.Int(settings.TimeAvailableMin)
	}

	rec, err := s.store.GetCheckin(settings.UserID, today)
	switch {
	case err == nil:
		sc.Checkin = &rec
	case !errors.Is(err, storage.ErrNotFound):
		return models.SmartyContext{}, fmt.Errorf("loading check-in: %w", err)
	}

	completed, err := s.store.GetActivities(settings.UserID, models.ActivityCompleted, 0)
	if err != nil {
		return models.SmartyContext{}, fmt.Errorf("loading completed activities: %w", err)
	}
	for i, a := range completed {
		sc.CompletedIDs[a.ContentID] = true
		if i < constants.RecentCategoryLimit && a.Category != "" {
			sc.RecentCategories = append(sc.RecentCategories, a.Category)
		}
	}
	if len(completed) > 0 {
		days, err := utils.DaysBetween(completed[0].Date, today)
		if err != nil {
			return models.SmartyContext{}, err
		}
		sc.DaysSinceLastWorkout = max(days, 0)
	}

	scheduled, err := s.store.GetActivities(settings.UserID, models.ActivityScheduled, 0)
	if err != nil {
		return models.SmartyContext{}, fmt.Errorf("loading scheduled activities: %w", err)
	}
	for _, a := range scheduled {
		if a.Date != today {
			continue
		}
		if item, ok := s.lookup(a); ok {
			sc.ScheduledToday = append(sc.ScheduledToday, item)
		}
	}

	ongoing, err := s.store.GetActivities(settings.UserID, models.ActivityOngoing, 0)
	if err != nil {
		return models.SmartyContext{}, fmt.Errorf("loading ongoing programs: %w", err)
	}
	for _, a := range ongoing {
		if item, ok := s.lookup(a); ok {
			sc.OngoingPrograms = append(sc.OngoingPrograms, item)
		}
	}

	return sc, nil
}

// lookup resolves an activity's content item; items removed from the
// catalog are skipped.
func (s *Service) lookup(a models.Activity) (models.ContentItem, bool) {
	item, err := s.store.GetContentItem(a.ContentID)
	if err != nil {
		s.log.Warn("activity references unknown content", "activity", a.ID, "content", a.ContentID, "error", err)
		return models.ContentItem{}, false
	}
	return item, true
}

// Recommend builds today's context and runs the engine over the stored catalog.
func (s *Service) Recommend(ctx context.Context, answers models.QuestionAnswers) (Result, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return Result{}, fmt.Errorf("loading settings: %w", err)
	}
	today, err := s.today(settings)
	if err != nil {
		return Result{}, err
	}
	sc, err := s.BuildContext(ctx, today)
	if err != nil {
		return Result{}, err
	}
	catalog, err := s.store.GetAllContentItems()
	if err != nil {
		return Result{}, fmt.Errorf("loading catalog: %w", err)
	}

	res, err := RecommendFor(sc, answers, catalog)
	if err != nil {
		s.log.Warn("no recommendation", "catalog", len(catalog), "error", err)
		return Result{}, err
	}
	s.log.Info("recommendation", "item", res.Suggestion.Item.ID, "score", res.Suggestion.Score, "relaxed", res.Relaxed)
	return res, nil
}

// LogActivity records that contentID was completed, scheduled or started
// on date (today when empty).
func (s *Service) LogActivity(ctx context.Context, contentID string, kind models.ActivityKind, date string) (models.Activity, error) {
	if err := ctx.Err(); err != nil {
		return models.Activity{}, err
	}
	switch kind {
	case models.ActivityCompleted, models.ActivityScheduled, models.ActivityOngoing:
	default:
		return models.Activity{}, fmt.Errorf("unknown activity kind %q", kind)
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		return models.Activity{}, fmt.Errorf("loading settings: %w", err)
	}
	if date == "" {
		if date, err = s.today(settings); err != nil {
			return models.Activity{}, err
		}
	} else if err := validation.ValidateDate(date).Err(); err != nil {
		return models.Activity{}, err
	}

	item, err := s.store.GetContentItem(contentID)
	if err != nil {
		return models.Activity{}, err
	}
	if kind == models.ActivityOngoing && item.Type != models.ContentProgram {
		return models.Activity{}, fmt.Errorf("%s is a %s, only programs can be enrolled", item.ID, item.Type)
	}

	a := models.Activity{
		ID:        uuid.NewString(),
		UserID:    settings.UserID,
		ContentID: item.ID,
		Category:  item.Category,
		Kind:      kind,
		Date:      date,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.AddActivity(a); err != nil {
		return models.Activity{}, fmt.Errorf("saving activity: %w", err)
	}
	return a, nil
}

// Activities lists the user's activities of one kind, newest first. A
// limit of 0 returns all of them.
func (s *Service) Activities(ctx context.Context, kind models.ActivityKind, limit int) ([]models.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return s.store.GetActivities(settings.UserID, kind, limit)
}
