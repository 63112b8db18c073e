package checkin

import (
	"context"
	"fmt"

	"github.com/julianstephens/smartygym/internal/badges"
	"github.com/julianstephens/smartygym/internal/constants"
	"github.com/julianstephens/smartygym/internal/models"
)

// Summary aggregates the most recent check-ins.
type Summary struct {
	Days       int
	Scored     int
	Average    float64
	Best       *int
	Worst      *int
	Categories map[models.ScoreCategory]int
	Statuses   map[models.CheckinStatus]int
	Streak     int
}

// Streak counts consecutive complete days ending today or yesterday.
func (s *Service) Streak(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	settings, err := s.store.GetSettings()
	if err != nil {
		return 0, fmt.Errorf("loading settings: %w", err)
	}
	return s.streak(settings)
}

func (s *Service) streak(settings models.Settings) (int, error) {
	now, err := s.localNow(settings)
	if err != nil {
		return 0, err
	}
	history, err := s.store.GetRecentCheckins(settings.UserID, constants.MaxHistoryWindow)
	if err != nil {
		return 0, err
	}
	return badges.Streak(history, now), nil
}

// Summary reports on the last `days` stored records. days <= 0 uses the
// history_window setting.
func (s *Service) Summary(ctx context.Context, days int) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	settings, err := s.store.GetSettings()
	if err != nil {
		return Summary{}, fmt.Errorf("loading settings: %w", err)
	}
	if days <= 0 {
		days = settings.HistoryWindow
	}
	history, err := s.store.GetRecentCheckins(settings.UserID, days)
	if err != nil {
		return Summary{}, err
	}
	sum := Summarize(history)
	if sum.Streak, err = s.streak(settings); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// Summarize aggregates records without touching storage.
func Summarize(records []models.CheckinRecord) Summary {
	sum := Summary{
		Days:       len(records),
		Categories: map[models.ScoreCategory]int{},
		Statuses:   map[models.CheckinStatus]int{},
	}

	total := 0
	for _, rec := range records {
		sum.Statuses[rec.Status]++
		if !rec.HasComposite() {
			continue
		}
		score := *rec.DailySmartyScore
		sum.Scored++
		total += score
		sum.Categories[*rec.ScoreCategory]++
		if sum.Best == nil || score > *sum.Best {
			sum.Best = models.Int(score)
		}
		if sum.Worst == nil || score < *sum.Worst {
			sum.Worst = models.Int(score)
		}
	}
	if sum.Scored > 0 {
		sum.Average = float64(total) / float64(sum.Scored)
	}
	return sum
}
