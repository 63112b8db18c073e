package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/storage"
)

const checkinColumns = `id, user_id, date,
	morning_completed, sleep_hours, sleep_quality, readiness_score, soreness_rating, mood_rating,
	night_completed, steps_value, steps_bucket, hydration_liters, protein_level, day_strain,
	sleep_score, readiness_score_norm, soreness_score, mood_score, movement_score,
	hydration_score, protein_score_norm, day_strain_score,
	daily_smarty_score, score_category, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCheckin(row rowScanner) (models.CheckinRecord, error) {
	var rec models.CheckinRecord
	var category sql.NullString
	var status string

	// database/sql leaves NULL pointer columns nil and allocates otherwise.
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Date,
		&rec.MorningCompleted, &rec.SleepHours, &rec.SleepQuality, &rec.ReadinessScore, &rec.SorenessRating, &rec.MoodRating,
		&rec.NightCompleted, &rec.StepsValue, &rec.StepsBucket, &rec.HydrationLiters, &rec.ProteinLevel, &rec.DayStrain,
		&rec.SleepScore, &rec.ReadinessScoreNorm, &rec.SorenessScore, &rec.MoodScore, &rec.MovementScore,
		&rec.HydrationScore, &rec.ProteinScoreNorm, &rec.DayStrainScore,
		&rec.DailySmartyScore, &category, &status, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return models.CheckinRecord{}, err
	}
	if category.Valid {
		c := models.ScoreCategory(category.String)
		rec.ScoreCategory = &c
	}
	rec.Status = models.CheckinStatus(status)
	return rec, nil
}

func (s *Store) GetCheckin(userID, date string) (models.CheckinRecord, error) {
	row := s.db.QueryRow("SELECT "+checkinColumns+" FROM checkins WHERE user_id = $1 AND date = $2", userID, date)
	rec, err := scanCheckin(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CheckinRecord{}, fmt.Errorf("check-in for %s: %w", date, storage.ErrNotFound)
	}
	return rec, err
}

func (s *Store) SaveCheckin(rec models.CheckinRecord) error {
	var category *string
	if rec.ScoreCategory != nil {
		c := string(*rec.ScoreCategory)
		category = &c
	}

	_, err := s.db.Exec(`
		INSERT INTO checkins (`+checkinColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		ON CONFLICT (user_id, date) DO UPDATE SET
			morning_completed = EXCLUDED.morning_completed,
			sleep_hours = EXCLUDED.sleep_hours,
			sleep_quality = EXCLUDED.sleep_quality,
			readiness_score = EXCLUDED.readiness_score,
			soreness_rating = EXCLUDED.soreness_rating,
			mood_rating = EXCLUDED.mood_rating,
			night_completed = EXCLUDED.night_completed,
			steps_value = EXCLUDED.steps_value,
			steps_bucket = EXCLUDED.steps_bucket,
			hydration_liters = EXCLUDED.hydration_liters,
			protein_level = EXCLUDED.protein_level,
			day_strain = EXCLUDED.day_strain,
			sleep_score = EXCLUDED.sleep_score,
			readiness_score_norm = EXCLUDED.readiness_score_norm,
			soreness_score = EXCLUDED.soreness_score,
			mood_score = EXCLUDED.mood_score,
			movement_score = EXCLUDED.movement_score,
			hydration_score = EXCLUDED.hydration_score,
			protein_score_norm = EXCLUDED.protein_score_norm,
			day_strain_score = EXCLUDED.day_strain_score,
			daily_smarty_score = EXCLUDED.daily_smarty_score,
			score_category = EXCLUDED.score_category,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		rec.ID, rec.UserID, rec.Date,
		rec.MorningCompleted, rec.SleepHours, rec.SleepQuality, rec.ReadinessScore, rec.SorenessRating, rec.MoodRating,
		rec.NightCompleted, rec.StepsValue, rec.StepsBucket, rec.HydrationLiters, rec.ProteinLevel, rec.DayStrain,
		rec.SleepScore, rec.ReadinessScoreNorm, rec.SorenessScore, rec.MoodScore, rec.MovementScore,
		rec.HydrationScore, rec.ProteinScoreNorm, rec.DayStrainScore,
		rec.DailySmartyScore, category, string(rec.Status), rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}

func (s *Store) GetRecentCheckins(userID string, limit int) ([]models.CheckinRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query("SELECT "+checkinColumns+" FROM checkins WHERE user_id = $1 ORDER BY date DESC LIMIT $2", userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.CheckinRecord
	for rows.Next() {
		rec, err := scanCheckin(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
