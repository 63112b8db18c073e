package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func scanCheckin(row rowScanner) (models.CheckinRecord, error) {
	var rec models.CheckinRecord
	var (
		sleepHours, hydration                                   sql.NullFloat64
		quality, readiness, soreness, mood                      sql.NullInt64
		stepsValue, stepsBucket, protein, strain                sql.NullInt64
		sleepScore, readinessNorm, sorenessScore, moodScore     sql.NullInt64
		movementScore, hydrationScore, proteinNorm, strainScore sql.NullInt64
		daily                                                   sql.NullInt64
		category                                                sql.NullString
		status, createdAt, updatedAt                            string
	)

	err := row.Scan(&rec.ID, &rec.UserID, &rec.Date,
		&rec.MorningCompleted, &sleepHours, &quality, &readiness, &soreness, &mood,
		&rec.NightCompleted, &stepsValue, &stepsBucket, &hydration, &protein, &strain,
		&sleepScore, &readinessNorm, &sorenessScore, &moodScore, &movementScore,
		&hydrationScore, &proteinNorm, &strainScore,
		&daily, &category, &status, &createdAt, &updatedAt)
	if err != nil {
		return models.CheckinRecord{}, err
	}

	rec.SleepHours = nullFloat(sleepHours)
	rec.SleepQuality = nullInt(quality)
	rec.ReadinessScore = nullInt(readiness)
	rec.SorenessRating = nullInt(soreness)
	rec.MoodRating = nullInt(mood)
	rec.StepsValue = nullInt(stepsValue)
	rec.StepsBucket = nullInt(stepsBucket)
	rec.HydrationLiters = nullFloat(hydration)
	rec.ProteinLevel = nullInt(protein)
	rec.DayStrain = nullInt(strain)
	rec.SleepScore = nullInt(sleepScore)
	rec.ReadinessScoreNorm = nullInt(readinessNorm)
	rec.SorenessScore = nullInt(sorenessScore)
	rec.MoodScore = nullInt(moodScore)
	rec.MovementScore = nullInt(movementScore)
	rec.HydrationScore = nullInt(hydrationScore)
	rec.ProteinScoreNorm = nullInt(proteinNorm)
	rec.DayStrainScore = nullInt(strainScore)
	rec.DailySmartyScore = nullInt(daily)
	if category.Valid {
		c := models.ScoreCategory(category.String)
		rec.ScoreCategory = &c
	}
	rec.Status = models.CheckinStatus(status)

	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return models.CheckinRecord{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return models.CheckinRecord{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return rec, nil
}

func (s *Store) GetCheckin(userID, date string) (models.CheckinRecord, error) {
	row := s.db.QueryRow("SELECT "+checkinColumns+" FROM checkins WHERE user_id = ? AND date = ?", userID, date)
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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET
			morning_completed = excluded.morning_completed,
			sleep_hours = excluded.sleep_hours,
			sleep_quality = excluded.sleep_quality,
			readiness_score = excluded.readiness_score,
			soreness_rating = excluded.soreness_rating,
			mood_rating = excluded.mood_rating,
			night_completed = excluded.night_completed,
			steps_value = excluded.steps_value,
			steps_bucket = excluded.steps_bucket,
			hydration_liters = excluded.hydration_liters,
			protein_level = excluded.protein_level,
			day_strain = excluded.day_strain,
			sleep_score = excluded.sleep_score,
			readiness_score_norm = excluded.readiness_score_norm,
			soreness_score = excluded.soreness_score,
			mood_score = excluded.mood_score,
			movement_score = excluded.movement_score,
			hydration_score = excluded.hydration_score,
			protein_score_norm = excluded.protein_score_norm,
			day_strain_score = excluded.day_strain_score,
			daily_smarty_score = excluded.daily_smarty_score,
			score_category = excluded.score_category,
			status = excluded.status,
			updated_at = excluded.updated_at`,
		rec.ID, rec.UserID, rec.Date,
		rec.MorningCompleted, rec.SleepHours, rec.SleepQuality, rec.ReadinessScore, rec.SorenessRating, rec.MoodRating,
		rec.NightCompleted, rec.StepsValue, rec.StepsBucket, rec.HydrationLiters, rec.ProteinLevel, rec.DayStrain,
		rec.SleepScore, rec.ReadinessScoreNorm, rec.SorenessScore, rec.MoodScore, rec.MovementScore,
		rec.HydrationScore, rec.ProteinScoreNorm, rec.DayStrainScore,
		rec.DailySmartyScore, category, string(rec.Status),
		rec.CreatedAt.UTC().Format(time.RFC3339Nano), rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *Store) GetRecentCheckins(userID string, limit int) ([]models.CheckinRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query("SELECT "+checkinColumns+" FROM checkins WHERE user_id = ? ORDER BY date DESC LIMIT ?", userID, limit)
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
