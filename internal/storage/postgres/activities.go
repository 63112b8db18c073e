package postgres

import (
	"fmt"

	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/storage"
)

func (s *Store) AddActivity(a models.Activity) error {
	_, err := s.db.Exec(`
		INSERT INTO activities (id, user_id, content_id, category, kind, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.UserID, a.ContentID, a.Category, string(a.Kind), a.Date, a.CreatedAt)
	return err
}

func (s *Store) GetActivities(userID string, kind models.ActivityKind, limit int) ([]models.Activity, error) {
	query := `
		SELECT id, user_id, content_id, category, kind, date, created_at
		FROM activities WHERE user_id = $1 AND kind = $2
		ORDER BY date DESC, created_at DESC`
	args := []any{userID, string(kind)}
	if limit > 0 {
		query += " LIMIT $3"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		var activityKind string
		if err := rows.Scan(&a.ID, &a.UserID, &a.ContentID, &a.Category, &activityKind, &a.Date, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Kind = models.ActivityKind(activityKind)
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (s *Store) DeleteActivity(id string) error {
	res, err := s.db.Exec("DELETE FROM activities WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("activity %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
