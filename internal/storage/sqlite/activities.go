package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/storage"
)

func (s *Store) AddActivity(a models.Activity) error {
	_, err := s.db.Exec(`
		INSERT INTO activities (id, user_id, content_id, category, kind, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.ContentID, a.Category, string(a.Kind), a.Date, a.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

func (s *Store) GetActivities(userID string, kind models.ActivityKind, limit int) ([]models.Activity, error) {
	query := `
		SELECT id, user_id, content_id, category, kind, date, created_at
		FROM activities WHERE user_id = ? AND kind = ?
		ORDER BY date DESC, created_at DESC`
	args := []any{userID, string(kind)}
	if limit > 0 {
		query += " LIMIT ?"
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
		var activityKind, createdAt string
		if err := rows.Scan(&a.ID, &a.UserID, &a.ContentID, &a.Category, &activityKind, &a.Date, &createdAt); err != nil {
			return nil, err
		}
		a.Kind = models.ActivityKind(activityKind)
		if a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at for activity %s: %w", a.ID, err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (s *Store) DeleteActivity(id string) error {
	res, err := s.db.Exec("DELETE FROM activities WHERE id = ?", id)
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
