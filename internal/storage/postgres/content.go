package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/storage"
)

const contentColumns = "id, name, type, category, difficulty, duration, equipment, format, description"

func scanContentItem(row rowScanner) (models.ContentItem, error) {
	var item models.ContentItem
	var contentType string
	var difficulty sql.NullString
	if err := row.Scan(&item.ID, &item.Name, &contentType, &item.Category, &difficulty,
		&item.Duration, &item.Equipment, &item.Format, &item.Description); err != nil {
		return models.ContentItem{}, err
	}
	item.Type = models.ContentType(contentType)
	if difficulty.Valid {
		d := models.Difficulty(difficulty.String)
		item.Difficulty = &d
	}
	return item, nil
}

func (s *Store) SaveContentItem(item models.ContentItem) error {
	var difficulty *string
	if item.Difficulty != nil {
		d := string(*item.Difficulty)
		difficulty = &d
	}
	_, err := s.db.Exec(`
		INSERT INTO content_items (`+contentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			category = EXCLUDED.category,
			difficulty = EXCLUDED.difficulty,
			duration = EXCLUDED.duration,
			equipment = EXCLUDED.equipment,
			format = EXCLUDED.format,
			description = EXCLUDED.description`,
		item.ID, item.Name, string(item.Type), item.Category, difficulty,
		item.Duration, item.Equipment, item.Format, item.Description)
	return err
}

func (s *Store) GetContentItem(id string) (models.ContentItem, error) {
	item, err := scanContentItem(s.db.QueryRow("SELECT "+contentColumns+" FROM content_items WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ContentItem{}, fmt.Errorf("content item %s: %w", id, storage.ErrNotFound)
	}
	return item, err
}

func (s *Store) GetAllContentItems() ([]models.ContentItem, error) {
	rows, err := s.db.Query("SELECT " + contentColumns + " FROM content_items ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
