package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/smartygym/internal/models"
)

func (s *Store) GetBadges(userID string) ([]models.Badge, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, badge_type, badge_level, earned_at, badge_data
		FROM badges WHERE user_id = ? ORDER BY earned_at, badge_type`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badges []models.Badge
	for rows.Next() {
		var b models.Badge
		var badgeType, level, earnedAt, data string
		if err := rows.Scan(&b.ID, &b.UserID, &badgeType, &level, &earnedAt, &data); err != nil {
			return nil, err
		}
		b.Type = models.BadgeType(badgeType)
		b.Level = models.BadgeLevel(level)
		if b.EarnedAt, err = time.Parse(time.RFC3339Nano, earnedAt); err != nil {
			return nil, fmt.Errorf("parsing earned_at for badge %s: %w", b.ID, err)
		}
		if data != "" {
			if err := json.Unmarshal([]byte(data), &b.Data); err != nil {
				return nil, fmt.Errorf("decoding badge_data for badge %s: %w", b.ID, err)
			}
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

// AwardBadge relies on the (user_id, badge_type, badge_level) unique index,
// so concurrent evaluations cannot store the same badge twice.
func (s *Store) AwardBadge(b models.Badge) (bool, error) {
	data := []byte("{}")
	if len(b.Data) > 0 {
		var err error
		if data, err = json.Marshal(b.Data); err != nil {
			return false, fmt.Errorf("encoding badge_data: %w", err)
		}
	}

	res, err := s.db.Exec(`
		INSERT INTO badges (id, user_id, badge_type, badge_level, earned_at, badge_data)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, badge_type, badge_level) DO NOTHING`,
		b.ID, b.UserID, string(b.Type), string(b.Level), b.EarnedAt.UTC().Format(time.RFC3339Nano), string(data))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
