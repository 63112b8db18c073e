package storage

import (
	"errors"

	"github.com/julianstephens/smartygym/internal/models"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Check-ins
	GetCheckin(userID, date string) (models.CheckinRecord, error)
	// SaveCheckin inserts or replaces the record for (UserID, Date).
	SaveCheckin(models.CheckinRecord) error
	// GetRecentCheckins returns up to limit records, newest date first.
	GetRecentCheckins(userID string, limit int) ([]models.CheckinRecord, error)

	// Badges
	GetBadges(userID string) ([]models.Badge, error)
	// AwardBadge inserts the badge unless the user already holds the same
	// (type, level). It reports whether a row was written.
	AwardBadge(models.Badge) (bool, error)

	// Content catalog
	SaveContentItem(models.ContentItem) error
	GetContentItem(id string) (models.ContentItem, error)
	GetAllContentItems() ([]models.ContentItem, error)

	// Activities
	AddActivity(models.Activity) error
	// GetActivities returns the user's activities of one kind, newest date
	// first. A limit of 0 returns all of them.
	GetActivities(userID string, kind models.ActivityKind, limit int) ([]models.Activity, error)
	DeleteActivity(id string) error

	// Utils
	GetConfigPath() string
}
