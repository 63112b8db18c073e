package storage

import "github.com/julianstephens/smartygym/internal/migration"

// Migrator is implemented by SQL-backed providers that can report and
// advance their schema version.
type Migrator interface {
	MigrationStatus() (migration.Status, error)
	Migrate(logFn func(string)) (int, error)
}
