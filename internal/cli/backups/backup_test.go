package backups

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/smartygym/internal/backup"
	"github.com/julianstephens/smartygym/internal/cli"
	"github.com/julianstephens/smartygym/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	clock := func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
	return &cli.Context{Store: store, Now: clock}, store
}

func TestBackupCreateListRestore(t *testing.T) {
	ctx, store := setupTestDB(t)

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list on empty dir failed: %v", err)
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	backups, err := backup.NewManager(store.GetConfigPath()).List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}

	if err := (&BackupRestoreCmd{BackupFile: backups[0].Name, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	// Restore adds the pre-restore copy.
	after, err := backup.NewManager(store.GetConfigPath()).List()
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != 2 {
		t.Errorf("expected 2 backups after restore, got %d", len(after))
	}

	// The closed store reopens on demand.
	if err := store.Load(); err != nil {
		t.Fatalf("reload after restore failed: %v", err)
	}
	if _, err := store.GetSettings(); err != nil {
		t.Errorf("settings unreadable after restore: %v", err)
	}
}

func TestBackupRestoreMissingFile(t *testing.T) {
	ctx, _ := setupTestDB(t)
	if err := (&BackupRestoreCmd{BackupFile: "smarty-20000101-000000.db", Yes: true}).Run(ctx); err == nil {
		t.Error("expected error for missing backup")
	}
}
