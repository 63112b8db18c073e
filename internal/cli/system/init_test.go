package system

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/smartygym/internal/cli"
	"github.com/julianstephens/smartygym/internal/storage/sqlite"
)

func TestInitCmd(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "smarty.db"))
	t.Cleanup(func() { store.Close() })
	ctx := &cli.Context{Store: store}

	if err := (&InitCmd{Timezone: "Europe/Nicosia"}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.Timezone != "Europe/Nicosia" {
		t.Errorf("timezone = %q, want Europe/Nicosia", settings.Timezone)
	}
	items, err := store.GetAllContentItems()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) == 0 {
		t.Error("expected built-in catalog to be imported")
	}

	// Re-running init keeps the user and does not duplicate the catalog.
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("second init failed: %v", err)
	}
	again, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if again.UserID != settings.UserID {
		t.Errorf("user id changed from %s to %s", settings.UserID, again.UserID)
	}
	after, _ := store.GetAllContentItems()
	if len(after) != len(items) {
		t.Errorf("catalog size changed from %d to %d", len(items), len(after))
	}
}

func TestInitCmdNoCatalog(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "smarty.db"))
	t.Cleanup(func() { store.Close() })

	if err := (&InitCmd{NoCatalog: true}).Run(&cli.Context{Store: store}); err != nil {
		t.Fatal(err)
	}
	items, err := store.GetAllContentItems()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty catalog, got %d items", len(items))
	}
}

func TestInitCmdInvalidTimezone(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "smarty.db"))
	if err := (&InitCmd{Timezone: "Mars/Olympus"}).Run(&cli.Context{Store: store}); err == nil {
		t.Error("expected invalid timezone to be rejected")
	}
}

func TestMigrateCmd(t *testing.T) {
	ctx, _ := setupTestDB(t)
	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Errorf("migrate on up-to-date database failed: %v", err)
	}
	if err := (&MigrateCmd{Status: true}).Run(ctx); err != nil {
		t.Errorf("migrate --status failed: %v", err)
	}
}
