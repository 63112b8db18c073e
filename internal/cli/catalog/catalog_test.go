package catalog

import (
	"os"
	"path/filepath"
	"testing"

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
	return &cli.Context{Store: store}, store
}

func TestCatalogImportDefault(t *testing.T) {
	ctx, store := setupTestDB(t)
	if err := (&CatalogImportCmd{}).Run(ctx); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	items, err := store.GetAllContentItems()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) == 0 {
		t.Fatal("expected built-in items to be imported")
	}
	if err := (&CatalogListCmd{Type: "program"}).Run(ctx); err != nil {
		t.Errorf("list failed: %v", err)
	}
	if err := (&CatalogListCmd{Category: "nothing-matches"}).Run(ctx); err != nil {
		t.Errorf("list with no matches failed: %v", err)
	}
}

func TestCatalogImportFile(t *testing.T) {
	ctx, store := setupTestDB(t)
	path := filepath.Join(t.TempDir(), "extra.yaml")
	content := `items:
  - id: yoga-flow
    name: Morning Flow
    type: workout
    category: YOGA
    difficulty: Beginner
    duration: 20 min
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if err := (&CatalogImportCmd{File: path}).Run(ctx); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	item, err := store.GetContentItem("yoga-flow")
	if err != nil {
		t.Fatal(err)
	}
	if item.Name != "Morning Flow" || item.Duration != "20 min" {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestCatalogImportInvalidFile(t *testing.T) {
	ctx, store := setupTestDB(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("items:\n  - id: x\n    type: podcast\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := (&CatalogImportCmd{File: path}).Run(ctx); err == nil {
		t.Fatal("expected invalid catalog to be rejected")
	}
	items, _ := store.GetAllContentItems()
	if len(items) != 0 {
		t.Errorf("expected nothing imported, got %d items", len(items))
	}
}

func TestCatalogShow(t *testing.T) {
	ctx, _ := setupTestDB(t)
	if err := (&CatalogImportCmd{}).Run(ctx); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if err := (&CatalogShowCmd{ID: "wod-hiit-burner"}).Run(ctx); err != nil {
		t.Errorf("show failed: %v", err)
	}
	if err := (&CatalogShowCmd{ID: "wod-hiit-burner", Plain: true}).Run(ctx); err != nil {
		t.Errorf("plain show failed: %v", err)
	}
	if err := (&CatalogShowCmd{ID: "no-such-item"}).Run(ctx); err == nil {
		t.Error("expected error for unknown id")
	}
}
