// Package catalog reads workout and program definitions from YAML files.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/storage"
)

//go:embed default.yaml
var defaultCatalog []byte

// Catalog files may come from anywhere, so markup is stripped from text
// fields before they reach the store or the terminal.
var sanitizer = bluemonday.StrictPolicy()

// File is the on-disk layout of a catalog.
type File struct {
	Items []models.ContentItem `yaml:"items"`
}

// Default returns the catalog bundled with the binary.
func Default() ([]models.ContentItem, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// LoadFile reads and validates a catalog file.
func LoadFile(path string) ([]models.ContentItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a catalog, rejecting unknown keys and invalid entries.
func Load(r io.Reader) ([]models.ContentItem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	for i := range file.Items {
		sanitizeItem(&file.Items[i])
	}
	if err := Validate(file.Items); err != nil {
		return nil, err
	}
	return file.Items, nil
}

// Sanitize removes HTML from s, leaving plain text with entities decoded.
func Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(s)))
}

func sanitizeItem(item *models.ContentItem) {
	item.Name = Sanitize(item.Name)
	item.Category = Sanitize(item.Category)
	item.Duration = Sanitize(item.Duration)
	item.Equipment = Sanitize(item.Equipment)
	item.Format = Sanitize(item.Format)
	item.Description = Sanitize(item.Description)
}

// Markdown renders an item as a short markdown card.
func Markdown(item models.ContentItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", item.Name)
	fmt.Fprintf(&b, "- **Type:** %s\n", item.Type)
	fmt.Fprintf(&b, "- **Category:** %s\n", item.Category)
	if item.Difficulty != nil {
		fmt.Fprintf(&b, "- **Difficulty:** %s\n", *item.Difficulty)
	}
	if item.Duration != "" {
		fmt.Fprintf(&b, "- **Duration:** %s\n", item.Duration)
	}
	if item.Equipment != "" {
		fmt.Fprintf(&b, "- **Equipment:** %s\n", item.Equipment)
	}
	if item.Format != "" {
		fmt.Fprintf(&b, "- **Format:** %s\n", item.Format)
	}
	if item.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", item.Description)
	}
	return b.String()
}

// Validate checks required fields, enum values and id uniqueness.
func Validate(items []models.ContentItem) error {
	var problems []string
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		where := fmt.Sprintf("item %d", i+1)
		if item.ID != "" {
			where = fmt.Sprintf("item %q", item.ID)
		}

		switch {
		case strings.TrimSpace(item.ID) == "":
			problems = append(problems, where+": id is required")
		case seen[item.ID]:
			problems = append(problems, where+": duplicate id")
		}
		seen[item.ID] = true

		if strings.TrimSpace(item.Name) == "" {
			problems = append(problems, where+": name is required")
		}
		if strings.TrimSpace(item.Category) == "" {
			problems = append(problems, where+": category is required")
		}
		if item.Type != models.ContentWorkout && item.Type != models.ContentProgram {
			problems = append(problems, fmt.Sprintf("%s: type must be %q or %q", where, models.ContentWorkout, models.ContentProgram))
		}
		if d := item.Difficulty; d != nil {
			switch *d {
			case models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced:
			default:
				problems = append(problems, fmt.Sprintf("%s: unknown difficulty %q", where, *d))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid catalog:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

// Import upserts items into the store and returns how many were written.
func Import(store storage.Provider, items []models.ContentItem) (int, error) {
	for i, item := range items {
		if err := store.SaveContentItem(item); err != nil {
			return i, fmt.Errorf("saving %s: %w", item.ID, err)
		}
	}
	return len(items), nil
}
