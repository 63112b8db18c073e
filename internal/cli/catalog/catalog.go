package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/julianstephens/smartygym/internal/catalog"
	"github.com/julianstephens/smartygym/internal/cli"
	"github.com/julianstephens/smartygym/internal/logger"
	"github.com/julianstephens/smartygym/internal/models"
	"github.com/julianstephens/smartygym/internal/storage"
)

type CatalogCmd struct {
	Import CatalogImportCmd `cmd:"" help:"Import workouts and programs from a YAML file."`
	List   CatalogListCmd   `cmd:"" help:"List catalog items." default:"1"`
	Show   CatalogShowCmd   `cmd:"" help:"Show one catalog item in detail."`
}

type CatalogImportCmd struct {
	File string `arg:"" optional:"" type:"existingfile" help:"YAML catalog file. Defaults to the built-in catalog."`
}

func (c *CatalogImportCmd) Run(ctx *cli.Context) error {
	var (
		items []models.ContentItem
		err   error
	)
	if c.File == "" {
		items, err = catalog.Default()
	} else {
		items, err = catalog.LoadFile(c.File)
	}
	if err != nil {
		return err
	}

	n, err := catalog.Import(ctx.Store, items)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Imported %d catalog items\n", n)
	return nil
}

type CatalogListCmd struct {
	Type     string `help:"Only show workout or program items." enum:",workout,program" default:""`
	Category string `help:"Only show items whose category contains this text."`
}

func (c *CatalogListCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Store.GetAllContentItems()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	filtered := items[:0]
	for _, it := range items {
		if c.Type != "" && string(it.Type) != c.Type {
			continue
		}
		if c.Category != "" && !strings.Contains(strings.ToLower(it.Category), strings.ToLower(c.Category)) {
			continue
		}
		filtered = append(filtered, it)
	}
	if len(filtered) == 0 {
		fmt.Println("No catalog items found.")
		return nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Type != filtered[j].Type {
			return filtered[i].Type > filtered[j].Type
		}
		return filtered[i].ID < filtered[j].ID
	})
	fmt.Printf("%-26s %-8s %-24s %-8s %s\n", "ID", "TYPE", "CATEGORY", "TIME", "NAME")
	for _, it := range filtered {
		duration := it.Duration
		if duration == "" {
			duration = "-"
		}
		fmt.Printf("%-26s %-8s %-24s %-8s %s\n", it.ID, it.Type, it.Category, duration, it.Name)
	}
	return nil
}

type CatalogShowCmd struct {
	ID    string `arg:"" help:"Catalog item id."`
	Plain bool   `help:"Print raw markdown instead of styled output."`
}

func (c *CatalogShowCmd) Run(ctx *cli.Context) error {
	item, err := ctx.Store.GetContentItem(c.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no catalog item with id %q", c.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog item: %w", err)
	}

	md := catalog.Markdown(item)
	if c.Plain {
		fmt.Print(md)
		return nil
	}
	fmt.Print(render(md))
	return nil
}

func render(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		logger.Debug("Markdown renderer unavailable", "error", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Debug("Markdown render failed", "error", err)
		return md
	}
	return out
}
