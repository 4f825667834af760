package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/colorandlearn/color-and-learn/internal/model"
)

// Lookup fallbacks for unknown page identifiers
const (
	DefaultCategory   = "animals"
	DefaultPageTitle  = "Coloring Page"
	DefaultTotalAreas = 10
)

// FileName is the catalog file looked up inside an override directory
const FileName = "catalog.yaml"

//go:embed catalog.yaml
var embeddedCatalog []byte

// ErrInvalidCatalog is returned when catalog data fails validation
var ErrInvalidCatalog = errors.New("invalid catalog")

// document mirrors the YAML layout
type document struct {
	Categories       []*model.Category         `yaml:"categories"`
	PageEmoji        map[string]string         `yaml:"page_emoji"`
	Stats            model.ProgressStats       `yaml:"stats"`
	Achievements     []*model.Achievement      `yaml:"achievements"`
	CategoryProgress []*model.CategoryProgress `yaml:"category_progress"`
	RecentRewards    []*model.Reward           `yaml:"recent_rewards"`
}

// Catalog is the in-memory catalog with indexed lookups
type Catalog struct {
	mu    sync.RWMutex
	doc   *document
	pages map[string]*model.ColoringPage
	cats  map[string]*model.Category
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// MustDefault is like Default but panics on error. The embedded data is
// covered by tests so this only fails on a broken build.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates catalog YAML
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{}
	if err := c.install(&doc); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a catalog from a YAML file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// LoadDir replaces the catalog contents with dir/catalog.yaml. On any error
// the current contents are kept and the error is returned.
func (c *Catalog) LoadDir(dir string) error {
	path := filepath.Join(dir, FileName)
	log.Printf("Loading catalog override from %s", path)

	next, err := LoadFile(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.doc, c.pages, c.cats = next.doc, next.pages, next.cats
	c.mu.Unlock()

	log.Printf("Catalog override loaded: %d categories, %d pages", len(next.doc.Categories), len(next.pages))
	return nil
}

// install validates doc and swaps it in
func (c *Catalog) install(doc *document) error {
	if len(doc.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidCatalog)
	}

	pages := make(map[string]*model.ColoringPage)
	cats := make(map[string]*model.Category, len(doc.Categories))

	for _, cat := range doc.Categories {
		if cat == nil || cat.ID == "" {
			return fmt.Errorf("%w: category without id", ErrInvalidCatalog)
		}
		if _, dup := cats[cat.ID]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, cat.ID)
		}
		cats[cat.ID] = cat

		for _, page := range cat.Pages {
			if page == nil || page.ID == "" {
				return fmt.Errorf("%w: page without id in category %q", ErrInvalidCatalog, cat.ID)
			}
			if _, dup := pages[page.ID]; dup {
				return fmt.Errorf("%w: duplicate page %q", ErrInvalidCatalog, page.ID)
			}
			if page.NumberedAreas <= 0 {
				return fmt.Errorf("%w: page %q has no numbered areas", ErrInvalidCatalog, page.ID)
			}
			if !page.Difficulty.IsValid() {
				return fmt.Errorf("%w: page %q has difficulty %q", ErrInvalidCatalog, page.ID, page.Difficulty)
			}
			pages[page.ID] = page
		}
	}

	c.mu.Lock()
	c.doc = doc
	c.pages = pages
	c.cats = cats
	c.mu.Unlock()
	return nil
}

// Categories returns all categories in catalog order
func (c *Catalog) Categories() []*model.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*model.Category, len(c.doc.Categories))
	copy(out, c.doc.Categories)
	return out
}

// Category returns a category by ID
func (c *Catalog) Category(id string) (*model.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cat, ok := c.cats[id]
	return cat, ok
}

// Pages returns the pages of a category. An empty id selects
// DefaultCategory; an unknown id yields no pages.
func (c *Catalog) Pages(categoryID string) []*model.ColoringPage {
	if categoryID == "" {
		categoryID = DefaultCategory
	}

	cat, ok := c.Category(categoryID)
	if !ok {
		return nil
	}

	out := make([]*model.ColoringPage, len(cat.Pages))
	copy(out, cat.Pages)
	return out
}

// Page returns a page by ID
func (c *Catalog) Page(id string) (*model.ColoringPage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	page, ok := c.pages[id]
	return page, ok
}

// PageTitle returns the display title of a page with its emoji, or
// DefaultPageTitle for unknown ids
func (c *Catalog) PageTitle(id string) string {
	page, ok := c.Page(id)
	if !ok {
		return DefaultPageTitle
	}

	c.mu.RLock()
	emoji := c.doc.PageEmoji[id]
	c.mu.RUnlock()

	if emoji == "" {
		return page.Title
	}
	return page.Title + " " + emoji
}

// TotalAreas returns the numbered-area count of a page, or DefaultTotalAreas
// for unknown ids
func (c *Catalog) TotalAreas(id string) int {
	page, ok := c.Page(id)
	if !ok {
		return DefaultTotalAreas
	}
	return page.NumberedAreas
}

// PageOrPlaceholder returns the page for id, or a placeholder page carrying
// the fallback title and area count
func (c *Catalog) PageOrPlaceholder(id string) *model.ColoringPage {
	if page, ok := c.Page(id); ok {
		return page
	}
	return &model.ColoringPage{
		ID:            id,
		Title:         DefaultPageTitle,
		Difficulty:    model.DifficultyEasy,
		NumberedAreas: DefaultTotalAreas,
	}
}

// Stats returns the mock progress statistics
func (c *Catalog) Stats() model.ProgressStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc.Stats
}

// Achievements returns the fixed achievement list
func (c *Catalog) Achievements() []*model.Achievement {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*model.Achievement(nil), c.doc.Achievements...)
}

// CategoryProgress returns the per-category progress rows
func (c *Catalog) CategoryProgress() []*model.CategoryProgress {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*model.CategoryProgress(nil), c.doc.CategoryProgress...)
}

// RecentRewards returns the recent reward list
func (c *Catalog) RecentRewards() []*model.Reward {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*model.Reward(nil), c.doc.RecentRewards...)
}
