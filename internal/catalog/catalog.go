package catalog

import (
	"sync"
	"time"

	"github.com/alextreichler/thumbify/internal/models"
)

// CategoryAll is the sentinel selection meaning "no category filter".
const CategoryAll = "all"

// Catalog holds the portfolio items and pricing packs. Packs are fully
// static; portfolio items can be appended by an admin during the life of
// the process. Nothing here survives a restart.
type Catalog struct {
	mu     sync.RWMutex
	items  []models.PortfolioItem
	packs  []models.PricingPack
	lastID int64
}

func New() *Catalog {
	c := &Catalog{
		items: seedItems(),
		packs: seedPacks(),
	}
	for _, it := range c.items {
		if it.ID > c.lastID {
			c.lastID = it.ID
		}
	}
	return c
}

// Items returns all portfolio items in catalog order.
func (c *Catalog) Items() []models.PortfolioItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.PortfolioItem, len(c.items))
	copy(out, c.items)
	return out
}

// Preview returns the first n items in catalog order, for the landing page.
func (c *Catalog) Preview(n int) []models.PortfolioItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if n > len(c.items) {
		n = len(c.items)
	}
	out := make([]models.PortfolioItem, n)
	copy(out, c.items[:n])
	return out
}

// ItemsByCategory returns items whose category equals cat, in catalog
// order. The CategoryAll sentinel returns everything.
func (c *Catalog) ItemsByCategory(cat string) []models.PortfolioItem {
	if cat == CategoryAll || cat == "" {
		return c.Items()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.PortfolioItem
	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns the filter choices: the CategoryAll sentinel first,
// then each distinct category in order of first occurrence.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cats := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, it := range c.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			cats = append(cats, it.Category)
		}
	}
	return cats
}

// AddItem appends a new portfolio item and returns it. The id is derived
// from the current time in milliseconds, with a floor so that items created
// within the same millisecond still get distinct, increasing ids.
func (c *Catalog) AddItem(title, imageURL, category string) models.PortfolioItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id

	item := models.PortfolioItem{
		ID:       id,
		Title:    title,
		ImageURL: imageURL,
		Category: category,
	}
	c.items = append(c.items, item)
	return item
}

// Packs returns every pricing pack in catalog order.
func (c *Catalog) Packs() []models.PricingPack {
	out := make([]models.PricingPack, len(c.packs))
	copy(out, c.packs)
	return out
}

// PackByID looks up a pack by its slug.
func (c *Catalog) PackByID(id string) (models.PricingPack, bool) {
	for _, p := range c.packs {
		if p.ID == id {
			return p, true
		}
	}
	return models.PricingPack{}, false
}
