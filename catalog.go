package legislativa

import (
	"context"
	"strings"
	"time"
)

// Catalog is an immutable snapshot of every document scraped in one load
// cycle. A reload builds a new Catalog instead of modifying the current one.
type Catalog struct {
	ID        string      `json:"id"`
	LoadedAt  time.Time   `json:"loadedAt"`
	Sources   []string    `json:"sources"`
	Documents []*Document `json:"documents"`
	Status    StatusMap   `json:"status"`
}

// Recent returns the last n documents in catalog order.
func (c *Catalog) Recent(n int) []*Document {
	if c == nil || n <= 0 {
		return nil
	}
	if n > len(c.Documents) {
		n = len(c.Documents)
	}
	return c.Documents[len(c.Documents)-n:]
}

// RecentContent joins the content of the last n documents with a single space.
func (c *Catalog) RecentContent(n int) string {
	docs := c.Recent(n)
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, doc.Content)
	}
	return strings.Join(parts, " ")
}

// CatalogService provides read access to the current catalog and the
// ability to rebuild it.
type CatalogService interface {
	// Catalog returns the current snapshot. It never returns nil.
	Catalog() *Catalog

	// Reload scrapes every source and publishes a new snapshot.
	// The previous snapshot stays current if the reload fails.
	Reload(ctx context.Context) (*Catalog, error)
}
