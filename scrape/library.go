package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Maikl76/legislativa"
	"github.com/google/uuid"
)

var _ legislativa.CatalogService = (*Library)(nil)

// SourceResult reports the outcome of scraping one source during a reload.
type SourceResult struct {
	URL       string
	Documents int
	Duration  time.Duration
}

// Library owns the published catalog and rebuilds it from the source list.
type Library struct {
	Sources legislativa.SourceLoader
	Scraper *Scraper
	Logger  *slog.Logger

	// Progress, if set, is called after each source is scraped.
	Progress func(SourceResult)

	// Now returns the load time stamped on each catalog. Defaults to time.Now.
	Now func() time.Time

	reload  sync.Mutex
	current atomic.Pointer[legislativa.Catalog]
}

// NewLibrary creates a Library with an empty catalog published.
func NewLibrary(sources legislativa.SourceLoader, scraper *Scraper) *Library {
	return &Library{
		Sources: sources,
		Scraper: scraper,
	}
}

// Catalog returns the current snapshot. Before the first successful reload
// it returns an empty catalog.
func (l *Library) Catalog() *legislativa.Catalog {
	if c := l.current.Load(); c != nil {
		return c
	}
	return &legislativa.Catalog{
		Sources:   []string{},
		Documents: []*legislativa.Document{},
		Status:    legislativa.StatusMap{},
	}
}

// Reload scrapes every source in list order and publishes the result as a
// new catalog. Concurrent calls run one after another. On error the
// previously published catalog is left in place.
func (l *Library) Reload(ctx context.Context) (*legislativa.Catalog, error) {
	l.reload.Lock()
	defer l.reload.Unlock()

	sources, err := l.Sources.LoadSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}

	catalog := &legislativa.Catalog{
		ID:        uuid.NewString(),
		LoadedAt:  l.now().UTC(),
		Sources:   sources,
		Documents: []*legislativa.Document{},
		Status:    legislativa.StatusMap{},
	}

	for _, source := range sources {
		begin := time.Now()
		docs, err := l.Scraper.ScrapeSource(ctx, source, catalog.Status)
		if err != nil {
			return nil, fmt.Errorf("scrape %s: %w", source, err)
		}
		catalog.Documents = append(catalog.Documents, docs...)

		if l.Progress != nil {
			l.Progress(SourceResult{URL: source, Documents: len(docs), Duration: time.Since(begin)})
		}
	}

	l.current.Store(catalog)
	if l.Logger != nil {
		l.Logger.Info("catalog loaded",
			"id", catalog.ID,
			"sources", len(catalog.Sources),
			"documents", len(catalog.Documents),
		)
	}
	return catalog, nil
}

func (l *Library) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}
