// Package scrape collects legislation documents from source pages.
// It coordinates page fetching, PDF link discovery, text extraction,
// change classification, and history snapshots, and assembles the
// results into catalog snapshots.
package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Maikl76/legislativa"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// Scraper turns one source page into documents, recording each document's
// change status and snapshot as it goes.
type Scraper struct {
	Fetcher     legislativa.Fetcher
	Links       legislativa.LinkFinder
	Extractor   legislativa.PDFExtractor
	History     legislativa.HistoryStore

	// Concurrency bounds how many PDFs are downloaded at once.
	// Values below 1 mean one at a time.
	Concurrency int

	Logger *slog.Logger
}

// ScrapeSource fetches sourceURL, extracts every linked PDF and returns one
// document per link in discovery order. For each link the previous
// snapshot is classified against the new text, the new text is saved, and
// status[name] is updated.
//
// A page that cannot be fetched or parsed yields no documents and no
// error. PDF failures yield documents with empty content. History storage
// errors are returned, as is the context error if ctx is done: no snapshot
// is written once ctx is canceled.
func (s *Scraper) ScrapeSource(ctx context.Context, sourceURL string, status legislativa.StatusMap) ([]*legislativa.Document, error) {
	logger := s.logger().With("source", sourceURL)

	body, err := s.Fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Warn("source fetch failed", "err", err)
		return []*legislativa.Document{}, nil
	}

	links, err := s.Links.FindPDFLinks(string(body), sourceURL)
	if err != nil {
		logger.Warn("source parse failed", "err", err)
		return []*legislativa.Document{}, nil
	}

	extractions := s.extractAll(ctx, links)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := make([]*legislativa.Document, 0, len(links))
	for i, link := range links {
		ext := extractions[i]
		if ext.Failed() {
			logger.Warn("pdf extraction failed",
				"name", link.Name,
				"url", link.URL,
				"code", legislativa.ErrorCode(ext.Err),
				"err", ext.Err,
			)
		}

		oldText, err := s.History.Load(ctx, link.Name)
		if err != nil {
			return nil, fmt.Errorf("load history for %q: %w", link.Name, err)
		}
		st := legislativa.Classify(oldText, ext.Text)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.History.Save(ctx, link.Name, ext.Text); err != nil {
			return nil, fmt.Errorf("save history for %q: %w", link.Name, err)
		}
		status[link.Name] = st

		docs = append(docs, NewDocument(sourceURL, link, ext.Text))
	}

	logger.Info("source scraped", "documents", len(docs))
	return docs, nil
}

// extractAll downloads and parses every link, returning results indexed
// like links regardless of completion order.
func (s *Scraper) extractAll(ctx context.Context, links []legislativa.PDFLink) []legislativa.Extraction {
	results := make([]legislativa.Extraction, len(links))

	concurrency := s.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, link := range links {
		g.Go(func() error {
			results[i] = s.Extractor.Extract(ctx, link.URL)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewDocument builds the catalog record for one scraped link.
func NewDocument(sourceURL string, link legislativa.PDFLink, text string) *legislativa.Document {
	return &legislativa.Document{
		Name:          link.Name,
		Category:      legislativa.CategoryLegislation,
		EffectiveDate: legislativa.EffectiveDateUnknown,
		SourceURL:     sourceURL,
		FileURL:       link.URL,
		Keywords:      legislativa.KeywordsRegulations,
		Content:       text,
		ContentHash:   HashContent(text),
	}
}

// HashContent returns the xxHash of content as a 16-digit hex string.
func HashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
