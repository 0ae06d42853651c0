// Package pdf extracts plain text from PDF documents using ledongthuc/pdf.
package pdf

import (
	"bytes"
	"context"
	"strings"

	"github.com/Maikl76/legislativa"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements legislativa.PDFExtractor at compile time.
var _ legislativa.PDFExtractor = (*Extractor)(nil)

// Extractor downloads PDFs and extracts their text.
type Extractor struct {
	fetcher legislativa.Fetcher
}

// NewExtractor creates a new Extractor that downloads through fetcher.
func NewExtractor(fetcher legislativa.Fetcher) *Extractor {
	return &Extractor{fetcher: fetcher}
}

// Extract downloads the PDF at url and returns its text. Fetch and parse
// failures are returned in Extraction.Err with empty Text.
func (e *Extractor) Extract(ctx context.Context, url string) legislativa.Extraction {
	data, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return legislativa.Extraction{URL: url, Err: err}
	}

	text, err := ExtractText(data)
	if err != nil {
		return legislativa.Extraction{URL: url, Err: err}
	}

	return legislativa.Extraction{URL: url, Text: text}
}

// ExtractText parses PDF bytes and returns the text of every page in page
// order, joined by a newline, with surrounding whitespace trimmed.
func ExtractText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", legislativa.Errorf(legislativa.EPARSE, "empty PDF content")
	}

	// The parser panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = legislativa.Errorf(legislativa.EPARSE, "malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", legislativa.Errorf(legislativa.EPARSE, "open PDF: %v", err)
	}

	pages, err := pageTexts(reader)
	if err != nil {
		return "", err
	}

	return JoinPages(pages), nil
}

// pageTexts extracts the text of each page. Fonts are cached across pages
// so character maps are parsed once.
func pageTexts(reader *pdf.Reader) ([]string, error) {
	n := reader.NumPage()
	fonts := make(map[string]*pdf.Font)
	pages := make([]string, 0, n)

	for i := 1; i <= n; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}

		text, err := page.GetPlainText(fonts)
		if err != nil {
			return nil, legislativa.Errorf(legislativa.EPARSE, "page %d: %v", i, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}

// JoinPages joins page texts with a newline and trims surrounding whitespace.
func JoinPages(pages []string) string {
	return strings.TrimSpace(strings.Join(pages, "\n"))
}
