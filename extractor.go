package legislativa

import "context"

// Extraction is the outcome of downloading and parsing one PDF.
// A failed extraction keeps the reason in Err and has empty Text.
type Extraction struct {
	URL  string
	Text string
	Err  error
}

// Failed reports whether the extraction did not produce text from a PDF.
func (e Extraction) Failed() bool {
	return e.Err != nil
}

// PDFExtractor turns a PDF URL into plain text.
type PDFExtractor interface {
	// Extract downloads the PDF and returns its text, pages joined by a
	// newline and surrounding whitespace trimmed. It never fails outright:
	// fetch and parse problems are reported through Extraction.Err.
	Extract(ctx context.Context, url string) Extraction
}
