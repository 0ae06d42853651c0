package legislativa

// PDFLink is a link to a PDF document found on a source page.
type PDFLink struct {
	// Name is the trimmed anchor text. It may be empty.
	Name string

	// URL is the resolved absolute URL of the PDF.
	URL string
}

// LinkFinder extracts PDF links from a source page.
type LinkFinder interface {
	// FindPDFLinks parses HTML and returns links whose href ends in ".pdf",
	// in document order. Relative hrefs are resolved against sourceURL.
	FindPDFLinks(html string, sourceURL string) ([]PDFLink, error)
}
