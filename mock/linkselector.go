package mock

import "github.com/Maikl76/legislativa"

var _ legislativa.LinkFinder = (*LinkFinder)(nil)

// LinkFinder is a mock implementation of legislativa.LinkFinder.
type LinkFinder struct {
	FindPDFLinksFn func(html string, sourceURL string) ([]legislativa.PDFLink, error)
}

func (f *LinkFinder) FindPDFLinks(html string, sourceURL string) ([]legislativa.PDFLink, error) {
	return f.FindPDFLinksFn(html, sourceURL)
}
