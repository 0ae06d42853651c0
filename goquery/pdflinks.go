// Package goquery finds PDF links on source pages using goquery.
package goquery

import (
	"strings"

	"github.com/Maikl76/legislativa"
	"github.com/PuerkitoBio/goquery"
)

// pdfSuffix is matched literally and case-sensitively against the raw href.
const pdfSuffix = ".pdf"

var _ legislativa.LinkFinder = (*PDFLinkFinder)(nil)

// PDFLinkFinder extracts links to PDF documents from HTML.
type PDFLinkFinder struct{}

// NewPDFLinkFinder creates a new PDFLinkFinder.
func NewPDFLinkFinder() *PDFLinkFinder {
	return &PDFLinkFinder{}
}

// FindPDFLinks returns every anchor whose href ends in ".pdf", in document
// order. Duplicates are kept. The link name is the trimmed anchor text.
func (f *PDFLinkFinder) FindPDFLinks(html string, sourceURL string) ([]legislativa.PDFLink, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, legislativa.Errorf(legislativa.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []legislativa.PDFLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.HasSuffix(href, pdfSuffix) {
			return
		}

		links = append(links, legislativa.PDFLink{
			Name: strings.TrimSpace(sel.Text()),
			URL:  ResolveURL(sourceURL, href),
		})
	})

	return links, nil
}

// ResolveURL makes href absolute. An href starting with "http" is used
// as-is; anything else is appended to the source URL's directory, i.e.
// everything up to and including its last "/".
func ResolveURL(sourceURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return sourceURL[:strings.LastIndex(sourceURL, "/")+1] + href
}
