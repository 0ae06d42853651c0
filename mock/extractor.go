package mock

import (
	"context"

	"github.com/Maikl76/legislativa"
)

var _ legislativa.PDFExtractor = (*PDFExtractor)(nil)

// PDFExtractor is a mock implementation of legislativa.PDFExtractor.
type PDFExtractor struct {
	ExtractFn func(ctx context.Context, url string) legislativa.Extraction
}

func (e *PDFExtractor) Extract(ctx context.Context, url string) legislativa.Extraction {
	return e.ExtractFn(ctx, url)
}
