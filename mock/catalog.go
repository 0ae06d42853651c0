package mock

import (
	"context"

	"github.com/Maikl76/legislativa"
)

var _ legislativa.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of legislativa.CatalogService.
type CatalogService struct {
	CatalogFn func() *legislativa.Catalog
	ReloadFn  func(ctx context.Context) (*legislativa.Catalog, error)
}

func (s *CatalogService) Catalog() *legislativa.Catalog {
	return s.CatalogFn()
}

func (s *CatalogService) Reload(ctx context.Context) (*legislativa.Catalog, error) {
	return s.ReloadFn(ctx)
}
