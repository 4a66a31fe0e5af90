package app

import (
	"context"

	"nsxfint/internal/core"
)

// ListCatalog loads the effective feature catalog for inspection. The
// catalog passes through resolver construction so integrity defects
// surface the same way they would on a run.
func (s Service) ListCatalog(ctx context.Context, req CatalogRequest) (CatalogResult, error) {
	features, err := s.catalogPort(req.CatalogPath).LoadFeatures()
	if err != nil {
		return CatalogResult{}, err
	}
	if _, err := core.NewResolver(ctx, features); err != nil {
		return CatalogResult{}, err
	}
	return CatalogResult{Features: features}, nil
}
