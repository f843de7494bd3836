package catalog

import (
	"context"

	"storefront/internal/domain"
	categoryrepo "storefront/internal/repository/category"
	productrepo "storefront/internal/repository/product"
)

// Service is the read-only catalog surface the storefront browses. Catalog
// management happens elsewhere; this side never writes.
type Service struct {
	products   productrepo.Repository
	categories categoryrepo.Repository
}

func New(products productrepo.Repository, categories categoryrepo.Repository) *Service {
	return &Service{products: products, categories: categories}
}

func (s *Service) List(ctx context.Context, categoryID, search string) ([]domain.Product, error) {
	return s.products.List(ctx, productrepo.ListFilter{CategoryID: categoryID, Search: search})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}
