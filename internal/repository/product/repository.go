package product

import (
	"context"

	"storefront/internal/domain"
)

// ListFilter narrows List results; zero values mean no filtering.
type ListFilter struct {
	CategoryID string
	Search     string
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
