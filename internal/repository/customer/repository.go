package customer

import (
	"context"

	"storefront/internal/domain"
)

type CreateInput struct {
	Name    string
	Phone   string
	Address string
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
}
