package order

import (
	"context"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

type Service struct {
	repo    orderRepo
	catalog productLookup
}

type orderRepo interface {
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
}

type productLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo orderrepo.Repository, catalog productLookup) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func (s *Service) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	ord, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s.resolveNames(ctx, ord.Details)
	return ord, nil
}

// ListForCustomer returns the customer's orders, newest first.
func (s *Service) ListForCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	orders, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		s.resolveNames(ctx, orders[i].Details)
	}
	return orders, nil
}

// resolveNames fills display names from the catalog. The ledger keeps product
// ids only; a product that has since vanished just leaves the name empty.
func (s *Service) resolveNames(ctx context.Context, details []domain.OrderDetail) {
	if s.catalog == nil {
		return
	}
	for i := range details {
		p, err := s.catalog.GetByID(ctx, details[i].ProductID)
		if err != nil {
			continue
		}
		details[i].ProductName = p.Name
	}
}
