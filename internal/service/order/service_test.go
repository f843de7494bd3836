package order

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

type stubOrderRepo struct {
	order  *domain.Order
	orders []domain.Order
	err    error
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderRepo) ListByCustomer(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, s.err
}

type stubCatalog struct {
	products map[string]*domain.Product
}

func (s *stubCatalog) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func TestGetResolvesProductNames(t *testing.T) {
	repo := &stubOrderRepo{order: &domain.Order{
		ID:         "o1",
		CustomerID: "cust",
		TotalCents: 3000,
		Details: []domain.OrderDetail{
			{ID: 1, ProductID: "p1", Quantity: 2, UnitPriceCents: 1000},
			{ID: 2, ProductID: "gone", Quantity: 1, UnitPriceCents: 1000},
		},
	}}
	catalog := &stubCatalog{products: map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Mug"},
	}}
	svc := &Service{repo: repo, catalog: catalog}

	ord, err := svc.Get(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ord.Details[0].ProductName != "Mug" {
		t.Fatalf("expected resolved name, got %q", ord.Details[0].ProductName)
	}
	if ord.Details[1].ProductName != "" {
		t.Fatalf("expected empty name for vanished product, got %q", ord.Details[1].ProductName)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := &Service{repo: &stubOrderRepo{err: domain.ErrNotFound}}

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListForCustomer(t *testing.T) {
	repo := &stubOrderRepo{orders: []domain.Order{
		{ID: "o2", Details: []domain.OrderDetail{{ID: 1, ProductID: "p1"}}},
		{ID: "o1"},
	}}
	catalog := &stubCatalog{products: map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Mug"},
	}}
	svc := &Service{repo: repo, catalog: catalog}

	orders, err := svc.ListForCustomer(context.Background(), "cust")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].Details[0].ProductName != "Mug" {
		t.Fatalf("expected resolved name, got %q", orders[0].Details[0].ProductName)
	}
}

func TestListForCustomerEmpty(t *testing.T) {
	svc := &Service{repo: &stubOrderRepo{}}

	orders, err := svc.ListForCustomer(context.Background(), "cust")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
}
