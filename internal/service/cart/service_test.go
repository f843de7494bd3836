package cart

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

type stubRepo struct {
	addResult    *domain.CartLine
	addErr       error
	lastAdd      cartrepo.AddItemInput
	changeErr    error
	lastChangeID string
	lastQty      int
	removeErr    error
	lastRemoveID string
	cart         *domain.Cart
	getErr       error
}

func (s *stubRepo) AddItem(_ context.Context, in cartrepo.AddItemInput) (*domain.CartLine, error) {
	s.lastAdd = in
	return s.addResult, s.addErr
}

func (s *stubRepo) ChangeQuantity(_ context.Context, _, lineID string, quantity int) error {
	s.lastChangeID = lineID
	s.lastQty = quantity
	return s.changeErr
}

func (s *stubRepo) Remove(_ context.Context, _, lineID string) error {
	s.lastRemoveID = lineID
	return s.removeErr
}

func (s *stubRepo) GetByCustomer(_ context.Context, customerID string) (*domain.Cart, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.cart != nil {
		return s.cart, nil
	}
	return &domain.Cart{CustomerID: customerID}, nil
}

type stubCatalog struct {
	product *domain.Product
	err     error
	lastID  string
}

func (s *stubCatalog) GetByID(_ context.Context, id string) (*domain.Product, error) {
	s.lastID = id
	return s.product, s.err
}

func TestAddItemValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, catalog: &stubCatalog{}}

	_, err := svc.AddItem(context.Background(), "cust", "  ", 1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for blank product, got %v", err)
	}

	_, err = svc.AddItem(context.Background(), "cust", "prod", 0)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}
}

func TestAddItemProductNotFound(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, catalog: &stubCatalog{err: domain.ErrNotFound}}

	_, err := svc.AddItem(context.Background(), "cust", "missing", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddItemSnapshotsCatalogPrice(t *testing.T) {
	repo := &stubRepo{addResult: &domain.CartLine{ID: "l1", ProductID: "prod", Quantity: 2, UnitPriceCents: 1000}}
	catalog := &stubCatalog{product: &domain.Product{ID: "prod", Name: "Mug", PriceCents: 1000}}
	svc := &Service{repo: repo, catalog: catalog}

	line, err := svc.AddItem(context.Background(), "cust", "prod", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.ID != "l1" {
		t.Fatalf("unexpected line: %+v", line)
	}
	if repo.lastAdd.UnitPriceCents != 1000 {
		t.Fatalf("expected catalog price passed to repo, got %d", repo.lastAdd.UnitPriceCents)
	}
	if repo.lastAdd.CustomerID != "cust" || repo.lastAdd.ProductID != "prod" || repo.lastAdd.Quantity != 2 {
		t.Fatalf("unexpected add input: %+v", repo.lastAdd)
	}
}

func TestAddItemRepoError(t *testing.T) {
	repo := &stubRepo{addErr: errors.New("boom")}
	catalog := &stubCatalog{product: &domain.Product{ID: "prod", PriceCents: 500}}
	svc := &Service{repo: repo, catalog: catalog}

	_, err := svc.AddItem(context.Background(), "cust", "prod", 1)
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestUpdateQuantity(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	if err := svc.UpdateQuantity(context.Background(), "cust", "line", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastChangeID != "line" || repo.lastQty != 3 {
		t.Fatalf("unexpected change call: id=%s qty=%d", repo.lastChangeID, repo.lastQty)
	}

	if err := svc.UpdateQuantity(context.Background(), "cust", "", 3); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateQuantityNotFound(t *testing.T) {
	svc := &Service{repo: &stubRepo{changeErr: domain.ErrNotFound}}

	err := svc.UpdateQuantity(context.Background(), "cust", "missing", 3)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemoveItem(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	if err := svc.RemoveItem(context.Background(), "cust", "line"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastRemoveID != "line" {
		t.Fatalf("unexpected remove call: %s", repo.lastRemoveID)
	}
}

func TestGetEmptyCart(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	cart, err := svc.Get(context.Background(), "cust")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Lines) != 0 || cart.TotalCents != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}
