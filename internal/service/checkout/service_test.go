package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain"
)

type stubLedger struct {
	order      *domain.Order
	err        error
	lastCustID string
	lastKey    string
	calls      int
}

func (s *stubLedger) CreateFromCart(_ context.Context, customerID, idempotencyKey string) (*domain.Order, error) {
	s.calls++
	s.lastCustID = customerID
	s.lastKey = idempotencyKey
	return s.order, s.err
}

func TestPlaceOrder(t *testing.T) {
	expected := &domain.Order{ID: "o1", CustomerID: "cust", TotalCents: 5000, PlacedAt: time.Now()}
	ledger := &stubLedger{order: expected}
	svc := New(nil, nil, nil)
	svc.ledger = ledger

	got, err := svc.PlaceOrder(context.Background(), "cust", "key-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != expected {
		t.Fatalf("unexpected order: %+v", got)
	}
	if ledger.lastCustID != "cust" || ledger.lastKey != "key-1" {
		t.Fatalf("unexpected ledger call: customer=%s key=%s", ledger.lastCustID, ledger.lastKey)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := New(nil, nil, nil)
	svc.ledger = &stubLedger{err: domain.ErrEmptyCart}

	_, err := svc.PlaceOrder(context.Background(), "cust", "")
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected empty-cart error, got %v", err)
	}
}

func TestPlaceOrderRequiresCustomer(t *testing.T) {
	ledger := &stubLedger{}
	svc := New(nil, nil, nil)
	svc.ledger = ledger

	_, err := svc.PlaceOrder(context.Background(), "", "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ledger.calls != 0 {
		t.Fatalf("ledger should not be called, got %d calls", ledger.calls)
	}
}

func TestPlaceOrderLedgerError(t *testing.T) {
	svc := New(nil, nil, nil)
	svc.ledger = &stubLedger{err: errors.New("tx aborted")}

	_, err := svc.PlaceOrder(context.Background(), "cust", "")
	if err == nil || err.Error() != "tx aborted" {
		t.Fatalf("expected ledger error, got %v", err)
	}
}
