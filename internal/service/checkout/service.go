package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"

	"github.com/prometheus/client_golang/prometheus"
)

type Service struct {
	ledger orderLedger
	placed prometheus.Counter
	logger *log.Logger
}

type orderLedger interface {
	CreateFromCart(ctx context.Context, customerID, idempotencyKey string) (*domain.Order, error)
}

// New builds the checkout service. placed may be nil when metrics are not
// wired (tests).
func New(ledger orderrepo.Repository, placed prometheus.Counter, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{ledger: ledger, placed: placed, logger: logger}
}

// PlaceOrder converts the customer's cart into an order. The ledger performs
// the conversion atomically; nothing is retried here, the caller decides what
// to do with a failed checkout.
func (s *Service) PlaceOrder(ctx context.Context, customerID, idempotencyKey string) (*domain.Order, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customerId required", domain.ErrValidation)
	}

	ord, err := s.ledger.CreateFromCart(ctx, customerID, idempotencyKey)
	if err != nil {
		if !errors.Is(err, domain.ErrEmptyCart) {
			s.logger.Printf("checkout: customer_id=%s error=%v", customerID, err)
		}
		return nil, err
	}

	if s.placed != nil {
		s.placed.Inc()
	}
	return ord, nil
}
