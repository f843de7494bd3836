package order

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	// CreateFromCart converts the customer's current cart into one order plus
	// its details, writes an order-placed outbox record and clears the cart,
	// all in a single transaction. A non-empty idempotencyKey makes repeated
	// calls return the already-created order instead of placing a second one.
	CreateFromCart(ctx context.Context, customerID, idempotencyKey string) (*domain.Order, error)
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
}
