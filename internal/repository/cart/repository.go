package cart

import (
	"context"

	"storefront/internal/domain"
)

type AddItemInput struct {
	CustomerID     string
	ProductID      string
	Quantity       int
	UnitPriceCents int64
}

type Repository interface {
	// AddItem merges the given quantity into the (customer, product) line,
	// creating it with the supplied unit price when absent. The unit price of
	// an existing line is never changed.
	AddItem(ctx context.Context, in AddItemInput) (*domain.CartLine, error)
	// ChangeQuantity overwrites the line's quantity; a quantity of zero or
	// less deletes the line.
	ChangeQuantity(ctx context.Context, customerID, lineID string, quantity int) error
	// Remove deletes the line if present; removing an absent line is not an error.
	Remove(ctx context.Context, customerID, lineID string) error
	GetByCustomer(ctx context.Context, customerID string) (*domain.Cart, error)
	Clear(ctx context.Context, customerID string) error
}
