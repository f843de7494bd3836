package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

type Service struct {
	repo    cartRepo
	catalog productLookup
}

type cartRepo interface {
	AddItem(ctx context.Context, in cartrepo.AddItemInput) (*domain.CartLine, error)
	ChangeQuantity(ctx context.Context, customerID, lineID string, quantity int) error
	Remove(ctx context.Context, customerID, lineID string) error
	GetByCustomer(ctx context.Context, customerID string) (*domain.Cart, error)
}

type productLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, catalog productLookup) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// AddItem resolves the product's current catalog price and merges the quantity
// into the customer's cart. The price only takes effect when the line is first
// created; later adds keep the snapshotted price.
func (s *Service) AddItem(ctx context.Context, customerID, productID string, quantity int) (*domain.CartLine, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("%w: productId required", domain.ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
		}
		return nil, err
	}

	return s.repo.AddItem(ctx, cartrepo.AddItemInput{
		CustomerID:     customerID,
		ProductID:      product.ID,
		Quantity:       quantity,
		UnitPriceCents: product.PriceCents,
	})
}

// UpdateQuantity overwrites the line's quantity; zero or less removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, customerID, lineID string, quantity int) error {
	if strings.TrimSpace(lineID) == "" {
		return fmt.Errorf("%w: lineId required", domain.ErrValidation)
	}
	return s.repo.ChangeQuantity(ctx, customerID, lineID, quantity)
}

func (s *Service) RemoveItem(ctx context.Context, customerID, lineID string) error {
	if strings.TrimSpace(lineID) == "" {
		return fmt.Errorf("%w: lineId required", domain.ErrValidation)
	}
	return s.repo.Remove(ctx, customerID, lineID)
}

func (s *Service) Get(ctx context.Context, customerID string) (*domain.Cart, error) {
	return s.repo.GetByCustomer(ctx, customerID)
}
