package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/domain"
	customerrepo "storefront/internal/repository/customer"
	tokenrepo "storefront/internal/repository/token"
)

// Service resolves who the caller is. Identity is carried by an opaque bearer
// token resolved once per request; there is no server-side session state.
type Service struct {
	customers customerRepo
	tokens    *tokenManager
	accessTTL time.Duration
}

type customerRepo interface {
	Create(ctx context.Context, in customerrepo.CreateInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
}

func New(customers customerrepo.Repository, tokens tokenrepo.Repository, accessTTL time.Duration) *Service {
	return &Service{
		customers: customers,
		tokens:    newTokenManager(tokens),
		accessTTL: accessTTL,
	}
}

type RegisterInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Register creates the customer and logs them in.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Customer, string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, "", fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, "", fmt.Errorf("%w: phone required", domain.ErrValidation)
	}

	customer, err := s.customers.Create(ctx, customerrepo.CreateInput{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	})
	if err != nil {
		return nil, "", err
	}

	tok, err := s.tokens.Issue(ctx, customer.ID, "access", s.accessTTL)
	if err != nil {
		return nil, "", err
	}
	return customer, tok, nil
}

// Login looks the customer up by phone number and issues an access token.
func (s *Service) Login(ctx context.Context, phone string) (*domain.Customer, string, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, "", fmt.Errorf("%w: phone required", domain.ErrValidation)
	}

	customer, err := s.customers.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return nil, "", err
	}

	tok, err := s.tokens.Issue(ctx, customer.ID, "access", s.accessTTL)
	if err != nil {
		return nil, "", err
	}
	return customer, tok, nil
}

// ResolveToken maps a bearer token to the authenticated customer.
func (s *Service) ResolveToken(ctx context.Context, tok string) (*domain.Customer, error) {
	customerID, ok := s.tokens.Validate(ctx, tok)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.customers.GetByID(ctx, customerID)
}
