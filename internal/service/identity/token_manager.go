package identity

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"storefront/internal/domain"
	tokenrepo "storefront/internal/repository/token"
)

type tokenManager struct {
	repo tokenrepo.Repository
}

func newTokenManager(repo tokenrepo.Repository) *tokenManager {
	return &tokenManager{repo: repo}
}

func (m *tokenManager) Issue(ctx context.Context, customerID, kind string, ttl time.Duration) (string, error) {
	expiresAt := time.Now().Add(ttl)
	for i := 0; i < 5; i++ {
		tok, err := randomToken()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, tokenrepo.Token{
			Token:      tok,
			CustomerID: customerID,
			Kind:       kind,
			ExpiresAt:  expiresAt,
		})
		if err == nil {
			return tok, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

// Validate returns the customer id behind a live access token. Expired tokens
// are deleted on sight.
func (m *tokenManager) Validate(ctx context.Context, tok string) (string, bool) {
	meta, err := m.repo.Get(ctx, tok)
	if err != nil {
		return "", false
	}
	if meta.Kind != "access" {
		return "", false
	}
	if time.Now().After(meta.ExpiresAt) {
		_ = m.repo.Delete(ctx, tok)
		return "", false
	}
	return meta.CustomerID, true
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
