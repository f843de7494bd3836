package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmptyCart indicates a checkout was attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
	// ErrValidation indicates malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
)
