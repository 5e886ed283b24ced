package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart blocks order submission before any network call.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUnauthorized indicates the backend rejected the admin token.
	ErrUnauthorized = errors.New("unauthorized")
)
