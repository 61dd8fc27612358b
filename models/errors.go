package models

import "errors"

var (
	// ErrNotFound is returned when the primary entity of a lookup does not exist.
	// Repositories map pgx.ErrNoRows to this so callers never import pgx.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned when an order line asks for more units
	// than the product has on hand.
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidLogin    = errors.New("invalid email or password")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrDuplicateRecord = errors.New("duplicate record")
)
