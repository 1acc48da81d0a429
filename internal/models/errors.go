package models

import "errors"

// Ledger errors. All of them indicate caller or input mistakes, not
// transient faults, so nothing here is retried.
var (
	// ErrProfileNotFound - no profile matches the given id
	ErrProfileNotFound = errors.New("profile not found")

	// ErrRedemptionNotFound - no redemption matches the given id or token
	ErrRedemptionNotFound = errors.New("redemption not found")

	// ErrProductNotFound - no catalog product matches the given id
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidAmount - point issuance amount must be a positive integer
	ErrInvalidAmount = errors.New("invalid amount: must be a positive integer")

	// ErrInsufficientPoints - redemption requested beyond the current balance
	ErrInsufficientPoints = errors.New("insufficient points for redemption")

	// ErrInvalidState - status transition attempted from a terminal state
	ErrInvalidState = errors.New("redemption is not pending")

	// ErrOutOfStock - product has no remaining stock
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrMalformedRecord - stored record failed validation at the store boundary
	ErrMalformedRecord = errors.New("malformed stored record")
)
