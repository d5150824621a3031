package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Catalog errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgOutOfStock   = "item is out of stock"

	// Wallet errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Inventory errors
	ErrMsgEntryNotFound = "inventory entry not found"

	// Session errors
	ErrMsgNoActiveSession = "no active session"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors.
// Every failure mode of the shop engine is an expected, recoverable
// condition the UI can render a specific message for; wrap these with
// fmt.Errorf("%w: ...", domain.ErrXxx) for additional context and test with
// errors.Is.
var (
	// Catalog errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrOutOfStock   = errors.New(ErrMsgOutOfStock)

	// Wallet errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Inventory errors
	ErrEntryNotFound = errors.New(ErrMsgEntryNotFound)

	// Session errors
	ErrNoActiveSession = errors.New(ErrMsgNoActiveSession)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
