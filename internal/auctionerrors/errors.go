package auctionerrors

import "errors"

// Storage-level errors
var (
	ErrItemNotFound = errors.New("item not found")
	ErrNoSignup     = errors.New("no signup found for user")
	ErrConflict     = errors.New("concurrent update conflict")
)

// Business logic errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotBiddable      = errors.New("item does not accept bids")
	ErrSignupNotAllowed = errors.New("item does not accept signups")
)
