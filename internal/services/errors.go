// internal/services/errors.go
package services

import "errors"

// Sentinel errors shared by the service layer. Handlers translate these to
// HTTP status codes with errors.Is; services wrap them with %w to add context.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrNegativeStock      = errors.New("resulting stock would be negative")
	ErrAlreadySupported   = errors.New("already supported this request")
	ErrHasOrders          = errors.New("product has existing orders")
	ErrForbidden          = errors.New("operation not permitted")
)
