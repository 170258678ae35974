package service

import "errors"

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailInUse         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOrder       = errors.New("invalid order data")
	ErrCustomerNotFound   = errors.New("customer not found for the given user")
	ErrDuplicateOrder     = errors.New("idempotent key already exists")
	ErrItemNotFound       = errors.New("item not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrCardNotFound       = errors.New("card not found")
)
