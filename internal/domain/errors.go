package domain

import "errors"

var (
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrSessionExpired     = errors.New("session expired")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrUnavailable        = errors.New("server unavailable")
	ErrBadResponse        = errors.New("unexpected server response")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrLineNotFound       = errors.New("cart line not found")
)
