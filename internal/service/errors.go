package service

import "errors"

// Sentinel errors the handlers translate to HTTP statuses. The login
// errors are deliberately distinct: the board reports unknown emails
// and wrong passwords with different messages.
var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrEmailNotFound    = errors.New("email not registered")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrSuspended        = errors.New("account suspended")
	ErrNotFound         = errors.New("record not found")
	ErrInvalidRole      = errors.New("invalid role")
)
