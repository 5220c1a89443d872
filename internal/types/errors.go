package types

import "errors"

// Sentinel errors shared across repositories, services and handlers.
// Handlers translate these into HTTP status codes with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTooLarge           = errors.New("payload too large")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUpstream           = errors.New("upstream error")
)
