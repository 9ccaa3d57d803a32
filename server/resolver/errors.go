package resolver

import "errors"

// Resolver error taxonomy. Errors are never retried or suppressed here; the
// graphql layer attaches them to the field that failed.
var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrNotFound               = errors.New("not found")
	ErrInvalidCredential      = errors.New("invalid password")
	ErrPermissionDenied       = errors.New("permission denied")
)
