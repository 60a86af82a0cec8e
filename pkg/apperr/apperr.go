// Package apperr defines the request error taxonomy. Services return these
// sentinels (optionally wrapped); controllers map them to HTTP codes via
// pkg/resp. Anything else counts as a store failure.
package apperr

import "errors"

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not_found")
	ErrInvalidBody       = errors.New("invalid_body")
	ErrInvalidTransition = errors.New("invalid_transition")
)
