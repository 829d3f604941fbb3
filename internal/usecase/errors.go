package usecase

import "errors"

// Services wrap these sentinels so the HTTP layer can map failures to
// status codes without parsing messages.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
