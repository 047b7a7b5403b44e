package account

import (
	"errors"

	"chatline/internal/store"
)

// Domain errors surfaced by the lifecycle service. Handlers translate these
// to HTTP status codes with errors.Is.
var (
	ErrValidation         = errors.New("please enter all details")
	ErrDuplicateEmail     = store.ErrDuplicateEmail
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = store.ErrNotFound
	ErrCredential         = errors.New("credential failure")
)
