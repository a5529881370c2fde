package agreement

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("agreement not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotAccepted       = errors.New("agreement is not accepted")
)
