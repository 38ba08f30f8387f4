package material

import "errors"

var (
	ErrNotFound     = errors.New("service material not found")
	ErrInvalidInput = errors.New("invalid service material input")
)

// DomainError carries a client-facing message for a sentinel error.
type DomainError struct {
	Err     error
	Message string
	Field   string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func invalid(field, message string) error {
	return &DomainError{Err: ErrInvalidInput, Field: field, Message: message}
}
