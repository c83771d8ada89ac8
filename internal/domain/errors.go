package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries a message that is safe to return to API clients.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

type ProviderErrorKind string

const (
	// ProviderTransport means the request never produced a response.
	ProviderTransport ProviderErrorKind = "transport"
	// ProviderStatus means the provider answered with a non-success status.
	ProviderStatus ProviderErrorKind = "status"
	// ProviderSchema means the response body did not match the expected schema.
	ProviderSchema ProviderErrorKind = "schema"
)

// ProviderError is returned by audit providers. Its message is surfaced to
// API clients as is.
type ProviderError struct {
	Kind    ProviderErrorKind
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
