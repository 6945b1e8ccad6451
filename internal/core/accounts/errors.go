package accounts

import "errors"

var (
	// ErrAccountNotFound indicates the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrUsernameTaken indicates the username is already registered
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials indicates the username/password pair doesn't match
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
