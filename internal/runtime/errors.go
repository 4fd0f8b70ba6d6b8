package runtime

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNameRequired        = errors.New("name is required")
	ErrDetailRequired      = errors.New("contact detail is required")
	ErrAddressRequired     = errors.New("address is required")
	ErrContactNotFound     = errors.New("contact not found")
	ErrPlaceNotFound       = errors.New("place not found")
	ErrPasswordRequired    = errors.New("password cannot be empty")
	ErrConfirmMismatch     = errors.New("passwords do not match")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Suggestions provides helpful suggestions for common errors.
var Suggestions = map[error]string{
	ErrNameRequired:        "Provide a non-empty name.",
	ErrDetailRequired:      "Provide a phone number, email, or other detail with --contact.",
	ErrAddressRequired:     "Provide a free-text address as the second argument.",
	ErrContactNotFound:     "Use 'hushbook contact' to list contacts and their ids.",
	ErrPlaceNotFound:       "Use 'hushbook place' to list places and their ids.",
	ErrPasswordRequired:    "Enter at least one character.",
	ErrConfirmMismatch:     "Type the same password twice.",
	ErrUnsupportedLanguage: "Use 'hushbook settings' to see supported language codes.",
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}
	return ""
}

// FormatError renders an error with its suggestion, when one exists.
func FormatError(err error) string {
	if suggestion := GetSuggestion(err); suggestion != "" {
		return err.Error() + "\n  " + suggestion
	}
	return err.Error()
}
