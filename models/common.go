package models

import "strings"

// ValidationError represents a single invalid or missing field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

// Error makes ValidationErrors usable as an error value.
func (ve ValidationErrors) Error() string {
	return strings.Join(ve.GetMessages(), ", ")
}

// HasErrors returns true if there are validation errors.
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings.
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}
