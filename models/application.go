package models

import "time"

// Status is the review state of an application.
type Status string

const (
	StatusNew      Status = "Ny"
	StatusInReview Status = "Under behandling"
	StatusApproved Status = "Godkänd"
	StatusRejected Status = "Avslagen"
)

// AllStatuses lists every valid status, in review order.
var AllStatuses = []Status{StatusNew, StatusInReview, StatusApproved, StatusRejected}

// IsValid reports whether s is one of the four known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Application represents a submitted candidate record awaiting admin review.
type Application struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Swimming   string    `json:"swimming"`
	Experience string    `json:"experience"`
	Rescue     string    `json:"rescue"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	Status     Status    `json:"status"`
}

// ApplicationForm represents the public submission payload.
type ApplicationForm struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Swimming   string `json:"swimming"`
	Experience string `json:"experience"`
	Rescue     string `json:"rescue"`
	Message    string `json:"message"`
}

// Validate checks that all required fields are present.
// Phone, address and message are optional.
func (f *ApplicationForm) Validate() ValidationErrors {
	var errs ValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"name", f.Name},
		{"email", f.Email},
		{"swimming", f.Swimming},
		{"experience", f.Experience},
		{"rescue", f.Rescue},
	}

	for _, r := range required {
		if isBlank(r.value) {
			errs = append(errs, ValidationError{Field: r.field, Message: r.field + " is required"})
		}
	}

	return errs
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
