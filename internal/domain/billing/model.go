package billing

import "errors"

var (
	// ErrNoEmail is returned when the user record lacks an email address.
	ErrNoEmail = errors.New("user has no email address")
	// ErrNotConfigured is returned when no payment provider is wired.
	ErrNotConfigured = errors.New("billing is not configured")
)

// Subscription is the client-facing view of a payment subscription.
type Subscription struct {
	ID           string `json:"subscriptionId"`
	ClientSecret string `json:"clientSecret,omitempty"`
	Status       string `json:"status,omitempty"`
}
