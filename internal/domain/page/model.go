package page

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when the page does not exist or belongs to
	// another user.
	ErrNotFound = errors.New("facebook page not found")
	// ErrInvalidInput marks request validation failures.
	ErrInvalidInput = errors.New("invalid page input")
	// ErrAlreadyExists is returned when an insert hits the unique
	// facebook_page_id constraint.
	ErrAlreadyExists = errors.New("facebook page already connected")
)

// Page is a connected Facebook page.
type Page struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	FacebookPageID  string    `json:"facebookPageId"`
	Name            string    `json:"name"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	Followers       int       `json:"followers"`
	AccessToken     string    `json:"-"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ConnectInput carries the fields needed to connect a page.
type ConnectInput struct {
	FacebookPageID  string
	Name            string
	ProfileImageURL string
	Followers       int
	AccessToken     string
}

// UpdateInput carries the mutable page fields.
type UpdateInput struct {
	Name            *string
	ProfileImageURL *string
	Followers       *int
	IsActive        *bool
}

// Details is the page snapshot fetched from the Graph API.
type Details struct {
	FacebookPageID  string
	Name            string
	Followers       int
	ProfileImageURL string
	AccessToken     string
}
