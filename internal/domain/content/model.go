package content

import (
	"errors"
	"time"

	"github.com/pagepilot/pagepilot/internal/domain/generation"
)

var (
	// ErrNotFound is returned when the content row does not exist or
	// belongs to another user.
	ErrNotFound = errors.New("content not found")
	// ErrInvalidInput marks request validation failures.
	ErrInvalidInput = errors.New("invalid content input")
)

// Status is the publishing lifecycle state of a content row.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
	StatusFailed    Status = "failed"
)

// Content is a generated piece of social content.
type Content struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"userId"`
	PageID      *string                `json:"pageId,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Content     string                 `json:"content"`
	ContentType generation.ContentType `json:"contentType"`
	AIModel     string                 `json:"aiModel"`
	Prompt      string                 `json:"prompt"`
	ImageURL    string                 `json:"imageUrl,omitempty"`
	Status      Status                 `json:"status"`
	ScheduledAt *time.Time             `json:"scheduledAt,omitempty"`
	PublishedAt *time.Time             `json:"publishedAt,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// GenerateInput describes one content generation request.
type GenerateInput struct {
	Prompt          string
	Title           string
	ContentType     generation.ContentType
	Style           generation.Style
	Model           generation.Model
	PageID          *string
	IncludeImage    bool
	IncludeResearch bool
	TargetAudience  string
}

// UpdateInput carries the mutable content fields.
type UpdateInput struct {
	Title   *string
	Content *string
	PageID  *string
}
