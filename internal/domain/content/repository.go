package content

import (
	"context"
	"time"
)

// Repository exposes data access for Content entities.
type Repository interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]Content, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Get(ctx context.Context, id string) (*Content, error)
	Create(ctx context.Context, c *Content) (*Content, error)
	Update(ctx context.Context, c *Content) (*Content, error)
	Delete(ctx context.Context, id string) error
	// ScheduledDue returns rows with status "scheduled" whose scheduledAt
	// is at or before now. Future rows never appear.
	ScheduledDue(ctx context.Context, now time.Time) ([]Content, error)
}

// ImageGenerator creates an illustration for generated text.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Publisher posts finished content to the social platform.
type Publisher interface {
	PublishPost(ctx context.Context, pageID, accessToken, message, imageURL string) (string, error)
}
