package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/generation"
	"github.com/pagepilot/pagepilot/internal/domain/page"
	"github.com/pagepilot/pagepilot/internal/infrastructure/metrics"
)

// Service describes the business logic surface for content operations.
type Service interface {
	Generate(ctx context.Context, userID string, in GenerateInput) (*Content, error)
	List(ctx context.Context, userID string, limit int) ([]Content, error)
	Update(ctx context.Context, userID, id string, in UpdateInput) (*Content, error)
	Delete(ctx context.Context, userID, id string) error
	Schedule(ctx context.Context, userID, id string, at time.Time) (*Content, error)
	Unschedule(ctx context.Context, userID, id string) (*Content, error)
	ScheduledDue(ctx context.Context) ([]Content, error)
	Publish(ctx context.Context, userID, id string) (*Content, error)
	PublishDue(ctx context.Context) error
}

type service struct {
	repo       Repository
	dispatcher *generation.Dispatcher
	images     ImageGenerator
	publisher  Publisher
	pages      page.Repository
	log        zerolog.Logger
	now        func() time.Time
}

// NewService wires the content service. images and publisher may be nil when
// the corresponding upstream credentials are absent.
func NewService(
	repo Repository,
	dispatcher *generation.Dispatcher,
	images ImageGenerator,
	publisher Publisher,
	pages page.Repository,
	log zerolog.Logger,
) Service {
	return &service{
		repo:       repo,
		dispatcher: dispatcher,
		images:     images,
		publisher:  publisher,
		pages:      pages,
		log:        log.With().Str("component", "content-service").Logger(),
		now:        time.Now,
	}
}

// Generate validates the request, dispatches it to the AI backends and
// persists the result as a draft. A blank prompt fails before any row is
// created; a backend failure still yields persisted template content.
func (s *service) Generate(ctx context.Context, userID string, in GenerateInput) (*Content, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return nil, generation.ErrEmptyPrompt
	}
	if in.ContentType == "" {
		in.ContentType = generation.ContentTypePost
	}
	if !in.ContentType.Valid() {
		return nil, fmt.Errorf("%w: unknown content type %q", ErrInvalidInput, in.ContentType)
	}
	if in.Model == "" {
		in.Model = generation.ModelAuto
	}
	if !in.Model.Valid() {
		return nil, fmt.Errorf("%w: unknown model %q", ErrInvalidInput, in.Model)
	}
	if in.Style != "" && !in.Style.Valid() {
		return nil, fmt.Errorf("%w: unknown style %q", ErrInvalidInput, in.Style)
	}

	resp := s.dispatcher.Generate(ctx, generation.Request{
		Prompt:          in.Prompt,
		ContentType:     in.ContentType,
		Style:           in.Style,
		Model:           in.Model,
		IncludeResearch: in.IncludeResearch,
		TargetAudience:  in.TargetAudience,
	})

	imageURL := ""
	if in.IncludeImage && s.images != nil {
		snippet := resp.Content
		if len(snippet) > 100 {
			snippet = snippet[:100]
		}
		url, err := s.images.GenerateImage(ctx, fmt.Sprintf("Create a social media image for: %s", snippet))
		if err != nil {
			s.log.Warn().Err(err).Msg("image generation failed, continuing without image")
		} else {
			imageURL = url
		}
	}

	return s.repo.Create(ctx, &Content{
		ID:          uuid.NewString(),
		UserID:      userID,
		PageID:      in.PageID,
		Title:       in.Title,
		Content:     resp.Content,
		ContentType: in.ContentType,
		AIModel:     resp.Model,
		Prompt:      in.Prompt,
		ImageURL:    imageURL,
		Status:      StatusDraft,
	})
}

func (s *service) List(ctx context.Context, userID string, limit int) ([]Content, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *service) Update(ctx context.Context, userID, id string, in UpdateInput) (*Content, error) {
	c, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		c.Title = *in.Title
	}
	if in.Content != nil {
		c.Content = *in.Content
	}
	if in.PageID != nil {
		c.PageID = in.PageID
	}

	return s.repo.Update(ctx, c)
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Schedule marks the row for future publishing.
func (s *service) Schedule(ctx context.Context, userID, id string, at time.Time) (*Content, error) {
	c, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	c.Status = StatusScheduled
	c.ScheduledAt = &at
	return s.repo.Update(ctx, c)
}

// Unschedule reverts the row to draft so it never appears in due reads.
func (s *service) Unschedule(ctx context.Context, userID, id string) (*Content, error) {
	c, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	c.Status = StatusDraft
	c.ScheduledAt = nil
	return s.repo.Update(ctx, c)
}

// ScheduledDue is a single filtered read; there is no polling loop here.
func (s *service) ScheduledDue(ctx context.Context) ([]Content, error) {
	return s.repo.ScheduledDue(ctx, s.now())
}

func (s *service) Publish(ctx context.Context, userID, id string) (*Content, error) {
	c, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, c); err != nil {
		return c, err
	}
	return c, nil
}

// PublishDue publishes every due scheduled row. Failures mark the row failed
// and do not stop the batch.
func (s *service) PublishDue(ctx context.Context) error {
	due, err := s.ScheduledDue(ctx)
	if err != nil {
		return err
	}
	for i := range due {
		if err := s.publish(ctx, &due[i]); err != nil {
			s.log.Warn().Err(err).Str("content_id", due[i].ID).Msg("scheduled publish failed")
		}
	}
	return nil
}

func (s *service) publish(ctx context.Context, c *Content) error {
	if c.PageID != nil && s.publisher != nil {
		p, err := s.pages.Get(ctx, *c.PageID)
		if err != nil {
			return s.markFailed(ctx, c, err)
		}
		if _, err := s.publisher.PublishPost(ctx, p.FacebookPageID, p.AccessToken, c.Content, c.ImageURL); err != nil {
			return s.markFailed(ctx, c, err)
		}
	}

	now := s.now()
	c.Status = StatusPublished
	c.PublishedAt = &now
	if _, err := s.repo.Update(ctx, c); err != nil {
		return err
	}
	metrics.RecordScheduledPublish("published")
	return nil
}

func (s *service) markFailed(ctx context.Context, c *Content, cause error) error {
	c.Status = StatusFailed
	if _, err := s.repo.Update(ctx, c); err != nil {
		s.log.Error().Err(err).Str("content_id", c.ID).Msg("mark content failed")
	}
	metrics.RecordScheduledPublish("failed")
	return fmt.Errorf("publish content %s: %w", c.ID, cause)
}

// owned loads content and hides rows owned by other users behind ErrNotFound.
func (s *service) owned(ctx context.Context, userID, id string) (*Content, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrNotFound
	}
	return c, nil
}
