package page

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service describes the business logic surface for page operations.
type Service interface {
	Connect(ctx context.Context, userID string, in ConnectInput) (*Page, error)
	List(ctx context.Context, userID string) ([]Page, error)
	Update(ctx context.Context, userID, id string, in UpdateInput) (*Page, error)
	Delete(ctx context.Context, userID, id string) error
	SyncFromFacebook(ctx context.Context, userID string) ([]Page, error)
}

type service struct {
	repo  Repository
	graph GraphAPI
	log   zerolog.Logger
}

// NewService wires the page service. graph may be nil when no Facebook app
// credentials are configured; SyncFromFacebook then returns the stored rows.
func NewService(repo Repository, graph GraphAPI, log zerolog.Logger) Service {
	return &service{
		repo:  repo,
		graph: graph,
		log:   log.With().Str("component", "page-service").Logger(),
	}
}

// Connect upserts on the external page id: connecting an already-connected
// page refreshes its name, token, followers and image instead of duplicating.
func (s *service) Connect(ctx context.Context, userID string, in ConnectInput) (*Page, error) {
	if strings.TrimSpace(in.FacebookPageID) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: facebookPageId and name are required", ErrInvalidInput)
	}

	existing, err := s.repo.GetByFacebookID(ctx, in.FacebookPageID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return s.refresh(ctx, existing, in)
	}

	created, err := s.repo.Create(ctx, &Page{
		ID:              uuid.NewString(),
		UserID:          userID,
		FacebookPageID:  in.FacebookPageID,
		Name:            in.Name,
		ProfileImageURL: in.ProfileImageURL,
		Followers:       in.Followers,
		AccessToken:     in.AccessToken,
		IsActive:        true,
	})
	if errors.Is(err, ErrAlreadyExists) {
		// lost a race on the unique facebook_page_id constraint
		existing, gerr := s.repo.GetByFacebookID(ctx, in.FacebookPageID)
		if gerr != nil {
			return nil, err
		}
		return s.refresh(ctx, existing, in)
	}
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("facebook_page_id", in.FacebookPageID).Msg("connected page")
	return created, nil
}

// refresh updates an already-connected page in place with the latest
// name, token, followers and image.
func (s *service) refresh(ctx context.Context, existing *Page, in ConnectInput) (*Page, error) {
	existing.Name = in.Name
	existing.AccessToken = in.AccessToken
	existing.Followers = in.Followers
	existing.ProfileImageURL = in.ProfileImageURL
	existing.IsActive = true
	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("facebook_page_id", in.FacebookPageID).Msg("refreshed existing page connection")
	return updated, nil
}

func (s *service) List(ctx context.Context, userID string) ([]Page, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Update(ctx context.Context, userID, id string, in UpdateInput) (*Page, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.ProfileImageURL != nil {
		p.ProfileImageURL = *in.ProfileImageURL
	}
	if in.Followers != nil {
		p.Followers = *in.Followers
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SyncFromFacebook refreshes follower counts and names from the Graph API.
// Pages whose refresh fails keep their stored values.
func (s *service) SyncFromFacebook(ctx context.Context, userID string) ([]Page, error) {
	pages, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.graph == nil {
		return pages, nil
	}

	for i := range pages {
		details, err := s.graph.PageDetails(ctx, pages[i].FacebookPageID, pages[i].AccessToken)
		if err != nil {
			s.log.Warn().Err(err).Str("facebook_page_id", pages[i].FacebookPageID).Msg("page refresh failed")
			continue
		}
		pages[i].Name = details.Name
		pages[i].Followers = details.Followers
		if details.ProfileImageURL != "" {
			pages[i].ProfileImageURL = details.ProfileImageURL
		}
		if updated, err := s.repo.Update(ctx, &pages[i]); err == nil {
			pages[i] = *updated
		}
	}
	return pages, nil
}

// owned loads a page and hides rows owned by other users behind ErrNotFound.
func (s *service) owned(ctx context.Context, userID, id string) (*Page, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotFound
	}
	return p, nil
}
