package adintel

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service describes the business logic surface for ad intelligence.
type Service interface {
	Search(ctx context.Context, userID, searchTerms string, limit int) ([]Ad, error)
	List(ctx context.Context, userID string, limit int) ([]Ad, error)
}

type service struct {
	repo    Repository
	library AdsLibrary
	log     zerolog.Logger
}

// NewService wires the ad intelligence service.
func NewService(repo Repository, library AdsLibrary, log zerolog.Logger) Service {
	return &service{
		repo:    repo,
		library: library,
		log:     log.With().Str("component", "adintel-service").Logger(),
	}
}

// Search queries the ads library, categorizes each result and stores the
// snapshots. A single failed insert does not abort the batch.
func (s *service) Search(ctx context.Context, userID, searchTerms string, limit int) ([]Ad, error) {
	if strings.TrimSpace(searchTerms) == "" {
		return nil, fmt.Errorf("%w: searchTerms is required", ErrInvalidInput)
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	ads, err := s.library.SearchAds(ctx, searchTerms, limit)
	if err != nil {
		return nil, fmt.Errorf("ads library search: %w", err)
	}

	for i := range ads {
		ads[i].ID = uuid.NewString()
		ads[i].UserID = userID
		if ads[i].Category == "" {
			ads[i].Category = Categorize(ads[i].Content + " " + ads[i].PageName)
		}
		if _, err := s.repo.Create(ctx, &ads[i]); err != nil {
			s.log.Warn().Err(err).Str("ad_id", ads[i].AdID).Msg("store ad snapshot")
		}
	}
	return ads, nil
}

func (s *service) List(ctx context.Context, userID string, limit int) ([]Ad, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListByUser(ctx, userID, limit)
}
