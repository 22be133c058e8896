package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/pagepilot/pagepilot/internal/domain/content"
	"github.com/pagepilot/pagepilot/internal/domain/page"
)

const statsCacheTTL = time.Minute

// Service describes the business logic surface for analytics.
type Service interface {
	Record(ctx context.Context, s *Snapshot) (*Snapshot, error)
	Range(ctx context.Context, pageID string, from, to *time.Time) ([]Snapshot, error)
	DashboardStats(ctx context.Context, userID string) (*DashboardStats, error)
}

type service struct {
	repo     Repository
	pages    page.Repository
	contents content.Repository
	cache    StatsCache
	log      zerolog.Logger
	now      func() time.Time
}

// NewService wires the analytics service. cache may be nil.
func NewService(repo Repository, pages page.Repository, contents content.Repository, cache StatsCache, log zerolog.Logger) Service {
	return &service{
		repo:     repo,
		pages:    pages,
		contents: contents,
		cache:    cache,
		log:      log.With().Str("component", "analytics-service").Logger(),
		now:      time.Now,
	}
}

// Record appends a snapshot; existing rows are never mutated.
func (s *service) Record(ctx context.Context, snap *Snapshot) (*Snapshot, error) {
	if strings.TrimSpace(snap.PageID) == "" {
		return nil, fmt.Errorf("%w: pageId is required", ErrInvalidInput)
	}
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}
	if snap.Date.IsZero() {
		snap.Date = s.now()
	}
	return s.repo.Create(ctx, snap)
}

func (s *service) Range(ctx context.Context, pageID string, from, to *time.Time) ([]Snapshot, error) {
	return s.repo.Range(ctx, pageID, from, to)
}

// DashboardStats aggregates the last 30 days across the user's pages.
func (s *service) DashboardStats(ctx context.Context, userID string) (*DashboardStats, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetStats(ctx, userID); ok {
			return cached, nil
		}
	}

	pages, err := s.pages.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalPosts, err := s.contents.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalPosts: totalPosts,
		TotalPages: len(pages),
		TotalSpend: decimal.Zero,
	}

	if len(pages) > 0 {
		pageIDs := make([]string, len(pages))
		for i, p := range pages {
			pageIDs[i] = p.ID
		}
		snapshots, err := s.repo.Since(ctx, pageIDs, s.now().AddDate(0, 0, -30))
		if err != nil {
			return nil, err
		}
		for _, snap := range snapshots {
			stats.TotalReach += snap.Reach
			stats.TotalEngagement += snap.Engagements
			stats.TotalSpend = stats.TotalSpend.Add(snap.Spend)
		}
	}

	if stats.TotalReach > 0 {
		stats.AvgEngagementRate = float64(stats.TotalEngagement) / float64(stats.TotalReach) * 100
	}

	if s.cache != nil {
		s.cache.SetStats(ctx, userID, stats, statsCacheTTL)
	}
	return stats, nil
}
