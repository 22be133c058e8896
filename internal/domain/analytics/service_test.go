package analytics_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/pagepilot/pagepilot/internal/domain/analytics"
	"github.com/pagepilot/pagepilot/internal/domain/content"
	"github.com/pagepilot/pagepilot/internal/domain/page"
	contentrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/content"
	pagerepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/page"
)

type fakeSnapshots struct {
	rows []analytics.Snapshot
}

func (f *fakeSnapshots) Create(ctx context.Context, s *analytics.Snapshot) (*analytics.Snapshot, error) {
	f.rows = append(f.rows, *s)
	return s, nil
}

func (f *fakeSnapshots) Range(ctx context.Context, pageID string, from, to *time.Time) ([]analytics.Snapshot, error) {
	var out []analytics.Snapshot
	for _, s := range f.rows {
		if s.PageID != pageID {
			continue
		}
		if from != nil && s.Date.Before(*from) {
			continue
		}
		if to != nil && s.Date.After(*to) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSnapshots) Since(ctx context.Context, pageIDs []string, since time.Time) ([]analytics.Snapshot, error) {
	ids := map[string]bool{}
	for _, id := range pageIDs {
		ids[id] = true
	}
	var out []analytics.Snapshot
	for _, s := range f.rows {
		if ids[s.PageID] && !s.Date.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeCache struct {
	stats map[string]*analytics.DashboardStats
	sets  int
}

func (f *fakeCache) GetStats(ctx context.Context, userID string) (*analytics.DashboardStats, bool) {
	s, ok := f.stats[userID]
	return s, ok
}

func (f *fakeCache) SetStats(ctx context.Context, userID string, stats *analytics.DashboardStats, ttl time.Duration) {
	f.stats[userID] = stats
	f.sets++
}

func TestRecordRequiresPageID(t *testing.T) {
	svc := analytics.NewService(&fakeSnapshots{}, pagerepo.NewInMemoryRepository(), contentrepo.NewInMemoryRepository(), nil, zerolog.Nop())

	_, err := svc.Record(context.Background(), &analytics.Snapshot{})
	if !errors.Is(err, analytics.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRecordFillsDefaults(t *testing.T) {
	repo := &fakeSnapshots{}
	svc := analytics.NewService(repo, pagerepo.NewInMemoryRepository(), contentrepo.NewInMemoryRepository(), nil, zerolog.Nop())

	snap, err := svc.Record(context.Background(), &analytics.Snapshot{PageID: "pg-1", Reach: 10})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if snap.ID == "" {
		t.Error("id should be generated")
	}
	if snap.Date.IsZero() {
		t.Error("date should default to now")
	}
}

func TestDashboardStatsAggregates(t *testing.T) {
	ctx := context.Background()
	pages := pagerepo.NewInMemoryRepository()
	contents := contentrepo.NewInMemoryRepository()
	snapshots := &fakeSnapshots{}

	p1, err := pages.Create(ctx, &page.Page{ID: "pg-1", UserID: "user-1", FacebookPageID: "fb-1", Name: "Shop"})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}
	p2, err := pages.Create(ctx, &page.Page{ID: "pg-2", UserID: "user-1", FacebookPageID: "fb-2", Name: "Cafe"})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := contents.Create(ctx, &content.Content{ID: string(rune('a' + i)), UserID: "user-1", Content: "c"}); err != nil {
			t.Fatalf("create content: %v", err)
		}
	}

	now := time.Now()
	snapshots.rows = []analytics.Snapshot{
		{ID: "s1", PageID: p1.ID, Date: now.AddDate(0, 0, -1), Reach: 100, Engagements: 10, Spend: decimal.NewFromInt(5)},
		{ID: "s2", PageID: p2.ID, Date: now.AddDate(0, 0, -2), Reach: 300, Engagements: 30, Spend: decimal.NewFromInt(7)},
		// outside the 30 day window, must be ignored
		{ID: "s3", PageID: p1.ID, Date: now.AddDate(0, 0, -45), Reach: 9999, Engagements: 999},
	}

	svc := analytics.NewService(snapshots, pages, contents, nil, zerolog.Nop())
	stats, err := svc.DashboardStats(ctx, "user-1")
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}

	if stats.TotalPosts != 3 || stats.TotalPages != 2 {
		t.Errorf("totals = %d posts / %d pages, want 3 / 2", stats.TotalPosts, stats.TotalPages)
	}
	if stats.TotalReach != 400 || stats.TotalEngagement != 40 {
		t.Errorf("reach/engagement = %d/%d, want 400/40", stats.TotalReach, stats.TotalEngagement)
	}
	if !stats.TotalSpend.Equal(decimal.NewFromInt(12)) {
		t.Errorf("TotalSpend = %s, want 12", stats.TotalSpend)
	}
	if math.Abs(stats.AvgEngagementRate-10.0) > 1e-9 {
		t.Errorf("AvgEngagementRate = %f, want 10", stats.AvgEngagementRate)
	}
}

func TestDashboardStatsEmptyUser(t *testing.T) {
	svc := analytics.NewService(&fakeSnapshots{}, pagerepo.NewInMemoryRepository(), contentrepo.NewInMemoryRepository(), nil, zerolog.Nop())

	stats, err := svc.DashboardStats(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	if stats.TotalPosts != 0 || stats.TotalPages != 0 || stats.AvgEngagementRate != 0 {
		t.Errorf("stats = %+v, want zeros", stats)
	}
	if !stats.TotalSpend.Equal(decimal.Zero) {
		t.Errorf("TotalSpend = %s, want 0", stats.TotalSpend)
	}
}

func TestDashboardStatsUsesCache(t *testing.T) {
	cache := &fakeCache{stats: map[string]*analytics.DashboardStats{}}
	svc := analytics.NewService(&fakeSnapshots{}, pagerepo.NewInMemoryRepository(), contentrepo.NewInMemoryRepository(), cache, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.DashboardStats(ctx, "user-1"); err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	if _, err := svc.DashboardStats(ctx, "user-1"); err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("cache hit should skip recomputation, sets = %d", cache.sets)
	}
}
