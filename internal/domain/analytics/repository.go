package analytics

import (
	"context"
	"time"
)

// Repository exposes data access for analytics snapshots.
type Repository interface {
	Create(ctx context.Context, s *Snapshot) (*Snapshot, error)
	Range(ctx context.Context, pageID string, from, to *time.Time) ([]Snapshot, error)
	Since(ctx context.Context, pageIDs []string, since time.Time) ([]Snapshot, error)
}

// StatsCache caches dashboard aggregates for a short TTL.
type StatsCache interface {
	GetStats(ctx context.Context, userID string) (*DashboardStats, bool)
	SetStats(ctx context.Context, userID string, stats *DashboardStats, ttl time.Duration)
}
