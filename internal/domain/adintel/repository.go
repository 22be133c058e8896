package adintel

import "context"

// Repository exposes data access for ad intelligence snapshots.
type Repository interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]Ad, error)
	Create(ctx context.Context, ad *Ad) (*Ad, error)
}

// AdsLibrary is the ads archive search client. Implementations may serve
// demo data when no platform token is configured.
type AdsLibrary interface {
	SearchAds(ctx context.Context, searchTerms string, limit int) ([]Ad, error)
}
