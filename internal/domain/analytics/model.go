package analytics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks request validation failures.
var ErrInvalidInput = errors.New("invalid analytics input")

// Snapshot is one day of page metrics. Snapshots are append only.
type Snapshot struct {
	ID          string          `json:"id"`
	PageID      string          `json:"pageId"`
	ContentID   *string         `json:"contentId,omitempty"`
	Date        time.Time       `json:"date"`
	Reach       int             `json:"reach"`
	Impressions int             `json:"impressions"`
	Engagements int             `json:"engagements"`
	Likes       int             `json:"likes"`
	Comments    int             `json:"comments"`
	Shares      int             `json:"shares"`
	Clicks      int             `json:"clicks"`
	Spend       decimal.Decimal `json:"spend"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// DashboardStats aggregates the last 30 days for a user's dashboard.
type DashboardStats struct {
	TotalPosts        int64           `json:"totalPosts"`
	TotalPages        int             `json:"totalPages"`
	TotalReach        int             `json:"totalReach"`
	TotalEngagement   int             `json:"totalEngagement"`
	AvgEngagementRate float64         `json:"avgEngagementRate"`
	TotalSpend        decimal.Decimal `json:"totalSpend"`
}
