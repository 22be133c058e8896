package adintel

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks request validation failures.
var ErrInvalidInput = errors.New("invalid ad intelligence input")

// Ad is a competitor ad snapshot from the ads library.
type Ad struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	AdID           string          `json:"adId"`
	PageID         string          `json:"pageId"`
	PageName       string          `json:"pageName"`
	Content        string          `json:"adContent"`
	ImageURL       string          `json:"adImageUrl,omitempty"`
	Category       string          `json:"category"`
	StartDate      *time.Time      `json:"startDate,omitempty"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
	IsActive       bool            `json:"isActive"`
	Spend          decimal.Decimal `json:"spend"`
	Impressions    int             `json:"impressions"`
	TargetAudience string          `json:"targetAudience,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}
