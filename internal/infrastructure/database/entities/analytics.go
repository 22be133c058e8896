package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsSnapshot models one day of page metrics. Rows are append only.
type AnalyticsSnapshot struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	PageID      string          `gorm:"type:uuid;index;not null"`
	ContentID   *string         `gorm:"type:uuid;index"`
	Date        time.Time       `gorm:"index;not null"`
	Reach       int             `gorm:"default:0"`
	Impressions int             `gorm:"default:0"`
	Engagements int             `gorm:"default:0"`
	Likes       int             `gorm:"default:0"`
	Comments    int             `gorm:"default:0"`
	Shares      int             `gorm:"default:0"`
	Clicks      int             `gorm:"default:0"`
	Spend       decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}

func (AnalyticsSnapshot) TableName() string {
	return "analytics"
}
