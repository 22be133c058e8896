package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AdIntelligence models a competitor ad snapshot captured from the ads
// library. Rows are append only.
type AdIntelligence struct {
	ID             string          `gorm:"type:uuid;primaryKey"`
	UserID         string          `gorm:"type:uuid;index;not null"`
	AdID           string          `gorm:"type:varchar(128);not null"`
	PageID         string          `gorm:"type:varchar(64)"`
	PageName       string          `gorm:"type:varchar(255)"`
	AdContent      string          `gorm:"type:text"`
	AdImageURL     string          `gorm:"type:text"`
	Category       string          `gorm:"type:varchar(64)"`
	StartDate      *time.Time
	EndDate        *time.Time
	IsActive       bool            `gorm:"default:true"`
	Spend          decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	Impressions    int             `gorm:"default:0"`
	TargetAudience datatypes.JSON  `gorm:"type:jsonb;default:'{}'"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (AdIntelligence) TableName() string {
	return "ad_intelligence"
}
