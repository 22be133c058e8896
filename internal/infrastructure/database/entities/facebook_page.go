package entities

import "time"

// FacebookPage models a connected Facebook page. FacebookPageID carries a
// unique index so the same page cannot be connected twice.
type FacebookPage struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	UserID          string    `gorm:"type:uuid;index;not null"`
	FacebookPageID  string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	PageName        string    `gorm:"type:varchar(255);not null"`
	ProfileImageURL string    `gorm:"type:text"`
	Followers       int       `gorm:"default:0"`
	AccessToken     string    `gorm:"type:text"`
	IsActive        bool      `gorm:"default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (FacebookPage) TableName() string {
	return "facebook_pages"
}
