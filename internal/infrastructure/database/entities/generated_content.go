package entities

import "time"

// GeneratedContent models a piece of AI generated content and its publishing
// lifecycle (draft -> scheduled -> published/failed).
type GeneratedContent struct {
	ID          string     `gorm:"type:uuid;primaryKey"`
	UserID      string     `gorm:"type:uuid;index;not null"`
	PageID      *string    `gorm:"type:uuid;index"`
	Title       string     `gorm:"type:varchar(255)"`
	Content     string     `gorm:"type:text;not null"`
	ContentType string     `gorm:"type:varchar(32);default:post"`
	AIModel     string     `gorm:"column:ai_model;type:varchar(64)"`
	Prompt      string     `gorm:"type:text"`
	ImageURL    string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(32);default:draft;index"`
	ScheduledAt *time.Time `gorm:"index"`
	PublishedAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (GeneratedContent) TableName() string {
	return "generated_content"
}
