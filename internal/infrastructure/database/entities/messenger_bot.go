package entities

import (
	"time"

	"gorm.io/datatypes"
)

// MessengerBot models the per-page bot configuration and rolling counters.
type MessengerBot struct {
	ID                string         `gorm:"type:uuid;primaryKey"`
	PageID            string         `gorm:"type:uuid;uniqueIndex;not null"`
	IsActive          bool           `gorm:"default:true"`
	WelcomeMessage    string         `gorm:"type:text"`
	FallbackMessage   string         `gorm:"type:text"`
	AIModel           string         `gorm:"column:ai_model;type:varchar(64);default:gpt-5"`
	Settings          datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	ConversationCount int            `gorm:"default:0"`
	SuccessCount      int            `gorm:"default:0"`
	Satisfaction      float64        `gorm:"default:0"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (MessengerBot) TableName() string {
	return "messenger_bots"
}

// Conversation models one message exchanged with a bot. Rows are append only.
type Conversation struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	BotID           string    `gorm:"type:uuid;index;not null"`
	PageID          string    `gorm:"type:uuid;index;not null"`
	ConversationKey string    `gorm:"type:varchar(128);index"`
	Sender          string    `gorm:"type:varchar(16);not null"`
	Message         string    `gorm:"type:text;not null"`
	Sentiment       string    `gorm:"type:varchar(16)"`
	Intent          string    `gorm:"type:varchar(32)"`
	ResponseTimeMs  int64     `gorm:"default:0"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// LearningRecord stores a sampled question/answer pair the bot can replay.
type LearningRecord struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	BotID     string    `gorm:"type:uuid;index;not null"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	UseCount  int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (LearningRecord) TableName() string {
	return "learning_records"
}
