package bot

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no bot exists for the page.
	ErrNotFound = errors.New("messenger bot not found")
	// ErrAlreadyExists is returned when creating a second bot for a page.
	ErrAlreadyExists = errors.New("messenger bot already exists for page")
	// ErrInactive is returned when a disabled bot is asked to respond.
	ErrInactive = errors.New("messenger bot is inactive")
	// ErrInvalidInput marks request validation failures.
	ErrInvalidInput = errors.New("invalid bot input")
)

// Bot is the per-page messenger bot configuration with rolling counters.
type Bot struct {
	ID                string    `json:"id"`
	PageID            string    `json:"pageId"`
	IsActive          bool      `json:"isActive"`
	WelcomeMessage    string    `json:"welcomeMessage"`
	FallbackMessage   string    `json:"fallbackMessage"`
	AIModel           string    `json:"aiModel"`
	Settings          string    `json:"settings"`
	ConversationCount int       `json:"conversationCount"`
	SuccessCount      int       `json:"successCount"`
	Satisfaction      float64   `json:"satisfaction"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Message is one exchanged message, labeled on the user side.
type Message struct {
	ID              string    `json:"id"`
	BotID           string    `json:"botId"`
	PageID          string    `json:"pageId"`
	ConversationKey string    `json:"conversationKey,omitempty"`
	Sender          string    `json:"sender"`
	Message         string    `json:"message"`
	Sentiment       string    `json:"sentiment,omitempty"`
	Intent          string    `json:"intent,omitempty"`
	ResponseTimeMs  int64     `json:"responseTimeMs,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// LearningRecord is a sampled question/answer pair the bot can replay.
type LearningRecord struct {
	ID       string `json:"id"`
	BotID    string `json:"botId"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	UseCount int    `json:"useCount"`
}

// Reply is the bot's answer plus the labels attached to the exchange.
type Reply struct {
	Answer       string  `json:"response"`
	Source       string  `json:"source"`
	Sentiment    string  `json:"sentiment"`
	Intent       string  `json:"intent"`
	Satisfaction float64 `json:"satisfaction"`
}

// Answer sources.
const (
	SourceLearned   = "learned"
	SourceGenerated = "generated"
	SourceFallback  = "fallback"
)

// UpdateInput carries the mutable bot fields.
type UpdateInput struct {
	IsActive        *bool
	WelcomeMessage  *string
	FallbackMessage *string
	AIModel         *string
	Settings        *string
}
