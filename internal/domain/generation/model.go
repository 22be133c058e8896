package generation

import (
	"errors"
	"time"
)

// Model identifies an AI backend model selectable by clients.
type Model string

const (
	ModelGPT5            Model = "gpt-5"
	ModelClaudeSonnet    Model = "claude-3-sonnet"
	ModelClaudeOpus      Model = "claude-3-opus"
	ModelPerplexitySonar Model = "perplexity-sonar"
	ModelAuto            Model = "auto"
)

// Valid reports whether m is a known model identifier.
func (m Model) Valid() bool {
	switch m {
	case ModelGPT5, ModelClaudeSonnet, ModelClaudeOpus, ModelPerplexitySonar, ModelAuto:
		return true
	}
	return false
}

// ContentType identifies the kind of social content being generated.
type ContentType string

const (
	ContentTypePost    ContentType = "post"
	ContentTypeAd      ContentType = "ad"
	ContentTypeStory   ContentType = "story"
	ContentTypeCaption ContentType = "caption"
	ContentTypeArticle ContentType = "article"
	ContentTypeReport  ContentType = "report"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypePost, ContentTypeAd, ContentTypeStory, ContentTypeCaption, ContentTypeArticle, ContentTypeReport:
		return true
	}
	return false
}

// Style selects the writing voice for generated content.
type Style string

const (
	StyleProfessional Style = "professional"
	StyleCasual       Style = "casual"
	StyleWitty        Style = "witty"
	StyleEmotional    Style = "emotional"
)

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	switch s {
	case StyleProfessional, StyleCasual, StyleWitty, StyleEmotional:
		return true
	}
	return false
}

// ErrEmptyPrompt is returned when a request carries no usable prompt.
var ErrEmptyPrompt = errors.New("prompt must not be empty")

// ErrInvalidInput marks unknown enum values in a generation request.
var ErrInvalidInput = errors.New("invalid generation input")

// Request describes one content generation call.
type Request struct {
	Prompt          string
	ContentType     ContentType
	Style           Style
	Model           Model
	IncludeResearch bool
	TargetAudience  string
}

// Usage carries token accounting reported by a backend.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
}

// Response is the normalized result every backend produces.
type Response struct {
	Content     string    `json:"content"`
	Model       string    `json:"model"`
	Provider    string    `json:"provider"`
	Sources     []string  `json:"sources,omitempty"`
	Usage       *Usage    `json:"usage,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// BackendInfo describes a backend for the model listing endpoint.
type BackendInfo struct {
	Name         string   `json:"name"`
	Provider     string   `json:"provider"`
	Models       []string `json:"models"`
	Capabilities []string `json:"capabilities"`
	Strengths    []string `json:"strengths"`
	Available    bool     `json:"available"`
}
