package aiprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pagepilot/pagepilot/internal/domain/generation"
)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"
)

// ClaudeClient adapts the Anthropic messages API. Without an API key it
// serves a Claude-flavored template bank so comparisons always get output.
type ClaudeClient struct {
	apiKey string
	http   *resty.Client
}

// NewClaudeClient builds the adapter. apiKey may be empty.
func NewClaudeClient(apiKey string, timeout time.Duration) *ClaudeClient {
	return &ClaudeClient{
		apiKey: apiKey,
		http: resty.New().
			SetBaseURL(anthropicBaseURL).
			SetTimeout(timeout),
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model string `json:"model"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate produces content via the messages endpoint, prefixing the prompt
// with a style instruction for expressive requests.
func (c *ClaudeClient) Generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	prompt := stylePrefix(req.Style) + req.Prompt

	if !c.Available() {
		content := c.template(req.ContentType, req.Prompt)
		return &generation.Response{
			Content:  content,
			Model:    "claude-fallback",
			Provider: "Anthropic",
			Usage: &generation.Usage{
				PromptTokens:     len(prompt) / 4,
				CompletionTokens: len(content) / 4,
			},
		}, nil
	}

	var out anthropicResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-API-Key", c.apiKey).
		SetHeader("Anthropic-Version", anthropicVersion).
		SetBody(anthropicRequest{
			Model:     claudeModelID(req.Model),
			MaxTokens: 1024,
			Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
		}).
		SetResult(&out).
		SetError(&out).
		Post("/messages")
	if err != nil {
		return nil, fmt.Errorf("anthropic messages: %w", err)
	}
	if resp.IsError() {
		msg := "unknown error"
		if out.Error != nil {
			msg = out.Error.Message
		}
		return nil, fmt.Errorf("anthropic messages: status %d: %s", resp.StatusCode(), msg)
	}

	var text strings.Builder
	for _, block := range out.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &generation.Response{
		Content:  text.String(),
		Model:    string(req.Model),
		Provider: "Anthropic",
		Usage: &generation.Usage{
			PromptTokens:     out.Usage.InputTokens,
			CompletionTokens: out.Usage.OutputTokens,
		},
	}, nil
}

// Info describes the backend for model listings.
func (c *ClaudeClient) Info() generation.BackendInfo {
	return generation.BackendInfo{
		Name:     "Claude",
		Provider: "Anthropic",
		Models:   []string{"claude-3-sonnet", "claude-3-opus"},
		Capabilities: []string{
			"Text generation",
			"Creative writing",
			"Analysis and reasoning",
			"Long-form content",
		},
		Strengths: []string{
			"Nuanced understanding",
			"Creative and thoughtful responses",
			"Excellent at following instructions",
		},
	}
}

// Available reports whether an API key was configured.
func (c *ClaudeClient) Available() bool {
	return c.apiKey != ""
}

func claudeModelID(model generation.Model) string {
	if model == generation.ModelClaudeOpus {
		return "claude-3-opus-20240229"
	}
	return "claude-3-sonnet-20240229"
}

func stylePrefix(style generation.Style) string {
	switch style {
	case generation.StyleCasual:
		return "Write in a friendly, conversational tone that feels personal and approachable. "
	case generation.StyleWitty:
		return "Write with humor and cleverness that entertains while informing. "
	case generation.StyleEmotional:
		return "Write with emotional resonance that connects deeply with the audience. "
	case generation.StyleProfessional:
		return "Write in a professional, authoritative tone that builds trust and credibility. "
	}
	return ""
}

func (c *ClaudeClient) template(contentType generation.ContentType, prompt string) string {
	switch contentType {
	case generation.ContentTypeAd:
		return fmt.Sprintf(`🚀 Transform Your Results with AI

Struggling with %s? You're not alone. Our AI-powered platform has helped over 10,000 businesses achieve breakthrough results.

✅ Increase efficiency by 300%%
✅ Save 20+ hours per week
✅ Boost engagement by 150%%

👆 Click to claim your discount and start your transformation today!

#AIAutomation #BusinessResults`, strings.ToLower(prompt))
	case generation.ContentTypeStory:
		return fmt.Sprintf(`Behind the scenes: %s

Our journey started with a simple question - what if we could make this process effortless and enjoyable?

After months of development and testing, we're excited to share what we've built.

Swipe to see the results our early users are achieving →

What would you like to transform in your business? Share in the comments!`, prompt)
	case generation.ContentTypeCaption:
		return fmt.Sprintf(`%s ✨

This is what happens when innovation meets passion. Every detail matters, every result counts.

What's your next breakthrough going to be?

#Innovation #Excellence #Results`, prompt)
	default:
		return fmt.Sprintf(`🎯 %s

Discover how cutting-edge AI can transform your approach to this challenge. Our platform combines intelligent automation with human creativity to deliver exceptional results.

🔹 Smart Solutions: Leverage AI-powered insights for better decision making
🔹 Proven Results: Join thousands who've achieved their goals with our platform
🔹 Expert Support: Get guidance from our team of specialists

✨ Comment below or DM us to learn more!

#AIInnovation #DigitalTransformation #BusinessGrowth`, prompt)
	}
}
