package aiprovider

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pagepilot/pagepilot/internal/domain/generation"
)

const contentSystemPrompt = `You are an expert social media content creator specializing in Facebook posts. Create engaging, authentic content that drives engagement.

Guidelines:
- Keep posts conversational and engaging
- Use appropriate hashtags sparingly (2-3 max)
- Include a clear call-to-action when appropriate
- Tailor tone to the content type
- For posts: aim for 50-150 words
- For stories: keep it brief and punchy
- For ads: focus on benefits and clear CTA

Generate only the content text, no additional formatting or explanations.`

const messengerSystemPrompt = `You are a helpful customer service AI assistant for a Facebook page. Respond to customer messages in a friendly, professional manner. Keep responses concise and helpful.

Guidelines:
- Be friendly and professional
- Keep responses under 100 words
- Provide helpful information
- If you can't help, direct them to contact a human
- Use natural, conversational language`

// OpenAIClient adapts the OpenAI chat completion API to the generation
// backend contract. Without an API key it serves the local template bank.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient builds the adapter. apiKey may be empty.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	c := &OpenAIClient{}
	if apiKey != "" {
		c.client = openai.NewClient(apiKey)
	}
	return c
}

// Generate produces content via gpt-5 chat completion.
func (c *OpenAIClient) Generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	if !c.Available() {
		return &generation.Response{
			Content:  generation.Template(req.ContentType, req.Prompt),
			Model:    "gpt-5-fallback",
			Provider: "OpenAI",
		}, nil
	}

	system := fmt.Sprintf("%s\n\nContent type: %s", contentSystemPrompt, req.ContentType)
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: "gpt-5",
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai returned no choices")
	}

	return &generation.Response{
		Content:  resp.Choices[0].Message.Content,
		Model:    "gpt-5",
		Provider: "OpenAI",
		Usage: &generation.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

// GenerateImage creates a social media image with DALL-E.
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if !c.Available() {
		return "", errors.New("openai api key not configured")
	}

	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:   openai.CreateImageModelDallE3,
		Prompt:  fmt.Sprintf("Create a professional social media image for Facebook. %s. Style: modern, clean, engaging, suitable for social media.", prompt),
		N:       1,
		Size:    openai.CreateImageSize1024x1024,
		Quality: openai.CreateImageQualityStandard,
	})
	if err != nil {
		return "", fmt.Errorf("openai image generation: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", errors.New("openai returned no image")
	}
	return resp.Data[0].URL, nil
}

// GenerateMessengerResponse answers a customer message for the bot.
func (c *OpenAIClient) GenerateMessengerResponse(ctx context.Context, message, contextNote string) (string, error) {
	if !c.Available() {
		return "", errors.New("openai api key not configured")
	}

	system := messengerSystemPrompt
	if contextNote != "" {
		system = fmt.Sprintf("%s\n\nContext: %s", system, contextNote)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: "gpt-5",
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("openai messenger response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Info describes the backend for model listings.
func (c *OpenAIClient) Info() generation.BackendInfo {
	return generation.BackendInfo{
		Name:     "GPT-5",
		Provider: "OpenAI",
		Models:   []string{"gpt-5"},
		Capabilities: []string{
			"Text generation",
			"Image generation",
			"Conversational responses",
		},
		Strengths: []string{
			"Balanced quality and speed",
			"Strong conversion copy",
			"Reliable instruction following",
		},
	}
}

// Available reports whether an API key was configured.
func (c *OpenAIClient) Available() bool {
	return c.client != nil
}
