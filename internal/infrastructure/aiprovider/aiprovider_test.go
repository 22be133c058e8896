package aiprovider

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pagepilot/pagepilot/internal/domain/generation"
)

func TestOpenAIUnconfiguredServesTemplate(t *testing.T) {
	c := NewOpenAIClient("")

	if c.Available() {
		t.Fatal("client without key must report unavailable")
	}

	resp, err := c.Generate(context.Background(), generation.Request{
		Prompt:      "eco-friendly coffee",
		ContentType: generation.ContentTypePost,
	})
	if err != nil {
		t.Fatalf("unconfigured generate should not error: %v", err)
	}
	if resp.Model != "gpt-5-fallback" {
		t.Fatalf("expected gpt-5-fallback, got %s", resp.Model)
	}
	if !strings.Contains(resp.Content, "eco-friendly coffee") {
		t.Fatal("template output must embed the prompt")
	}
}

func TestClaudeUnconfiguredServesTemplateWithEstimatedUsage(t *testing.T) {
	c := NewClaudeClient("", 30*time.Second)

	resp, err := c.Generate(context.Background(), generation.Request{
		Prompt:      "new gym membership deal",
		ContentType: generation.ContentTypeAd,
		Style:       generation.StyleWitty,
	})
	if err != nil {
		t.Fatalf("unconfigured generate should not error: %v", err)
	}
	if resp.Model != "claude-fallback" {
		t.Fatalf("expected claude-fallback, got %s", resp.Model)
	}
	if !strings.Contains(strings.ToLower(resp.Content), "new gym membership deal") {
		t.Fatal("template output must embed the prompt")
	}
	if resp.Usage == nil || resp.Usage.CompletionTokens == 0 {
		t.Fatal("fallback response should estimate token usage")
	}
}

func TestPerplexityUnconfiguredServesTemplateWithSources(t *testing.T) {
	c := NewPerplexityClient("", 30*time.Second)

	resp, err := c.Generate(context.Background(), generation.Request{
		Prompt:      "remote work trends",
		ContentType: generation.ContentTypeReport,
	})
	if err != nil {
		t.Fatalf("unconfigured generate should not error: %v", err)
	}
	if resp.Model != "perplexity-fallback" {
		t.Fatalf("expected perplexity-fallback, got %s", resp.Model)
	}
	if len(resp.Sources) == 0 {
		t.Fatal("research fallback must carry sources")
	}
	if !strings.Contains(resp.Content, "remote work trends") {
		t.Fatal("template output must embed the prompt")
	}
}

func TestClaudeModelIDMapping(t *testing.T) {
	if claudeModelID(generation.ModelClaudeOpus) != "claude-3-opus-20240229" {
		t.Fatal("opus should map to the opus API id")
	}
	if claudeModelID(generation.ModelClaudeSonnet) != "claude-3-sonnet-20240229" {
		t.Fatal("sonnet should map to the sonnet API id")
	}
}
