package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type fakeBackend struct {
	info     BackendInfo
	generate func(ctx context.Context, req Request) (*Response, error)
}

func (f *fakeBackend) Generate(ctx context.Context, req Request) (*Response, error) {
	return f.generate(ctx, req)
}

func (f *fakeBackend) Info() BackendInfo { return f.info }

func (f *fakeBackend) Available() bool { return true }

func staticBackend(provider, model, content string, sources []string) *fakeBackend {
	return &fakeBackend{
		info: BackendInfo{Name: provider, Provider: provider},
		generate: func(ctx context.Context, req Request) (*Response, error) {
			return &Response{Content: content, Model: model, Provider: provider, Sources: sources}, nil
		},
	}
}

func failingBackend(provider string) *fakeBackend {
	return &fakeBackend{
		info: BackendInfo{Name: provider, Provider: provider},
		generate: func(ctx context.Context, req Request) (*Response, error) {
			return nil, errors.New("upstream unavailable")
		},
	}
}

func newTestDispatcher(openai, claude, perplexity Backend) *Dispatcher {
	return NewDispatcher(openai, claude, perplexity, zerolog.Nop())
}

func TestResolveModel(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want Model
	}{
		{"explicit model passes through", Request{Model: ModelClaudeOpus}, ModelClaudeOpus},
		{"research routes to perplexity", Request{Model: ModelAuto, IncludeResearch: true}, ModelPerplexitySonar},
		{"report routes to perplexity", Request{Model: ModelAuto, ContentType: ContentTypeReport}, ModelPerplexitySonar},
		{"witty routes to claude", Request{Model: ModelAuto, Style: StyleWitty}, ModelClaudeSonnet},
		{"casual routes to claude", Request{Model: ModelAuto, Style: StyleCasual}, ModelClaudeSonnet},
		{"emotional routes to claude", Request{Model: ModelAuto, Style: StyleEmotional}, ModelClaudeSonnet},
		{"default routes to openai", Request{Model: ModelAuto, ContentType: ContentTypePost}, ModelGPT5},
		{"empty model behaves like auto", Request{Style: StyleProfessional}, ModelGPT5},
		{"research wins over style", Request{Model: ModelAuto, Style: StyleWitty, IncludeResearch: true}, ModelPerplexitySonar},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveModel(tc.req); got != tc.want {
				t.Fatalf("ResolveModel() = %s, want %s", got, tc.want)
			}
			// deterministic for identical input
			if again := ResolveModel(tc.req); again != tc.want {
				t.Fatalf("ResolveModel() not deterministic: %s vs %s", again, tc.want)
			}
		})
	}
}

func TestGenerateDispatchesByModel(t *testing.T) {
	d := newTestDispatcher(
		staticBackend("OpenAI", "gpt-5", "openai output", nil),
		staticBackend("Anthropic", "claude-3-sonnet", "claude output", nil),
		staticBackend("Perplexity AI", "perplexity-sonar", "perplexity output", []string{"src"}),
	)

	resp := d.Generate(context.Background(), Request{Prompt: "launch day", Model: ModelPerplexitySonar})
	if resp.Content != "perplexity output" {
		t.Fatalf("expected perplexity backend, got %q", resp.Content)
	}
	if resp.GeneratedAt.IsZero() {
		t.Fatal("expected GeneratedAt to be stamped")
	}
}

func TestGenerateFallsBackOnBackendError(t *testing.T) {
	d := newTestDispatcher(
		failingBackend("OpenAI"),
		failingBackend("Anthropic"),
		failingBackend("Perplexity AI"),
	)

	req := Request{Prompt: "eco-friendly coffee", ContentType: ContentTypePost, Model: ModelGPT5}
	resp := d.Generate(context.Background(), req)

	if resp.Model != FallbackModel {
		t.Fatalf("expected model %q, got %q", FallbackModel, resp.Model)
	}
	if resp.Provider != FallbackProvider {
		t.Fatalf("expected provider %q, got %q", FallbackProvider, resp.Provider)
	}
	if !strings.Contains(resp.Content, req.Prompt) {
		t.Fatalf("fallback content must embed the prompt, got %q", resp.Content)
	}
}

func TestGenerateFallsBackWhenBackendMissing(t *testing.T) {
	d := newTestDispatcher(nil, nil, nil)

	resp := d.Generate(context.Background(), Request{Prompt: "hello", ContentType: ContentTypeStory})
	if resp.Model != FallbackModel {
		t.Fatalf("expected template response, got model %q", resp.Model)
	}
}
