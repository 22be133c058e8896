package generation

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/infrastructure/metrics"
)

// ResolveModel maps a request to the concrete model that should serve it.
// It is a pure function of (model, contentType, style, includeResearch):
// explicit models pass through, "auto" follows a fixed priority of
// research -> perplexity, expressive style -> claude, default -> openai.
func ResolveModel(req Request) Model {
	if req.Model != "" && req.Model != ModelAuto {
		return req.Model
	}
	if req.IncludeResearch || req.ContentType == ContentTypeReport {
		return ModelPerplexitySonar
	}
	switch req.Style {
	case StyleCasual, StyleWitty, StyleEmotional:
		return ModelClaudeSonnet
	}
	return ModelGPT5
}

// Dispatcher routes generation requests to the configured backends and
// guarantees a response: any backend failure is replaced by a template.
type Dispatcher struct {
	openai     Backend
	claude     Backend
	perplexity Backend
	log        zerolog.Logger
	now        func() time.Time
}

// NewDispatcher wires the three backend adapters.
func NewDispatcher(openai, claude, perplexity Backend, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		openai:     openai,
		claude:     claude,
		perplexity: perplexity,
		log:        log.With().Str("component", "generation-dispatcher").Logger(),
		now:        time.Now,
	}
}

// Generate produces content for the request. It never fails: backend errors
// degrade to the local template bank.
func (d *Dispatcher) Generate(ctx context.Context, req Request) *Response {
	model := ResolveModel(req)
	backend := d.backendFor(model)
	if backend == nil {
		d.log.Warn().Str("model", string(model)).Msg("no backend for model, serving template")
		return d.fallback(req)
	}

	start := d.now()
	resp, err := backend.Generate(ctx, req)
	if err != nil {
		info := backend.Info()
		d.log.Warn().Err(err).
			Str("model", string(model)).
			Str("provider", info.Provider).
			Msg("backend failed, serving template")
		metrics.RecordProviderError(info.Provider, "generate")
		return d.fallback(req)
	}

	resp.GeneratedAt = d.now()
	metrics.RecordGeneration(resp.Model, resp.Provider, string(req.ContentType), d.now().Sub(start).Seconds())
	if resp.Usage != nil {
		metrics.RecordTokens(resp.Model, resp.Provider, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	}
	return resp
}

// Backends returns the model listing for every wired backend.
func (d *Dispatcher) Backends() []BackendInfo {
	infos := make([]BackendInfo, 0, 3)
	for _, b := range []Backend{d.openai, d.claude, d.perplexity} {
		if b == nil {
			continue
		}
		info := b.Info()
		info.Available = b.Available()
		infos = append(infos, info)
	}
	return infos
}

func (d *Dispatcher) backendFor(model Model) Backend {
	switch model {
	case ModelGPT5:
		return d.openai
	case ModelClaudeSonnet, ModelClaudeOpus:
		return d.claude
	case ModelPerplexitySonar:
		return d.perplexity
	}
	return nil
}

func (d *Dispatcher) fallback(req Request) *Response {
	metrics.RecordFallback(string(ResolveModel(req)), string(req.ContentType))
	return &Response{
		Content:     Template(req.ContentType, req.Prompt),
		Model:       FallbackModel,
		Provider:    FallbackProvider,
		GeneratedAt: d.now(),
	}
}
