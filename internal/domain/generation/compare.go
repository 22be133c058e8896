package generation

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Comparison is the fan-out result across all three backends plus heuristic
// recommendations derived from the outputs.
type Comparison struct {
	Results           map[string]*Response `json:"results"`
	BestForCreativity string               `json:"bestForCreativity"`
	BestForAccuracy   string               `json:"bestForAccuracy"`
	BestForEngagement string               `json:"bestForEngagement"`
	Recommended       string               `json:"recommended"`
}

// Compare runs the same request against every backend concurrently. Each
// branch degrades independently, so the comparison always has three entries.
func (d *Dispatcher) Compare(ctx context.Context, req Request) *Comparison {
	var (
		g          errgroup.Group
		openaiResp *Response
		claudeResp *Response
		pplxResp   *Response
	)

	g.Go(func() error {
		r := req
		r.Model = ModelGPT5
		openaiResp = d.Generate(ctx, r)
		return nil
	})
	g.Go(func() error {
		r := req
		r.Model = ModelClaudeSonnet
		claudeResp = d.Generate(ctx, r)
		return nil
	})
	g.Go(func() error {
		r := req
		r.Model = ModelPerplexitySonar
		pplxResp = d.Generate(ctx, r)
		return nil
	})
	_ = g.Wait()

	results := map[string]*Response{
		string(ModelGPT5):            openaiResp,
		string(ModelClaudeSonnet):    claudeResp,
		string(ModelPerplexitySonar): pplxResp,
	}

	autoPick := req
	autoPick.Model = ModelAuto

	return &Comparison{
		Results:           results,
		BestForCreativity: longestContent(results),
		BestForAccuracy:   firstWithSources(results),
		BestForEngagement: firstWithEngagementMarkers(results),
		Recommended:       string(ResolveModel(autoPick)),
	}
}

// longestContent treats output length as a proxy for creative elaboration.
func longestContent(results map[string]*Response) string {
	best := ""
	bestLen := -1
	for _, model := range comparisonOrder {
		resp := results[model]
		if resp != nil && len(resp.Content) > bestLen {
			best = model
			bestLen = len(resp.Content)
		}
	}
	return best
}

// firstWithSources prefers cited output as a proxy for factual accuracy.
func firstWithSources(results map[string]*Response) string {
	for _, model := range comparisonOrder {
		if resp := results[model]; resp != nil && len(resp.Sources) > 0 {
			return model
		}
	}
	return string(ModelPerplexitySonar)
}

// firstWithEngagementMarkers looks for checklist and target emoji commonly
// used in high-engagement posts.
func firstWithEngagementMarkers(results map[string]*Response) string {
	for _, model := range comparisonOrder {
		resp := results[model]
		if resp == nil {
			continue
		}
		if strings.Contains(resp.Content, "✅") || strings.Contains(resp.Content, "🎯") {
			return model
		}
	}
	return string(ModelGPT5)
}

var comparisonOrder = []string{
	string(ModelGPT5),
	string(ModelClaudeSonnet),
	string(ModelPerplexitySonar),
}
