package generation

import (
	"context"
	"testing"
)

func TestCompareLabelsStrengths(t *testing.T) {
	d := newTestDispatcher(
		staticBackend("OpenAI", "gpt-5", "short ✅", nil),
		staticBackend("Anthropic", "claude-3-sonnet", "a much longer creative answer without markers", nil),
		staticBackend("Perplexity AI", "perplexity-sonar", "cited answer", []string{"Industry Research Reports"}),
	)

	cmp := d.Compare(context.Background(), Request{Prompt: "spring sale", ContentType: ContentTypePost})

	if len(cmp.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(cmp.Results))
	}
	if cmp.BestForCreativity != string(ModelClaudeSonnet) {
		t.Fatalf("longest content should win creativity, got %s", cmp.BestForCreativity)
	}
	if cmp.BestForAccuracy != string(ModelPerplexitySonar) {
		t.Fatalf("cited content should win accuracy, got %s", cmp.BestForAccuracy)
	}
	if cmp.BestForEngagement != string(ModelGPT5) {
		t.Fatalf("emoji markers should win engagement, got %s", cmp.BestForEngagement)
	}
	if cmp.Recommended != string(ModelGPT5) {
		t.Fatalf("plain post should recommend gpt-5, got %s", cmp.Recommended)
	}
}

func TestCompareSurvivesBackendFailures(t *testing.T) {
	d := newTestDispatcher(
		failingBackend("OpenAI"),
		failingBackend("Anthropic"),
		failingBackend("Perplexity AI"),
	)

	cmp := d.Compare(context.Background(), Request{Prompt: "holiday promo", ContentType: ContentTypeAd})

	if len(cmp.Results) != 3 {
		t.Fatalf("expected 3 results even on failure, got %d", len(cmp.Results))
	}
	for model, resp := range cmp.Results {
		if resp == nil || resp.Model != FallbackModel {
			t.Fatalf("branch %s should degrade to a template response", model)
		}
	}
}
