package generation

import "testing"

func TestRecommend(t *testing.T) {
	cases := []struct {
		name        string
		req         Request
		wantPrimary Model
	}{
		{"research prefers perplexity", Request{IncludeResearch: true}, ModelPerplexitySonar},
		{"report prefers perplexity", Request{ContentType: ContentTypeReport}, ModelPerplexitySonar},
		{"witty prefers claude", Request{Style: StyleWitty}, ModelClaudeSonnet},
		{"ad prefers gpt-5", Request{ContentType: ContentTypeAd}, ModelGPT5},
		{"audience targeting prefers gpt-5", Request{TargetAudience: "runners"}, ModelGPT5},
		{"default prefers gpt-5", Request{ContentType: ContentTypePost}, ModelGPT5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Recommend(tc.req)
			if rec.Primary != tc.wantPrimary {
				t.Fatalf("Recommend().Primary = %s, want %s", rec.Primary, tc.wantPrimary)
			}
			if rec.Alternative == "" || rec.Reasoning == "" {
				t.Fatal("recommendation must carry an alternative and reasoning")
			}
		})
	}
}
