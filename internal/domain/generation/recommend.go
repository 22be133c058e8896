package generation

// Recommendation names the model best suited for a request without calling
// any backend.
type Recommendation struct {
	Primary     Model  `json:"primary"`
	Alternative Model  `json:"alternative"`
	Reasoning   string `json:"reasoning"`
}

// Recommend applies a static decision table over the request shape.
func Recommend(req Request) Recommendation {
	if req.IncludeResearch || req.ContentType == ContentTypeReport {
		return Recommendation{
			Primary:     ModelPerplexitySonar,
			Alternative: ModelGPT5,
			Reasoning:   "Research-backed content benefits from live citations and fact checking.",
		}
	}

	switch req.Style {
	case StyleWitty, StyleEmotional, StyleCasual:
		return Recommendation{
			Primary:     ModelClaudeSonnet,
			Alternative: ModelClaudeOpus,
			Reasoning:   "Expressive styles play to Claude's creative writing strengths.",
		}
	}

	if req.ContentType == ContentTypeAd || req.TargetAudience != "" {
		return Recommendation{
			Primary:     ModelGPT5,
			Alternative: ModelClaudeSonnet,
			Reasoning:   "Conversion copy with audience targeting is GPT-5's strongest use case.",
		}
	}

	return Recommendation{
		Primary:     ModelGPT5,
		Alternative: ModelPerplexitySonar,
		Reasoning:   "General social content defaults to GPT-5 for balanced quality and speed.",
	}
}
