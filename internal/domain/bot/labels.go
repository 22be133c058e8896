package bot

import "strings"

var positiveWords = []string{
	"thank", "thanks", "great", "awesome", "love", "perfect", "excellent", "good", "helpful",
}

var negativeWords = []string{
	"bad", "angry", "terrible", "awful", "hate", "worst", "disappointed", "refund", "broken",
}

// ClassifySentiment labels a message positive, negative or neutral by
// keyword matching against the lowercased text.
func ClassifySentiment(message string) string {
	lower := strings.ToLower(message)
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			return "negative"
		}
	}
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			return "positive"
		}
	}
	return "neutral"
}

// ClassifyIntent maps a message to a coarse intent bucket.
func ClassifyIntent(message string) string {
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, "price", "cost", "how much", "pricing"):
		return "pricing"
	case containsAny(lower, "help", "support", "problem", "issue"):
		return "support"
	case containsAny(lower, "buy", "order", "purchase", "checkout"):
		return "purchase"
	case containsAny(lower, "hello", "hi ", "hey", "good morning", "good afternoon"):
		return "greeting"
	}
	return "general"
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
