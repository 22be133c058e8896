package adintel

import "strings"

var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"E-commerce", []string{"shop", "buy", "sale", "product"}},
	{"Technology", []string{"tech", "software", "app", "digital"}},
	{"Healthcare", []string{"health", "medical", "wellness", "fitness"}},
	{"Education", []string{"learn", "course", "training", "education"}},
	{"Finance", []string{"bank", "loan", "invest", "money"}},
}

// Categorize assigns an industry bucket by keyword matching over the
// lowercased text. Unmatched text falls into General.
func Categorize(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return "General"
}
