package bot

import "testing"

func TestClassifySentiment(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"Thank you so much, this is great!", "positive"},
		{"I love this product", "positive"},
		{"This is terrible, I want a refund", "negative"},
		{"I'm very disappointed", "negative"},
		{"What are your opening hours?", "neutral"},
		{"", "neutral"},
	}
	for _, tc := range cases {
		if got := ClassifySentiment(tc.message); got != tc.want {
			t.Errorf("ClassifySentiment(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestClassifySentimentNegativeWinsOverPositive(t *testing.T) {
	// "great" and "refund" both present; negative keywords are checked first.
	if got := ClassifySentiment("great product but I need a refund"); got != "negative" {
		t.Errorf("got %q, want negative", got)
	}
}

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"How much does the premium plan cost?", "pricing"},
		{"I have a problem with my order status", "support"},
		{"I want to buy two of these", "purchase"},
		{"Hello there", "greeting"},
		{"Do you ship to Canada?", "general"},
	}
	for _, tc := range cases {
		if got := ClassifyIntent(tc.message); got != tc.want {
			t.Errorf("ClassifyIntent(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}
