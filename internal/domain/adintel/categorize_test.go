package adintel

import "testing"

func TestCategorize(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Shop our summer sale today", "E-commerce"},
		{"The best software for your team", "Technology"},
		{"Wellness retreats for busy people", "Healthcare"},
		{"Learn Spanish in 30 days", "Education"},
		{"Invest smarter with our advisors", "Finance"},
		{"Visit our restaurant downtown", "General"},
		{"", "General"},
	}
	for _, tc := range cases {
		if got := Categorize(tc.text); got != tc.want {
			t.Errorf("Categorize(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	if got := Categorize("BUY NOW"); got != "E-commerce" {
		t.Errorf("Categorize(BUY NOW) = %q, want E-commerce", got)
	}
}

func TestCategorizeFirstMatchWins(t *testing.T) {
	// Both e-commerce and technology keywords present; ordering is stable.
	if got := Categorize("buy our software"); got != "E-commerce" {
		t.Errorf("Categorize(buy our software) = %q, want E-commerce", got)
	}
}
