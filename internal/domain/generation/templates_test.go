package generation

import (
	"strings"
	"testing"
)

func TestTemplateEmbedsPromptForEveryContentType(t *testing.T) {
	prompt := "eco-friendly coffee"
	types := []ContentType{
		ContentTypePost,
		ContentTypeAd,
		ContentTypeStory,
		ContentTypeCaption,
		ContentTypeArticle,
		ContentTypeReport,
	}

	for _, ct := range types {
		t.Run(string(ct), func(t *testing.T) {
			out := Template(ct, prompt)
			if out == "" {
				t.Fatal("template must not be empty")
			}
			if !strings.Contains(out, prompt) {
				t.Fatalf("template for %s does not contain the prompt: %q", ct, out)
			}
		})
	}
}

func TestTemplateUnknownTypeUsesPostTemplate(t *testing.T) {
	prompt := "grand opening"
	if Template(ContentType("unknown"), prompt) != Template(ContentTypePost, prompt) {
		t.Fatal("unknown content type should reuse the post template")
	}
}
