package generation

import "fmt"

// FallbackModel identifies responses served from the local template bank.
const FallbackModel = "fallback-template"

// FallbackProvider is the provider label for template responses.
const FallbackProvider = "Internal"

// Template renders the local fallback text for a content type. Every
// template embeds the prompt verbatim.
func Template(contentType ContentType, prompt string) string {
	switch contentType {
	case ContentTypeAd:
		return fmt.Sprintf(`🎯 %s

Stop struggling with content creation! Our AI-powered platform generates professional posts, schedules them automatically, and tracks your success in one place.

✅ Save 10+ hours per week
✅ Increase engagement by 300%%
✅ Automate customer responses
✅ Professional analytics dashboard

🚀 Start your FREE trial today!

#SocialMediaTools #MarketingAutomation`, prompt)
	case ContentTypeStory:
		return fmt.Sprintf(`📱 %s

Quick tip: AI is changing the game for social media!

Our platform just helped a small business increase their engagement by 300%% in 30 days.

Ready to see what AI can do for you?

#StoryTime #AISuccess #SocialMediaWin`, prompt)
	case ContentTypeCaption:
		return fmt.Sprintf(`%s ✨

This is what happens when innovation meets passion. Every detail matters, every result counts.

What's your next breakthrough going to be?

#Innovation #Excellence #Results`, prompt)
	case ContentTypeArticle:
		return fmt.Sprintf(`# %s

Navigating this topic well takes planning, the right tools, and consistent execution. Below is a practical overview you can adapt to your own audience.

## Why it matters

Businesses that invest here see measurably better engagement and retention. Start with clear objectives and a realistic cadence.

## Getting started

1. Define what success looks like for your pages.
2. Build a content calendar around your audience's peak hours.
3. Review the numbers weekly and adjust.

## Takeaway

Small, consistent improvements compound. Pick one change from this article and ship it this week.`, prompt)
	case ContentTypeReport:
		return fmt.Sprintf(`📊 Report: %s

**Executive Summary:**
Analysis of current conditions, emerging trends, and strategic implications for teams operating in this space.

**Key Findings:**
1. Growth is exceeding earlier projections
2. Technology adoption is accelerating across segments
3. Audience behavior is shifting toward data-driven channels

**Recommendation:**
Prioritize adaptability and keep measurement front and center.`, prompt)
	default:
		return fmt.Sprintf(`🎯 Exciting news! %s

Ready to take your social media to the next level? Our AI-powered platform makes it effortless to create engaging content that connects with your audience.

✨ What makes us different:
• Smart content generation
• Automated scheduling
• Real-time analytics
• Messenger bot integration

👇 What's your biggest social media challenge? Let us know in the comments!

#SocialMediaMarketing #ContentCreation #BusinessGrowth`, prompt)
	}
}
