package handlers

import (
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/adintel"
	"github.com/pagepilot/pagepilot/internal/domain/analytics"
	"github.com/pagepilot/pagepilot/internal/domain/billing"
	"github.com/pagepilot/pagepilot/internal/domain/bot"
	"github.com/pagepilot/pagepilot/internal/domain/content"
	"github.com/pagepilot/pagepilot/internal/domain/generation"
	"github.com/pagepilot/pagepilot/internal/domain/page"
	"github.com/pagepilot/pagepilot/internal/domain/user"
	"github.com/pagepilot/pagepilot/internal/infrastructure/facebook"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	AI        *AIHandler
	User      *UserHandler
	Content   *ContentHandler
	Page      *PageHandler
	Bot       *BotHandler
	Analytics *AnalyticsHandler
	AdIntel   *AdIntelHandler
	Billing   *BillingHandler
}

// NewProvider constructs the handler provider with domain services. oauth
// and graph may be nil when no Facebook app credentials are configured;
// billingService may be nil when billing is not configured.
func NewProvider(
	dispatcher *generation.Dispatcher,
	images content.ImageGenerator,
	userService user.Service,
	contentService content.Service,
	pageService page.Service,
	botService bot.Service,
	analyticsService analytics.Service,
	adIntelService adintel.Service,
	billingService billing.Service,
	oauth *facebook.OAuthClient,
	graph *facebook.GraphClient,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		AI:        NewAIHandler(dispatcher, images, log),
		User:      NewUserHandler(userService, log),
		Content:   NewContentHandler(contentService, log),
		Page:      NewPageHandler(pageService, oauth, graph, log),
		Bot:       NewBotHandler(botService, log),
		Analytics: NewAnalyticsHandler(analyticsService, log),
		AdIntel:   NewAdIntelHandler(adIntelService, log),
		Billing:   NewBillingHandler(billingService, log),
	}
}
