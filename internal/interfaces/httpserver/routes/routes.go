package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pagepilot/pagepilot/internal/config"
	"github.com/pagepilot/pagepilot/internal/infrastructure/auth"
	"github.com/pagepilot/pagepilot/internal/interfaces/httpserver/handlers"
)

// Provider encapsulates route registration.
type Provider struct {
	cfg      *config.Config
	handlers *handlers.Provider
	auth     *auth.Validator
}

// NewProvider builds the route registrar.
func NewProvider(cfg *config.Config, handlerProvider *handlers.Provider, authValidator *auth.Validator) *Provider {
	return &Provider{
		cfg:      cfg,
		handlers: handlerProvider,
		auth:     authValidator,
	}
}

// Register attaches the public demo route and the authenticated /api surface.
func (p *Provider) Register(engine *gin.Engine) {
	// the landing page demo runs without authentication
	engine.POST("/api/demo/generate-content", p.handlers.AI.DemoGenerate)

	api := engine.Group("/api")
	if p.auth != nil {
		api.Use(p.auth.Middleware())
	}

	api.GET("/auth/user", p.handlers.User.Me)
	api.GET("/dashboard/stats", p.handlers.Analytics.DashboardStats)

	api.GET("/facebook-pages", p.handlers.Page.List)
	api.POST("/facebook-pages", p.handlers.Page.Connect)
	api.PUT("/facebook-pages/:id", p.handlers.Page.Update)
	api.DELETE("/facebook-pages/:id", p.handlers.Page.Delete)
	api.GET("/facebook/connect", p.handlers.Page.OAuthConnect)
	api.GET("/facebook/callback", p.handlers.Page.OAuthCallback)
	api.POST("/pages/sync", p.handlers.Page.Sync)

	api.GET("/content", p.handlers.Content.List)
	api.POST("/content/generate", p.handlers.Content.Generate)
	api.GET("/content/scheduled", p.handlers.Content.Scheduled)
	api.PUT("/content/:id", p.handlers.Content.Update)
	api.DELETE("/content/:id", p.handlers.Content.Delete)
	api.POST("/content/:id/publish", p.handlers.Content.Publish)

	api.GET("/messenger-bot/:pageId", p.handlers.Bot.Get)
	api.POST("/messenger-bot", p.handlers.Bot.Create)
	api.PUT("/messenger-bot/:pageId", p.handlers.Bot.Update)
	api.POST("/messenger-bot/:pageId/generate-response", p.handlers.Bot.GenerateResponse)

	api.GET("/ai/models", p.handlers.AI.ListModels)
	api.POST("/ai/compare", p.handlers.AI.Compare)
	api.POST("/ai/recommend", p.handlers.AI.Recommend)

	api.GET("/analytics/:pageId", p.handlers.Analytics.Get)
	api.POST("/analytics", p.handlers.Analytics.Record)

	api.GET("/ad-intelligence", p.handlers.AdIntel.List)
	api.POST("/ad-intelligence/search", p.handlers.AdIntel.Search)

	if p.cfg.StripeConfigured() {
		api.POST("/create-subscription", p.handlers.Billing.CreateSubscription)
	}
}
