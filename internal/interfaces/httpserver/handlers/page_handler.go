package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/page"
	"github.com/pagepilot/pagepilot/internal/infrastructure/facebook"
)

// PageHandler exposes page CRUD plus the Facebook OAuth flow.
type PageHandler struct {
	service page.Service
	oauth   *facebook.OAuthClient
	graph   *facebook.GraphClient
	log     zerolog.Logger
}

func NewPageHandler(service page.Service, oauth *facebook.OAuthClient, graph *facebook.GraphClient, log zerolog.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		oauth:   oauth,
		graph:   graph,
		log:     log.With().Str("component", "page-handler").Logger(),
	}
}

type connectPageRequest struct {
	FacebookPageID  string `json:"facebookPageId"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profileImageUrl"`
	Followers       int    `json:"followers"`
	AccessToken     string `json:"accessToken"`
}

type updatePageRequest struct {
	Name            *string `json:"name"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Followers       *int    `json:"followers"`
	IsActive        *bool   `json:"isActive"`
}

// List godoc
// @Summary      List connected pages
// @Tags         pages
// @Produce      json
// @Router       /api/facebook-pages [get]
func (h *PageHandler) List(c *gin.Context) {
	pages, err := h.service.List(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

// Connect godoc
// @Summary      Connect a Facebook page
// @Description  Re-connecting an already connected page refreshes it in place.
// @Tags         pages
// @Accept       json
// @Produce      json
// @Router       /api/facebook-pages [post]
func (h *PageHandler) Connect(c *gin.Context) {
	var body connectPageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.Connect(c.Request.Context(), userID(c), page.ConnectInput{
		FacebookPageID:  body.FacebookPageID,
		Name:            body.Name,
		ProfileImageURL: body.ProfileImageURL,
		Followers:       body.Followers,
		AccessToken:     body.AccessToken,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update godoc
// @Summary      Update a connected page
// @Tags         pages
// @Accept       json
// @Produce      json
// @Router       /api/facebook-pages/{id} [put]
func (h *PageHandler) Update(c *gin.Context) {
	var body updatePageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), userID(c), c.Param("id"), page.UpdateInput{
		Name:            body.Name,
		ProfileImageURL: body.ProfileImageURL,
		Followers:       body.Followers,
		IsActive:        body.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete godoc
// @Summary      Disconnect a page
// @Tags         pages
// @Router       /api/facebook-pages/{id} [delete]
func (h *PageHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Sync godoc
// @Summary      Refresh page data from the Graph API
// @Tags         pages
// @Produce      json
// @Router       /api/pages/sync [post]
func (h *PageHandler) Sync(c *gin.Context) {
	pages, err := h.service.SyncFromFacebook(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

// OAuthConnect godoc
// @Summary      Start the Facebook OAuth flow
// @Tags         pages
// @Produce      json
// @Router       /api/facebook/connect [get]
func (h *PageHandler) OAuthConnect(c *gin.Context) {
	if h.oauth == nil || !h.oauth.Configured() {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "facebook integration is not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authUrl": h.oauth.AuthURL(userID(c))})
}

// OAuthCallback godoc
// @Summary      Complete the Facebook OAuth flow
// @Description  Exchanges the code, upgrades to a long-lived token and connects every page the user manages.
// @Tags         pages
// @Produce      json
// @Router       /api/facebook/callback [get]
func (h *PageHandler) OAuthCallback(c *gin.Context) {
	if h.oauth == nil || !h.oauth.Configured() || h.graph == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "facebook integration is not configured"})
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	ctx := c.Request.Context()
	token, err := h.oauth.ExchangeCode(ctx, code)
	if err != nil {
		h.log.Error().Err(err).Msg("oauth code exchange failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to exchange authorization code"})
		return
	}

	if longLived, err := h.oauth.LongLivedToken(ctx, token.AccessToken); err == nil {
		token = longLived
	} else {
		h.log.Warn().Err(err).Msg("long lived token upgrade failed, using short lived token")
	}

	details, err := h.graph.UserPages(ctx, token.AccessToken)
	if err != nil {
		h.log.Error().Err(err).Msg("user pages fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch pages"})
		return
	}

	uid := userID(c)
	connected := make([]page.Page, 0, len(details))
	for _, d := range details {
		p, err := h.service.Connect(ctx, uid, page.ConnectInput{
			FacebookPageID:  d.FacebookPageID,
			Name:            d.Name,
			ProfileImageURL: d.ProfileImageURL,
			Followers:       d.Followers,
			AccessToken:     d.AccessToken,
		})
		if err != nil {
			h.log.Warn().Err(err).Str("facebook_page_id", d.FacebookPageID).Msg("connect page failed")
			continue
		}
		connected = append(connected, *p)
	}

	c.JSON(http.StatusOK, gin.H{"pages": connected})
}
