package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/content"
	"github.com/pagepilot/pagepilot/internal/domain/generation"
)

// AIHandler exposes the model listing, comparison and recommendation
// endpoints plus the unauthenticated demo generation route.
type AIHandler struct {
	dispatcher *generation.Dispatcher
	images     content.ImageGenerator
	log        zerolog.Logger
}

// NewAIHandler wires the AI endpoints. images may be nil; the demo route
// then skips image generation.
func NewAIHandler(dispatcher *generation.Dispatcher, images content.ImageGenerator, log zerolog.Logger) *AIHandler {
	return &AIHandler{
		dispatcher: dispatcher,
		images:     images,
		log:        log.With().Str("component", "ai-handler").Logger(),
	}
}

type generateRequest struct {
	Prompt          string `json:"prompt"`
	ContentType     string `json:"contentType"`
	Style           string `json:"style"`
	Model           string `json:"aiModel"`
	IncludeImage    bool   `json:"includeImage"`
	IncludeResearch bool   `json:"includeResearch"`
	TargetAudience  string `json:"targetAudience"`
}

func (r generateRequest) toDomain() generation.Request {
	return generation.Request{
		Prompt:          r.Prompt,
		ContentType:     generation.ContentType(r.ContentType),
		Style:           generation.Style(r.Style),
		Model:           generation.Model(r.Model),
		IncludeResearch: r.IncludeResearch,
		TargetAudience:  r.TargetAudience,
	}
}

func normalize(req *generation.Request) error {
	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		return generation.ErrEmptyPrompt
	}
	if req.ContentType == "" {
		req.ContentType = generation.ContentTypePost
	}
	if !req.ContentType.Valid() {
		return fmt.Errorf("%w: unknown content type %q", generation.ErrInvalidInput, req.ContentType)
	}
	if req.Model == "" {
		req.Model = generation.ModelAuto
	}
	if !req.Model.Valid() {
		return fmt.Errorf("%w: unknown model %q", generation.ErrInvalidInput, req.Model)
	}
	if req.Style != "" && !req.Style.Valid() {
		return fmt.Errorf("%w: unknown style %q", generation.ErrInvalidInput, req.Style)
	}
	return nil
}

// ListModels godoc
// @Summary      List AI backends
// @Tags         ai
// @Produce      json
// @Router       /api/ai/models [get]
func (h *AIHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": h.dispatcher.Backends()})
}

// Compare godoc
// @Summary      Run one prompt through every backend
// @Tags         ai
// @Accept       json
// @Produce      json
// @Router       /api/ai/compare [post]
func (h *AIHandler) Compare(c *gin.Context) {
	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := body.toDomain()
	if err := normalize(&req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.dispatcher.Compare(c.Request.Context(), req))
}

// Recommend godoc
// @Summary      Recommend a model for a request shape
// @Tags         ai
// @Accept       json
// @Produce      json
// @Router       /api/ai/recommend [post]
func (h *AIHandler) Recommend(c *gin.Context) {
	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := body.toDomain()
	if err := normalize(&req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, generation.Recommend(req))
}

// DemoGenerate godoc
// @Summary      Generate content without authentication
// @Description  Powers the public landing page demo. Nothing is persisted.
// @Tags         demo
// @Accept       json
// @Produce      json
// @Router       /api/demo/generate-content [post]
func (h *AIHandler) DemoGenerate(c *gin.Context) {
	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := body.toDomain()
	if err := normalize(&req); err != nil {
		respondError(c, err)
		return
	}

	resp := h.dispatcher.Generate(c.Request.Context(), req)

	imageURL := ""
	if body.IncludeImage && h.images != nil {
		url, err := h.images.GenerateImage(c.Request.Context(), fmt.Sprintf("Create a social media image for: %s", req.Prompt))
		if err != nil {
			h.log.Warn().Err(err).Msg("demo image generation failed, continuing without image")
		} else {
			imageURL = url
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"content":     resp.Content,
		"imageUrl":    imageURL,
		"aiModel":     resp.Model,
		"provider":    resp.Provider,
		"contentType": string(req.ContentType),
		"sources":     resp.Sources,
		"timestamp":   resp.GeneratedAt.Format(time.RFC3339),
	})
}
