package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/content"
	"github.com/pagepilot/pagepilot/internal/domain/generation"
)

// ContentHandler exposes content generation, lifecycle and publishing.
type ContentHandler struct {
	service content.Service
	log     zerolog.Logger
}

func NewContentHandler(service content.Service, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With().Str("component", "content-handler").Logger(),
	}
}

type generateContentRequest struct {
	Prompt          string  `json:"prompt"`
	Title           string  `json:"title"`
	ContentType     string  `json:"contentType"`
	Style           string  `json:"style"`
	Model           string  `json:"aiModel"`
	PageID          *string `json:"pageId"`
	IncludeImage    bool    `json:"includeImage"`
	IncludeResearch bool    `json:"includeResearch"`
	TargetAudience  string  `json:"targetAudience"`
}

type updateContentRequest struct {
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	PageID      *string    `json:"pageId"`
	Status      *string    `json:"status"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

// List godoc
// @Summary      List the user's generated content
// @Tags         content
// @Produce      json
// @Router       /api/content [get]
func (h *ContentHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	rows, err := h.service.List(c.Request.Context(), userID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Generate godoc
// @Summary      Generate a new piece of content
// @Tags         content
// @Accept       json
// @Produce      json
// @Router       /api/content/generate [post]
func (h *ContentHandler) Generate(c *gin.Context) {
	var body generateContentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := h.service.Generate(c.Request.Context(), userID(c), content.GenerateInput{
		Prompt:          body.Prompt,
		Title:           body.Title,
		ContentType:     generation.ContentType(body.ContentType),
		Style:           generation.Style(body.Style),
		Model:           generation.Model(body.Model),
		PageID:          body.PageID,
		IncludeImage:    body.IncludeImage,
		IncludeResearch: body.IncludeResearch,
		TargetAudience:  body.TargetAudience,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// Update godoc
// @Summary      Update, schedule or unschedule content
// @Description  A scheduledAt timestamp schedules the row; status "draft" reverts a scheduled row.
// @Tags         content
// @Accept       json
// @Produce      json
// @Router       /api/content/{id} [put]
func (h *ContentHandler) Update(c *gin.Context) {
	var body updateContentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	uid := userID(c)
	id := c.Param("id")

	row, err := h.service.Update(ctx, uid, id, content.UpdateInput{
		Title:   body.Title,
		Content: body.Content,
		PageID:  body.PageID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	switch {
	case body.ScheduledAt != nil:
		row, err = h.service.Schedule(ctx, uid, id, *body.ScheduledAt)
	case body.Status != nil && *body.Status == string(content.StatusDraft):
		row, err = h.service.Unschedule(ctx, uid, id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Delete godoc
// @Summary      Delete content
// @Tags         content
// @Router       /api/content/{id} [delete]
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Scheduled godoc
// @Summary      List scheduled content that is due
// @Tags         content
// @Produce      json
// @Router       /api/content/scheduled [get]
func (h *ContentHandler) Scheduled(c *gin.Context) {
	rows, err := h.service.ScheduledDue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Publish godoc
// @Summary      Publish content to its page immediately
// @Tags         content
// @Produce      json
// @Router       /api/content/{id}/publish [post]
func (h *ContentHandler) Publish(c *gin.Context) {
	row, err := h.service.Publish(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
