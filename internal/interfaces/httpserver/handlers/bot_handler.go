package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/bot"
)

// BotHandler exposes messenger bot configuration and response generation.
type BotHandler struct {
	service bot.Service
	log     zerolog.Logger
}

func NewBotHandler(service bot.Service, log zerolog.Logger) *BotHandler {
	return &BotHandler{
		service: service,
		log:     log.With().Str("component", "bot-handler").Logger(),
	}
}

type botRequest struct {
	PageID          string  `json:"pageId"`
	IsActive        *bool   `json:"isActive"`
	WelcomeMessage  *string `json:"welcomeMessage"`
	FallbackMessage *string `json:"fallbackMessage"`
	AIModel         *string `json:"aiModel"`
	Settings        *string `json:"settings"`
}

func (r botRequest) toUpdate() bot.UpdateInput {
	return bot.UpdateInput{
		IsActive:        r.IsActive,
		WelcomeMessage:  r.WelcomeMessage,
		FallbackMessage: r.FallbackMessage,
		AIModel:         r.AIModel,
		Settings:        r.Settings,
	}
}

type botMessageRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

// Get godoc
// @Summary      Fetch the bot configured for a page
// @Tags         bot
// @Produce      json
// @Router       /api/messenger-bot/{pageId} [get]
func (h *BotHandler) Get(c *gin.Context) {
	b, err := h.service.GetByPage(c.Request.Context(), c.Param("pageId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Create godoc
// @Summary      Create a bot for a page
// @Tags         bot
// @Accept       json
// @Produce      json
// @Router       /api/messenger-bot [post]
func (h *BotHandler) Create(c *gin.Context) {
	var body botRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.service.Create(c.Request.Context(), body.PageID, body.toUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// Update godoc
// @Summary      Update a page's bot
// @Tags         bot
// @Accept       json
// @Produce      json
// @Router       /api/messenger-bot/{pageId} [put]
func (h *BotHandler) Update(c *gin.Context) {
	var body botRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.service.Update(c.Request.Context(), c.Param("pageId"), body.toUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GenerateResponse godoc
// @Summary      Answer a customer message
// @Description  Learned answers are replayed before the AI backend is asked; the bot always answers.
// @Tags         bot
// @Accept       json
// @Produce      json
// @Router       /api/messenger-bot/{pageId}/generate-response [post]
func (h *BotHandler) GenerateResponse(c *gin.Context) {
	var body botMessageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply, err := h.service.GenerateResponse(c.Request.Context(), c.Param("pageId"), body.Message, body.Context)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
