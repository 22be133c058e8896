package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/adintel"
)

// AdIntelHandler exposes competitor ad search and the stored snapshots.
type AdIntelHandler struct {
	service adintel.Service
	log     zerolog.Logger
}

func NewAdIntelHandler(service adintel.Service, log zerolog.Logger) *AdIntelHandler {
	return &AdIntelHandler{
		service: service,
		log:     log.With().Str("component", "adintel-handler").Logger(),
	}
}

type adSearchRequest struct {
	SearchTerms string `json:"searchTerms"`
	Limit       int    `json:"limit"`
}

// List godoc
// @Summary      List stored competitor ads
// @Tags         ad-intelligence
// @Produce      json
// @Router       /api/ad-intelligence [get]
func (h *AdIntelHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	ads, err := h.service.List(c.Request.Context(), userID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

// Search godoc
// @Summary      Search the ads library and store the results
// @Tags         ad-intelligence
// @Accept       json
// @Produce      json
// @Router       /api/ad-intelligence/search [post]
func (h *AdIntelHandler) Search(c *gin.Context) {
	var body adSearchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ads, err := h.service.Search(c.Request.Context(), userID(c), body.SearchTerms, body.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}
