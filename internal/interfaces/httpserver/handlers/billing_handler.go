package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/billing"
)

// BillingHandler exposes subscription creation.
type BillingHandler struct {
	service billing.Service
	log     zerolog.Logger
}

func NewBillingHandler(service billing.Service, log zerolog.Logger) *BillingHandler {
	return &BillingHandler{
		service: service,
		log:     log.With().Str("component", "billing-handler").Logger(),
	}
}

// CreateSubscription godoc
// @Summary      Create or fetch the user's subscription
// @Description  Returns the existing subscription when one is on file, otherwise opens an incomplete one.
// @Tags         billing
// @Produce      json
// @Router       /api/create-subscription [post]
func (h *BillingHandler) CreateSubscription(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "billing is not configured"})
		return
	}
	sub, err := h.service.CreateSubscription(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
