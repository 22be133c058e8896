package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/user"
)

// UserHandler exposes the authenticated user's profile.
type UserHandler struct {
	service user.Service
	log     zerolog.Logger
}

func NewUserHandler(service user.Service, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With().Str("component", "user-handler").Logger(),
	}
}

// Me godoc
// @Summary      Fetch the current user
// @Tags         auth
// @Produce      json
// @Router       /api/auth/user [get]
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.service.Get(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
