package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pagepilot/pagepilot/internal/domain/adintel"
	"github.com/pagepilot/pagepilot/internal/domain/analytics"
	"github.com/pagepilot/pagepilot/internal/domain/billing"
	"github.com/pagepilot/pagepilot/internal/domain/bot"
	"github.com/pagepilot/pagepilot/internal/domain/content"
	"github.com/pagepilot/pagepilot/internal/domain/generation"
	"github.com/pagepilot/pagepilot/internal/domain/page"
	"github.com/pagepilot/pagepilot/internal/domain/user"
	"github.com/pagepilot/pagepilot/internal/infrastructure/auth"
)

// respondError translates domain errors into HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, generation.ErrEmptyPrompt),
		errors.Is(err, generation.ErrInvalidInput),
		errors.Is(err, content.ErrInvalidInput),
		errors.Is(err, page.ErrInvalidInput),
		errors.Is(err, bot.ErrInvalidInput),
		errors.Is(err, analytics.ErrInvalidInput),
		errors.Is(err, adintel.ErrInvalidInput),
		errors.Is(err, billing.ErrNoEmail):
		status = http.StatusBadRequest
	case errors.Is(err, content.ErrNotFound),
		errors.Is(err, page.ErrNotFound),
		errors.Is(err, bot.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, bot.ErrAlreadyExists),
		errors.Is(err, page.ErrAlreadyExists),
		errors.Is(err, bot.ErrInactive):
		status = http.StatusConflict
	case errors.Is(err, billing.ErrNotConfigured):
		status = http.StatusNotImplemented
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// userID returns the authenticated principal's id.
func userID(c *gin.Context) string {
	return auth.UserID(c)
}
