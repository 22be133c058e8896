package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/pagepilot/pagepilot/internal/domain/analytics"
)

// AnalyticsHandler exposes snapshot recording and the dashboard aggregate.
type AnalyticsHandler struct {
	service analytics.Service
	log     zerolog.Logger
}

func NewAnalyticsHandler(service analytics.Service, log zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log.With().Str("component", "analytics-handler").Logger(),
	}
}

type snapshotRequest struct {
	PageID      string          `json:"pageId"`
	ContentID   *string         `json:"contentId"`
	Date        *time.Time      `json:"date"`
	Reach       int             `json:"reach"`
	Impressions int             `json:"impressions"`
	Engagements int             `json:"engagements"`
	Likes       int             `json:"likes"`
	Comments    int             `json:"comments"`
	Shares      int             `json:"shares"`
	Clicks      int             `json:"clicks"`
	Spend       decimal.Decimal `json:"spend"`
}

// Get godoc
// @Summary      Read snapshots for a page
// @Tags         analytics
// @Produce      json
// @Router       /api/analytics/{pageId} [get]
func (h *AnalyticsHandler) Get(c *gin.Context) {
	pageID := c.Param("pageId")

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be RFC3339"})
			return
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be RFC3339"})
			return
		}
		to = &t
	}

	snapshots, err := h.service.Range(c.Request.Context(), pageID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

// Record godoc
// @Summary      Append an analytics snapshot
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Router       /api/analytics [post]
func (h *AnalyticsHandler) Record(c *gin.Context) {
	var body snapshotRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := &analytics.Snapshot{
		PageID:      body.PageID,
		ContentID:   body.ContentID,
		Reach:       body.Reach,
		Impressions: body.Impressions,
		Engagements: body.Engagements,
		Likes:       body.Likes,
		Comments:    body.Comments,
		Shares:      body.Shares,
		Clicks:      body.Clicks,
		Spend:       body.Spend,
	}
	if body.Date != nil {
		snap.Date = *body.Date
	}

	created, err := h.service.Record(c.Request.Context(), snap)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DashboardStats godoc
// @Summary      Aggregate the user's last 30 days
// @Tags         analytics
// @Produce      json
// @Router       /api/dashboard/stats [get]
func (h *AnalyticsHandler) DashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
