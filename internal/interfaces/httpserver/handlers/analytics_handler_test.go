package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/analytics"
	"github.com/pagepilot/pagepilot/internal/interfaces/httpserver/handlers"
)

type stubAnalyticsService struct {
	snapshots map[string][]analytics.Snapshot
}

func (s *stubAnalyticsService) Record(ctx context.Context, snap *analytics.Snapshot) (*analytics.Snapshot, error) {
	return snap, nil
}

func (s *stubAnalyticsService) Range(ctx context.Context, pageID string, from, to *time.Time) ([]analytics.Snapshot, error) {
	return s.snapshots[pageID], nil
}

func (s *stubAnalyticsService) DashboardStats(ctx context.Context, userID string) (*analytics.DashboardStats, error) {
	return &analytics.DashboardStats{}, nil
}

func analyticsRouter(t *testing.T, svc analytics.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handler := handlers.NewAnalyticsHandler(svc, zerolog.Nop())

	engine := gin.New()
	engine.GET("/api/analytics/:pageId", handler.Get)
	return engine
}

func TestAnalyticsGetByPathParam(t *testing.T) {
	svc := &stubAnalyticsService{snapshots: map[string][]analytics.Snapshot{
		"page-1": {{PageID: "page-1", Reach: 42}},
	}}
	engine := analyticsRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/page-1", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var body []analytics.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 1 || body[0].PageID != "page-1" || body[0].Reach != 42 {
		t.Errorf("snapshots = %+v, want the seeded page-1 row", body)
	}
}

func TestAnalyticsGetRejectsBadRange(t *testing.T) {
	engine := analyticsRouter(t, &stubAnalyticsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/page-1?from=yesterday", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
