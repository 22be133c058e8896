package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/bot"
	"github.com/pagepilot/pagepilot/internal/domain/generation"
	botrepo "github.com/pagepilot/pagepilot/internal/infrastructure/repository/bot"
	"github.com/pagepilot/pagepilot/internal/interfaces/httpserver/handlers"
)

func botRouter(t *testing.T) (*gin.Engine, bot.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := botrepo.NewInMemoryRepository()
	dispatcher := generation.NewDispatcher(nil, nil, nil, zerolog.Nop())
	svc := bot.NewService(repo, dispatcher, nil, bot.Options{
		LearningSampleRate: 0,
		SatisfactionBase:   4.0,
		SatisfactionSpread: 1.0,
	}, nil, zerolog.Nop())
	handler := handlers.NewBotHandler(svc, zerolog.Nop())

	engine := gin.New()
	engine.GET("/api/messenger-bot/:pageId", handler.Get)
	engine.POST("/api/messenger-bot", handler.Create)
	engine.PUT("/api/messenger-bot/:pageId", handler.Update)
	return engine, svc
}

func TestBotGetByPathParam(t *testing.T) {
	engine, svc := botRouter(t)

	if _, err := svc.Create(context.Background(), "page-1", bot.UpdateInput{}); err != nil {
		t.Fatalf("seed bot: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/messenger-bot/page-1", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var body bot.Bot
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.PageID != "page-1" {
		t.Errorf("pageId = %q, want page-1", body.PageID)
	}
}

func TestBotGetUnknownPage(t *testing.T) {
	engine, _ := botRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/messenger-bot/missing", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestBotUpdateByPathParam(t *testing.T) {
	engine, svc := botRouter(t)

	if _, err := svc.Create(context.Background(), "page-1", bot.UpdateInput{}); err != nil {
		t.Fatalf("seed bot: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/messenger-bot/page-1",
		strings.NewReader(`{"welcomeMessage":"Hi there!"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var body bot.Bot
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.WelcomeMessage != "Hi there!" {
		t.Errorf("welcomeMessage = %q, want the updated value", body.WelcomeMessage)
	}
}
