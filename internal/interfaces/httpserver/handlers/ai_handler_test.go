package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pagepilot/pagepilot/internal/domain/generation"
	"github.com/pagepilot/pagepilot/internal/infrastructure/aiprovider"
	"github.com/pagepilot/pagepilot/internal/interfaces/httpserver/handlers"
)

func demoRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dispatcher := generation.NewDispatcher(nil, nil, nil, zerolog.Nop())
	handler := handlers.NewAIHandler(dispatcher, nil, zerolog.Nop())

	engine := gin.New()
	engine.POST("/api/demo/generate-content", handler.DemoGenerate)
	return engine
}

func TestDemoGenerateEmptyPrompt(t *testing.T) {
	engine := demoRouter(t)

	for _, payload := range []string{`{"prompt":""}`, `{"prompt":"   "}`, `{"prompt":"\t\n"}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/demo/generate-content", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: status = %d, want 400", payload, rec.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if _, ok := body["error"]; !ok {
			t.Errorf("payload %s: body %v missing error field", payload, body)
		}
	}
}

func TestDemoGenerateRejectsUnknownEnums(t *testing.T) {
	engine := demoRouter(t)

	payloads := []string{
		`{"prompt":"hi","contentType":"banana"}`,
		`{"prompt":"hi","aiModel":"gpt-99"}`,
		`{"prompt":"hi","style":"sarcastic"}`,
	}
	for _, payload := range payloads {
		req := httptest.NewRequest(http.MethodPost, "/api/demo/generate-content", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("payload %s: status = %d, want 400", payload, rec.Code)
		}
	}
}

func TestDemoGenerateMalformedBody(t *testing.T) {
	engine := demoRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/demo/generate-content", strings.NewReader(`{"prompt":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDemoGenerateFallsBackToTemplate(t *testing.T) {
	engine := demoRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/demo/generate-content",
		strings.NewReader(`{"prompt":"autumn coffee promo","contentType":"post"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Content     string `json:"content"`
		AIModel     string `json:"aiModel"`
		Provider    string `json:"provider"`
		ContentType string `json:"contentType"`
		Timestamp   string `json:"timestamp"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.Contains(body.Content, "autumn coffee promo") {
		t.Errorf("content %q should embed the prompt", body.Content)
	}
	if body.AIModel != generation.FallbackModel {
		t.Errorf("aiModel = %q, want %q", body.AIModel, generation.FallbackModel)
	}
	if body.ContentType != "post" {
		t.Errorf("contentType = %q, want post", body.ContentType)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", body.Timestamp, err)
	}
}

func TestListModelsReportsAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dispatcher := generation.NewDispatcher(
		aiprovider.NewOpenAIClient(""),
		aiprovider.NewClaudeClient("", 0),
		aiprovider.NewPerplexityClient("", 0),
		zerolog.Nop(),
	)
	handler := handlers.NewAIHandler(dispatcher, nil, zerolog.Nop())
	engine := gin.New()
	engine.GET("/api/ai/models", handler.ListModels)

	req := httptest.NewRequest(http.MethodGet, "/api/ai/models", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Models []generation.BackendInfo `json:"models"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Models) == 0 {
		t.Fatal("expected at least one backend entry")
	}
	for _, m := range body.Models {
		if m.Available {
			t.Errorf("backend %s should be unavailable without credentials", m.Name)
		}
	}
}
