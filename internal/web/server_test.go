package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/photo-collage/internal/config"
)

func testServer() *Server {
	cfg := &config.Config{
		Engine: config.EngineConfig{
			UtilizationWeight: 0.4,
			CroppingWeight:    0.4,
			BalanceWeight:     0.2,
			StrictPrecision:   6,
			SplitRatio:        0.5,
		},
		Page: config.PageConfig{Width: 297, Height: 210},
	}
	return NewServer(cfg, 8080, "127.0.0.1")
}

func TestRoutesHealth(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoutesLayouts(t *testing.T) {
	s := testServer()

	body, _ := json.Marshal(map[string]any{
		"photos": []map[string]any{
			{"id": "a", "width": 800, "height": 600},
			{"id": "b", "width": 600, "height": 800},
		},
		"page": map[string]any{"width": 400, "height": 300},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/layouts", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRoutesTemplates(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates?count=4", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRoutesUnknownPath(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
