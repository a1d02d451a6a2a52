package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pestpro_ops/internal/domain/coverage"

	"github.com/gin-gonic/gin"
)

func TestServiceAreaHandler_CheckZIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	area := coverage.NewArea([]string{"30301", "30305"})
	h := NewServiceAreaHandler(area)
	r := gin.New()
	r.GET("/v1/service-area/:zip", h.CheckZIP)

	get := func(zip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/service-area/"+zip, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("covered zip", func(t *testing.T) {
		w := get("30301")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["zip"] != "30301" || body["covered"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("uncovered zip", func(t *testing.T) {
		w := get("90210")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["covered"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("zip+4 matches base zip", func(t *testing.T) {
		w := get("30305-1234")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["covered"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("malformed zip", func(t *testing.T) {
		if w := get("3030"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w := get("abcde"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
