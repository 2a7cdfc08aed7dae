package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-quran-backend/internal/services"
)

type fakeSuggestSvc struct {
	corrections []string
	completions []string
	err         error
}

func (f *fakeSuggestSvc) Corrections(_ context.Context, _ string) ([]string, error) {
	return f.corrections, f.err
}

func (f *fakeSuggestSvc) Completions(_ context.Context, _ string) ([]string, error) {
	return f.completions, f.err
}

func suggestRouter(svc SuggestService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(nil, nil, svc, nil, nil, nil)
	r := gin.New()
	r.GET("/suggestions", h.Suggestions)
	return r
}

func TestSuggestions_MissingQuery(t *testing.T) {
	r := suggestRouter(&fakeSuggestSvc{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/suggestions", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestSuggestions_TooShort(t *testing.T) {
	r := suggestRouter(&fakeSuggestSvc{err: services.ErrQueryTooShort})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/suggestions?q=%D8%B1", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code != ErrCodeBadRequest {
		t.Fatalf("code = %q", er.Code)
	}
}

func TestSuggestions_OK(t *testing.T) {
	r := suggestRouter(&fakeSuggestSvc{
		corrections: []string{"رحمن"},
		completions: []string{"رحمن الرحيم"},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/suggestions?q=%D8%B1%D8%AD%D9%85%D8%A7%D9%86", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp SuggestionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(resp.Corrections) != 1 || resp.Corrections[0] != "رحمن" {
		t.Fatalf("corrections = %v", resp.Corrections)
	}
	if len(resp.Completions) != 1 || resp.Completions[0] != "رحمن الرحيم" {
		t.Fatalf("completions = %v", resp.Completions)
	}
}
