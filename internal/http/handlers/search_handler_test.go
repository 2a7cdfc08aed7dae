package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-quran-backend/internal/search"
)

type fakeSearchSvc struct {
	results  []search.Result
	err      error
	lastQ    string
	lastOpts search.Options
}

func (f *fakeSearchSvc) Search(_ context.Context, query string, opts search.Options) ([]search.Result, error) {
	f.lastQ = query
	f.lastOpts = opts
	return f.results, f.err
}

func searchRouter(svc SearchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(nil, svc, nil, nil, nil, nil)
	r := gin.New()
	r.GET("/search", h.Search)
	return r
}

func TestSearch_MissingQuery(t *testing.T) {
	r := searchRouter(&fakeSearchSvc{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search", nil))
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

func TestSearch_InvalidChapter(t *testing.T) {
	r := searchRouter(&fakeSearchSvc{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?q=%D8%B1%D8%AD%D9%85%D9%86&chapter=200", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestSearch_Results(t *testing.T) {
	svc := &fakeSearchSvc{results: []search.Result{
		{ChapterNumber: 55, VerseNumber: 1, Text: "الرحمن", Score: 100, MatchType: "exact"},
	}}
	r := searchRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?q=%D8%B1%D8%AD%D9%85%D9%86&chapter=55&limit=10", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Count != 1 || len(resp.Results) != 1 || resp.Results[0].Score != 100 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if svc.lastOpts.ChapterNumber != 55 || svc.lastOpts.Limit != 10 {
		t.Fatalf("opts not forwarded: %+v", svc.lastOpts)
	}
	if svc.lastQ != "رحمن" {
		t.Fatalf("query not forwarded: %q", svc.lastQ)
	}
}

func TestSearch_LimitClamped(t *testing.T) {
	svc := &fakeSearchSvc{results: []search.Result{}}
	r := searchRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?q=x&limit=9999", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if svc.lastOpts.Limit != search.DefaultLimit {
		t.Fatalf("limit = %d, want clamp to %d", svc.lastOpts.Limit, search.DefaultLimit)
	}
}

func TestSearch_CorpusNotReady(t *testing.T) {
	r := searchRouter(&fakeSearchSvc{err: search.ErrCorpusNotReady})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?q=x", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code != ErrCodeCorpusNotReady {
		t.Fatalf("code = %q", er.Code)
	}
}

func TestSearch_Failure(t *testing.T) {
	r := searchRouter(&fakeSearchSvc{err: errors.New("boom")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?q=x", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code != ErrCodeSearchFailed {
		t.Fatalf("code = %q", er.Code)
	}
}
