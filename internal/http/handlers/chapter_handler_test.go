package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-quran-backend/internal/quran"
)

type fakeChapterSvc struct {
	chapters []quran.Chapter
	err      error
}

func (f *fakeChapterSvc) ListChapters(_ context.Context) ([]quran.Chapter, error) {
	return f.chapters, f.err
}

func (f *fakeChapterSvc) Chapter(_ context.Context, number int) (*quran.Chapter, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.chapters {
		if f.chapters[i].Number == number {
			return &f.chapters[i], nil
		}
	}
	return nil, quran.ErrInvalidChapter
}

func chapterRouter(svc ChapterService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, nil, nil, nil, nil, nil)
	r := gin.New()
	r.GET("/chapters", h.ListChapters)
	r.GET("/chapters/:ref", h.GetChapter)
	return r
}

func testChapters() []quran.Chapter {
	return []quran.Chapter{
		{Number: 1, Name: "سورة الفاتحة", EnglishName: "Al-Faatiha", EnglishNameTranslation: "The Opening", NumberOfVerses: 7},
		{Number: 55, Name: "سورة الرحمن", EnglishName: "Ar-Rahmaan", EnglishNameTranslation: "The Beneficent", NumberOfVerses: 78,
			Verses: []quran.Verse{{NumberInChapter: 1, Text: "الرَّحْمَٰنُ"}}},
	}
}

func TestListChapters_AllWithSlugs(t *testing.T) {
	r := chapterRouter(&fakeChapterSvc{chapters: testChapters()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chapters", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp ListChaptersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Count != 2 || len(resp.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %+v", resp)
	}
	if resp.Chapters[1].Slug != "55-ar-rahmaan" {
		t.Fatalf("slug = %q", resp.Chapters[1].Slug)
	}
	if resp.Chapters[1].ArabicNumber != "٥٥" {
		t.Fatalf("arabic number = %q", resp.Chapters[1].ArabicNumber)
	}
}

func TestListChapters_Filter(t *testing.T) {
	r := chapterRouter(&fakeChapterSvc{chapters: testChapters()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chapters?q=rahmaan", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var resp ListChaptersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Count != 1 || resp.Chapters[0].Number != 55 {
		t.Fatalf("expected only chapter 55, got %+v", resp)
	}
}

func TestListChapters_UpstreamError(t *testing.T) {
	r := chapterRouter(&fakeChapterSvc{err: errors.New("boom")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chapters", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status=%d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code != ErrCodeUpstream {
		t.Fatalf("code = %q", er.Code)
	}
}

func TestGetChapter_ByNumberAndSlug(t *testing.T) {
	r := chapterRouter(&fakeChapterSvc{chapters: testChapters()})

	for _, ref := range []string{"55", "55-ar-rahmaan"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chapters/"+ref, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("ref %q: status=%d", ref, w.Code)
		}
		var ch quran.Chapter
		if err := json.Unmarshal(w.Body.Bytes(), &ch); err != nil {
			t.Fatalf("ref %q: json: %v", ref, err)
		}
		if ch.Number != 55 || len(ch.Verses) != 1 {
			t.Fatalf("ref %q: unexpected chapter %+v", ref, ch)
		}
	}
}

func TestGetChapter_InvalidRef(t *testing.T) {
	r := chapterRouter(&fakeChapterSvc{chapters: testChapters()})

	for _, ref := range []string{"abc", "0", "115"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chapters/"+ref, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("ref %q: status=%d", ref, w.Code)
		}
	}
}

func TestGetChapter_UpstreamError(t *testing.T) {
	r := chapterRouter(&fakeChapterSvc{err: errors.New("timeout")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chapters/2", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status=%d", w.Code)
	}
}
