// Chapter HTTP handlers.
//
// This file exposes REST endpoints for chapter resources:
//   - GET /chapters          (list metadata, optional filter)
//   - GET /chapters/{ref}    (full chapter text by number or slug)
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-quran-backend/internal/quran"
)

// ChapterService defines chapter retrieval operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ChapterService interface {
	// ListChapters returns metadata for all 114 chapters.
	ListChapters(ctx context.Context) ([]quran.Chapter, error)
	// Chapter returns one chapter with its full verse text.
	Chapter(ctx context.Context, number int) (*quran.Chapter, error)
}

// ChapterSummary is the list-view projection of a chapter.
type ChapterSummary struct {
	Number       int    `json:"number" example:"55"`
	ArabicNumber string `json:"arabic_number" example:"٥٥"`
	Name         string `json:"name" example:"سورة الرحمن"`
	EnglishName  string `json:"english_name" example:"Ar-Rahmaan"`
	Translation  string `json:"translation" example:"The Beneficent"`
	VerseCount   int    `json:"verse_count" example:"78"`
	Slug         string `json:"slug" example:"55-ar-rahmaan"`
}

// ListChaptersResponse wraps the chapter list.
type ListChaptersResponse struct {
	Chapters []ChapterSummary `json:"chapters"`
	Count    int              `json:"count"`
}

// summarize projects a chapter into its list-view shape.
func summarize(ch quran.Chapter) ChapterSummary {
	return ChapterSummary{
		Number:       ch.Number,
		ArabicNumber: quran.ToArabicNumerals(ch.Number),
		Name:         ch.Name,
		EnglishName:  ch.EnglishName,
		Translation:  ch.EnglishNameTranslation,
		VerseCount:   ch.NumberOfVerses,
		Slug:         quran.Slug(ch),
	}
}

// ListChapters godoc
// @ID          listChapters
// @Summary     List chapters
// @Description Returns metadata for all chapters. An optional q filters by number or name.
// @Tags        Chapters
// @Produce     json
//
// @Param       q  query  string  false "Filter by chapter number or name"  example(rahman)
//
// @Success     200  {object}  handlers.ListChaptersResponse
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream error"
// @Router      /chapters [get]
func (h *Handlers) ListChapters(c *gin.Context) {
	chapters, err := h.chapterSvc.ListChapters(c.Request.Context())
	if err != nil {
		fail(c, http.StatusBadGateway, ErrCodeUpstream, "chapter metadata unavailable")
		return
	}
	chapters = quran.FilterChapters(chapters, c.Query("q"))

	out := make([]ChapterSummary, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, summarize(ch))
	}
	ok(c, http.StatusOK, ListChaptersResponse{Chapters: out, Count: len(out)})
}

// GetChapter godoc
// @ID          getChapter
// @Summary     Get chapter text
// @Description Returns one chapter with its full Arabic verse text. The ref may be a chapter number or a slug such as 55-ar-rahmaan.
// @Tags        Chapters
// @Produce     json
//
// @Param       ref  path  string  true  "Chapter number (1-114) or slug"  example(55-ar-rahmaan)
//
// @Success     200  {object}  quran.Chapter
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid chapter reference"
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream error"
// @Router      /chapters/{ref} [get]
func (h *Handlers) GetChapter(c *gin.Context) {
	number, err := quran.ParseSlug(c.Param("ref"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "chapter ref must be a number 1-114 or a slug")
		return
	}

	ch, err := h.chapterSvc.Chapter(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, quran.ErrInvalidChapter) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "chapter number out of range")
			return
		}
		fail(c, http.StatusBadGateway, ErrCodeUpstream, "chapter text unavailable")
		return
	}
	ok(c, http.StatusOK, ch)
}
