// Tafsir HTTP handlers.
//
// This file exposes REST endpoints for verse commentary:
//   - GET  /tafsir/sources                     (supported commentary sources)
//   - GET  /tafsir/status                      (per-source import coverage)
//   - POST /tafsir/import                      (import one chapter of one source)
//   - GET  /tafsir/{source}/{chapter}          (stored commentary for a chapter)
//   - GET  /tafsir/{source}/{chapter}/{verse}  (stored commentary for a verse)
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-quran-backend/internal/domain"
	"github.com/tbourn/go-quran-backend/internal/services"
)

// TafsirService defines commentary import and lookup operations consumed by
// HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type TafsirService interface {
	// Sources lists the supported commentary sources.
	Sources() []services.Source
	// Status reports per-source import coverage.
	Status(ctx context.Context) ([]services.SourceStatus, error)
	// ImportChapter fetches and stores one chapter of one source.
	ImportChapter(ctx context.Context, externalID, chapter int) (*services.ImportReport, error)
	// Chapter returns the stored commentary for a whole chapter.
	Chapter(ctx context.Context, externalID, chapter int) ([]domain.TafsirEntry, error)
	// Verse returns the stored commentary for one verse.
	Verse(ctx context.Context, externalID, chapter, verse int) (*domain.TafsirEntry, error)
}

// ImportTafsirRequest is the JSON payload for importing commentary.
type ImportTafsirRequest struct {
	// SourceID names the upstream commentary source (e.g. 169 for Ibn Kathir).
	SourceID int `json:"source_id" binding:"required" example:"169"`
	// Chapter is the surah number to import (1-114).
	Chapter int `json:"chapter" binding:"required,min=1,max=114" example:"112"`
}

// ListTafsirSourcesResponse wraps the supported commentary sources.
type ListTafsirSourcesResponse struct {
	Sources []services.Source `json:"sources"`
}

// TafsirChapterResponse wraps one chapter's stored commentary.
type TafsirChapterResponse struct {
	Entries []domain.TafsirEntry `json:"entries"`
	Count   int                  `json:"count"`
}

// tafsirPathParams parses the {source} and {chapter} path parameters.
func tafsirPathParams(c *gin.Context) (source, chapter int, valid bool) {
	source, err := strconv.Atoi(c.Param("source"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "source must be a numeric id")
		return 0, 0, false
	}
	chapter, err = strconv.Atoi(c.Param("chapter"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "chapter must be a number")
		return 0, 0, false
	}
	return source, chapter, true
}

// ListTafsirSources godoc
// @ID          listTafsirSources
// @Summary     List commentary sources
// @Description Returns the supported Arabic commentary sources and their upstream ids.
// @Tags        Tafsir
// @Produce     json
//
// @Success     200  {object}  handlers.ListTafsirSourcesResponse
// @Router      /tafsir/sources [get]
func (h *Handlers) ListTafsirSources(c *gin.Context) {
	ok(c, http.StatusOK, ListTafsirSourcesResponse{Sources: h.tafsirSvc.Sources()})
}

// TafsirStatus godoc
// @ID          tafsirStatus
// @Summary     Commentary import coverage
// @Description Reports how much of each commentary source has been imported.
// @Tags        Tafsir
// @Produce     json
//
// @Success     200  {array}   services.SourceStatus
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /tafsir/status [get]
func (h *Handlers) TafsirStatus(c *gin.Context) {
	statuses, err := h.tafsirSvc.Status(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, statuses)
}

// ImportTafsir godoc
// @ID          importTafsir
// @Summary     Import commentary for a chapter
// @Description Fetches one chapter of commentary from the upstream source, validates each entry as Arabic text, and stores the accepted entries. Re-imports are idempotent.
// @Tags        Tafsir
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ImportTafsirRequest  true  "Source and chapter to import"
//
// @Success     200  {object}  services.ImportReport
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown source or invalid chapter"
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream fetch failed"
// @Router      /tafsir/import [post]
func (h *Handlers) ImportTafsir(c *gin.Context) {
	var req ImportTafsirRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	report, err := h.tafsirSvc.ImportChapter(c.Request.Context(), req.SourceID, req.Chapter)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownTafsirSource):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown commentary source")
		case errors.Is(err, services.ErrInvalidVerseRef):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "chapter must be between 1 and 114")
		default:
			fail(c, http.StatusBadGateway, ErrCodeImportFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, report)
}

// GetTafsirChapter godoc
// @ID          getTafsirChapter
// @Summary     Get chapter commentary
// @Description Returns the stored commentary of one source for a whole chapter, in verse order. Chapters that were never imported return an empty list.
// @Tags        Tafsir
// @Produce     json
//
// @Param       source   path  int  true  "Upstream source id"      example(169)
// @Param       chapter  path  int  true  "Chapter number (1-114)"  minimum(1) maximum(114)
//
// @Success     200  {object}  handlers.TafsirChapterResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown source or invalid chapter"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /tafsir/{source}/{chapter} [get]
func (h *Handlers) GetTafsirChapter(c *gin.Context) {
	source, chapter, valid := tafsirPathParams(c)
	if !valid {
		return
	}

	entries, err := h.tafsirSvc.Chapter(c.Request.Context(), source, chapter)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownTafsirSource):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown commentary source")
		case errors.Is(err, services.ErrInvalidVerseRef):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "chapter must be between 1 and 114")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, TafsirChapterResponse{Entries: entries, Count: len(entries)})
}

// GetTafsirVerse godoc
// @ID          getTafsirVerse
// @Summary     Get verse commentary
// @Description Returns the stored commentary of one source for one verse.
// @Tags        Tafsir
// @Produce     json
//
// @Param       source   path  int  true  "Upstream source id"      example(169)
// @Param       chapter  path  int  true  "Chapter number (1-114)"  minimum(1) maximum(114)
// @Param       verse    path  int  true  "Verse number"            minimum(1)
//
// @Success     200  {object}  domain.TafsirEntry
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown source or invalid reference"
// @Failure     404  {object}  handlers.ErrorResponse  "Commentary not imported"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /tafsir/{source}/{chapter}/{verse} [get]
func (h *Handlers) GetTafsirVerse(c *gin.Context) {
	source, chapter, valid := tafsirPathParams(c)
	if !valid {
		return
	}
	verse, err := strconv.Atoi(c.Param("verse"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "verse must be a number")
		return
	}

	entry, err := h.tafsirSvc.Verse(c.Request.Context(), source, chapter, verse)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownTafsirSource):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown commentary source")
		case errors.Is(err, services.ErrInvalidVerseRef):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "verse reference out of range")
		case errors.Is(err, services.ErrTafsirNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "commentary not imported for this verse")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, entry)
}
