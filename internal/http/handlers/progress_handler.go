// Reading progress HTTP handlers.
//
// This file exposes REST endpoints for per-chapter reading positions:
//   - PUT    /progress            (mark a verse as last read)
//   - GET    /progress            (list per-chapter positions)
//   - GET    /progress/overview   (aggregate completion stats)
//   - GET    /progress/{chapter}  (position within one chapter)
//   - DELETE /progress/{chapter}  (reset a chapter)
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-quran-backend/internal/domain"
	"github.com/tbourn/go-quran-backend/internal/quran"
	"github.com/tbourn/go-quran-backend/internal/services"
)

// ProgressService defines reading position operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ProgressService interface {
	// MarkRead records verse as the last-read position in chapter.
	MarkRead(ctx context.Context, userID string, chapter, verse int) (*domain.ReadingProgress, error)
	// Chapter returns the user's position within one chapter.
	Chapter(ctx context.Context, userID string, chapter int) (*domain.ReadingProgress, error)
	// List returns all per-chapter positions for a user.
	List(ctx context.Context, userID string) ([]domain.ReadingProgress, error)
	// Overall aggregates completion across the whole text.
	Overall(ctx context.Context, userID string) (*services.Overview, error)
	// Reset forgets the user's position in chapter.
	Reset(ctx context.Context, userID string, chapter int) error
}

// MarkProgressRequest is the JSON payload for recording a reading position.
type MarkProgressRequest struct {
	// Chapter is the surah number (1-114).
	Chapter int `json:"chapter" binding:"required,min=1,max=114" example:"2"`
	// Verse is the last-read ayah number within the chapter.
	Verse int `json:"verse" binding:"required,min=1" example:"255"`
}

// ListProgressResponse wraps the user's per-chapter positions.
type ListProgressResponse struct {
	Progress []domain.ReadingProgress `json:"progress"`
	Count    int                      `json:"count"`
}

// chapterParam parses and validates the {chapter} path parameter.
func chapterParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("chapter"))
	if err != nil || !quran.ValidChapter(n) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "chapter must be between 1 and 114")
		return 0, false
	}
	return n, true
}

// MarkProgress godoc
// @ID          markProgress
// @Summary     Record reading position
// @Description Upserts the last-read verse for a chapter and returns the stored position.
// @Tags        Progress
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.MarkProgressRequest  true  "Chapter and verse"
//
// @Success     200  {object}  domain.ReadingProgress
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /progress [put]
func (h *Handlers) MarkProgress(c *gin.Context) {
	var req MarkProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.progressSvc.MarkRead(c.Request.Context(), userID(c), req.Chapter, req.Verse)
	if err != nil {
		if errors.Is(err, services.ErrInvalidVerseRef) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "verse reference out of range")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// ListProgress godoc
// @ID          listProgress
// @Summary     List reading positions
// @Description Returns the user's last-read position for every started chapter.
// @Tags        Progress
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object} handlers.ListProgressResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /progress [get]
func (h *Handlers) ListProgress(c *gin.Context) {
	items, err := h.progressSvc.List(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListProgressResponse{Progress: items, Count: len(items)})
}

// ProgressOverview godoc
// @ID          progressOverview
// @Summary     Reading completion overview
// @Description Aggregates chapters started, verses read, and percent of the whole text.
// @Tags        Progress
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object} services.Overview
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /progress/overview [get]
func (h *Handlers) ProgressOverview(c *gin.Context) {
	ov, err := h.progressSvc.Overall(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, ov)
}

// GetProgress godoc
// @ID          getProgress
// @Summary     Get chapter position
// @Description Returns the user's last-read verse within one chapter.
// @Tags        Progress
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       chapter    path    int     true  "Chapter number (1-114)" minimum(1) maximum(114)
//
// @Success     200  {object} domain.ReadingProgress
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "No progress for chapter"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /progress/{chapter} [get]
func (h *Handlers) GetProgress(c *gin.Context) {
	chapter, valid := chapterParam(c)
	if !valid {
		return
	}

	p, err := h.progressSvc.Chapter(c.Request.Context(), userID(c), chapter)
	if err != nil {
		if errors.Is(err, services.ErrProgressNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no reading progress for chapter")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// ResetProgress godoc
// @ID          resetProgress
// @Summary     Reset chapter position
// @Description Forgets the user's last-read verse within one chapter.
// @Tags        Progress
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       chapter    path    int     true  "Chapter number (1-114)" minimum(1) maximum(114)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "No progress for chapter"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /progress/{chapter} [delete]
func (h *Handlers) ResetProgress(c *gin.Context) {
	chapter, valid := chapterParam(c)
	if !valid {
		return
	}

	if err := h.progressSvc.Reset(c.Request.Context(), userID(c), chapter); err != nil {
		if errors.Is(err, services.ErrProgressNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no reading progress for chapter")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}
