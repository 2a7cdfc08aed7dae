// Favorite HTTP handlers.
//
// This file exposes REST endpoints for bookmarked verses:
//   - POST   /favorites         (create)
//   - GET    /favorites         (list, optional chapter filter, ETag support)
//   - DELETE /favorites/{id}    (remove)
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-quran-backend/internal/domain"
	"github.com/tbourn/go-quran-backend/internal/quran"
	"github.com/tbourn/go-quran-backend/internal/repo"
	"github.com/tbourn/go-quran-backend/internal/services"
	"github.com/tbourn/go-quran-backend/internal/utils"
)

// FavoriteService defines verse bookmark operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type FavoriteService interface {
	// Add bookmarks a verse for userID with an optional note.
	Add(ctx context.Context, userID string, chapter, verse int, note string) (*domain.Favorite, error)
	// List returns all bookmarks for a user in reading order.
	List(ctx context.Context, userID string) ([]domain.Favorite, error)
	// ListByChapter returns the user's bookmarks within one chapter.
	ListByChapter(ctx context.Context, userID string, chapter int) ([]domain.Favorite, error)
	// Remove deletes a bookmark that belongs to userID.
	Remove(ctx context.Context, userID, id string) error
}

// CreateFavoriteRequest is the JSON payload for bookmarking a verse.
type CreateFavoriteRequest struct {
	// Chapter is the surah number (1-114).
	Chapter int `json:"chapter" binding:"required,min=1,max=114" example:"55"`
	// Verse is the 1-based ayah number within the chapter.
	Verse int `json:"verse" binding:"required,min=1" example:"13"`
	// Note optionally annotates the bookmark.
	Note string `json:"note" example:"recite daily"`
}

// ListFavoritesResponse wraps the user's bookmarks.
type ListFavoritesResponse struct {
	Favorites []domain.Favorite `json:"favorites"`
	Count     int               `json:"count"`
}

// CreateFavorite godoc
// @ID          createFavorite
// @Summary     Bookmark a verse
// @Description Bookmarks a verse for the current user and returns the favorite resource.
// @Tags        Favorites
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.CreateFavoriteRequest  true  "Verse reference and optional note"
//
// @Success     201  {object}  domain.Favorite
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Verse already bookmarked"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /favorites [post]
func (h *Handlers) CreateFavorite(c *gin.Context) {
	var req CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	fav, err := h.favoriteSvc.Add(c.Request.Context(), userID(c), req.Chapter, req.Verse, strings.TrimSpace(req.Note))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidVerseRef):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "verse reference out of range")
		case errors.Is(err, services.ErrDuplicateFavorite):
			fail(c, http.StatusConflict, ErrCodeConflict, "verse already bookmarked")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, fav)
}

// ListFavorites godoc
// @ID          listFavorites
// @Summary     List bookmarked verses
// @Description Returns the user's bookmarks in reading order. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Favorites
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"       example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       chapter        query   int     false "Restrict to one chapter"     minimum(1) maximum(114)
//
// @Success     200  {object} handlers.ListFavoritesResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /favorites [get]
func (h *Handlers) ListFavorites(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	chapter := utils.AtoiDefault(c.Query("chapter"), 0)
	if chapter != 0 && !quran.ValidChapter(chapter) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "chapter must be between 1 and 114")
		return
	}

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, isConcrete := h.favoriteSvc.(*services.FavoriteService); isConcrete {
		db = svc.DB
	}
	if db != nil && chapter == 0 {
		count, maxTS, err := repo.FavoritesStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"favorites:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	var (
		items []domain.Favorite
		err   error
	)
	if chapter != 0 {
		items, err = h.favoriteSvc.ListByChapter(ctx, uid, chapter)
	} else {
		items, err = h.favoriteSvc.List(ctx, uid)
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListFavoritesResponse{Favorites: items, Count: len(items)})
}

// DeleteFavorite godoc
// @ID          deleteFavorite
// @Summary     Remove a bookmark
// @Description Deletes a bookmark owned by the current user.
// @Tags        Favorites
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Favorite ID (UUID)"     format(uuid) example(141add05-4415-4938-b5a1-17e0d3171aff)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Favorite not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /favorites/{id} [delete]
func (h *Handlers) DeleteFavorite(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "favorite id must be a UUID")
		return
	}

	if err := h.favoriteSvc.Remove(c.Request.Context(), userID(c), id); err != nil {
		if errors.Is(err, services.ErrFavoriteNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "favorite not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}
