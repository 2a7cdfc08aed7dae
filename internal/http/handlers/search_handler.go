// Search HTTP handlers.
//
// This file exposes the ranked verse search endpoint:
//   - GET /search    (query across the corpus or one chapter)
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-quran-backend/internal/http/middleware"
	"github.com/tbourn/go-quran-backend/internal/quran"
	"github.com/tbourn/go-quran-backend/internal/search"
	"github.com/tbourn/go-quran-backend/internal/utils"
)

// SearchService defines the ranked verse search operation consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type SearchService interface {
	// Search returns verses matching query, best first.
	Search(ctx context.Context, query string, opts search.Options) ([]search.Result, error)
}

// SearchResponse wraps a ranked result set.
type SearchResponse struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Results []search.Result `json:"results"`
}

// Search godoc
// @ID          searchVerses
// @Summary     Search verses
// @Description Runs diacritic-insensitive ranked search over the Arabic verse text. Results carry a highlighted rendering of the matched spans.
// @Tags        Search
// @Produce     json
//
// @Param       q        query  string  true   "Arabic query text"                 example(رحمن)
// @Param       chapter  query  int     false  "Restrict to one chapter (1-114)"   minimum(1) maximum(114)
// @Param       limit    query  int     false  "Maximum results"                   minimum(1) maximum(100) default(100)
//
// @Success     200  {object}  handlers.SearchResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid parameters"
// @Failure     503  {object}  handlers.ErrorResponse  "Corpus still loading"
// @Failure     500  {object}  handlers.ErrorResponse  "Search failed"
// @Router      /search [get]
func (h *Handlers) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query parameter q is required")
		return
	}

	chapter := utils.AtoiDefault(c.Query("chapter"), 0)
	if chapter != 0 && !quran.ValidChapter(chapter) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "chapter must be between 1 and 114")
		return
	}
	limit := utils.ClampInt(utils.AtoiDefault(c.Query("limit"), search.DefaultLimit), 1, search.DefaultLimit)

	results, err := h.searchSvc.Search(c.Request.Context(), query, search.Options{
		ChapterNumber: chapter,
		Limit:         limit,
	})
	if err != nil {
		if errors.Is(err, search.ErrCorpusNotReady) {
			middleware.ObserveSearch("error")
			fail(c, http.StatusServiceUnavailable, ErrCodeCorpusNotReady, "verse text is still loading, retry shortly")
			return
		}
		middleware.ObserveSearch("error")
		fail(c, http.StatusInternalServerError, ErrCodeSearchFailed, err.Error())
		return
	}

	if len(results) == 0 {
		middleware.ObserveSearch("empty")
	} else {
		middleware.ObserveSearch("results")
	}
	ok(c, http.StatusOK, SearchResponse{Query: query, Count: len(results), Results: results})
}
