// Suggestion HTTP handlers.
//
// This file exposes the query-assist endpoint:
//   - GET /suggestions    (spelling corrections and completions)
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-quran-backend/internal/services"
)

// SuggestService defines query-assist operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type SuggestService interface {
	// Corrections proposes alternative spellings for a query.
	Corrections(ctx context.Context, query string) ([]string, error)
	// Completions proposes longer phrases starting from a query prefix.
	Completions(ctx context.Context, query string) ([]string, error)
}

// SuggestionsResponse carries corrections and completions for one query.
type SuggestionsResponse struct {
	Query       string   `json:"query"`
	Corrections []string `json:"corrections"`
	Completions []string `json:"completions"`
}

// Suggestions godoc
// @ID          getSuggestions
// @Summary     Suggest query alternatives
// @Description Returns spelling corrections and autocomplete candidates for an Arabic query.
// @Tags        Search
// @Produce     json
//
// @Param       q  query  string  true  "Arabic query text (at least 2 letters)"  example(رحمان)
//
// @Success     200  {object}  handlers.SuggestionsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Query missing or too short"
// @Router      /suggestions [get]
func (h *Handlers) Suggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query parameter q is required")
		return
	}
	ctx := c.Request.Context()

	corrections, err := h.suggestSvc.Corrections(ctx, query)
	if err != nil {
		if errors.Is(err, services.ErrQueryTooShort) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query must be at least 2 letters")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	completions, err := h.suggestSvc.Completions(ctx, query)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	ok(c, http.StatusOK, SuggestionsResponse{
		Query:       query,
		Corrections: corrections,
		Completions: completions,
	})
}
