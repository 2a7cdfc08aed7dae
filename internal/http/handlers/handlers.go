// Handler wiring shared by all endpoint files.
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Service contracts are declared
// next to the endpoints that consume them (see the per-resource files).
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP endpoints for chapters, search, suggestions,
// favorites, reading progress, and tafsir. It depends on abstract service
// interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	chapterSvc  ChapterService
	searchSvc   SearchService
	suggestSvc  SuggestService
	favoriteSvc FavoriteService
	progressSvc ProgressService
	tafsirSvc   TafsirService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(
	chapterSvc ChapterService,
	searchSvc SearchService,
	suggestSvc SuggestService,
	favoriteSvc FavoriteService,
	progressSvc ProgressService,
	tafsirSvc TafsirService,
) *Handlers {
	return &Handlers{
		chapterSvc:  chapterSvc,
		searchSvc:   searchSvc,
		suggestSvc:  suggestSvc,
		favoriteSvc: favoriteSvc,
		progressSvc: progressSvc,
		tafsirSvc:   tafsirSvc,
	}
}

// userID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}
