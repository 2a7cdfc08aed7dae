// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tbourn/go-quran-backend/internal/config"
	"github.com/tbourn/go-quran-backend/internal/domain"
	"github.com/tbourn/go-quran-backend/internal/http/handlers"
	"github.com/tbourn/go-quran-backend/internal/http/middleware"
	"github.com/tbourn/go-quran-backend/internal/quran"
	"github.com/tbourn/go-quran-backend/internal/repo"
	"github.com/tbourn/go-quran-backend/internal/search"
	"github.com/tbourn/go-quran-backend/internal/services"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// favoriteRepoShim adapts the repository free functions to the
// services.FavoriteRepo interface expected by the FavoriteService. This keeps
// services decoupled from the concrete repo package while reusing existing
// functions.
type favoriteRepoShim struct{}

// CreateFavorite proxies repo.CreateFavorite.
func (favoriteRepoShim) CreateFavorite(ctx context.Context, db *gorm.DB, userID string, chapter, verse int, note string) (*domain.Favorite, error) {
	return repo.CreateFavorite(ctx, db, userID, chapter, verse, note)
}

// ListFavorites proxies repo.ListFavorites.
func (favoriteRepoShim) ListFavorites(ctx context.Context, db *gorm.DB, userID string) ([]domain.Favorite, error) {
	return repo.ListFavorites(ctx, db, userID)
}

// ListFavoritesByChapter proxies repo.ListFavoritesByChapter.
func (favoriteRepoShim) ListFavoritesByChapter(ctx context.Context, db *gorm.DB, userID string, chapter int) ([]domain.Favorite, error) {
	return repo.ListFavoritesByChapter(ctx, db, userID, chapter)
}

// FindFavoriteByVerse proxies repo.FindFavoriteByVerse.
func (favoriteRepoShim) FindFavoriteByVerse(ctx context.Context, db *gorm.DB, userID string, chapter, verse int) (*domain.Favorite, error) {
	return repo.FindFavoriteByVerse(ctx, db, userID, chapter, verse)
}

// DeleteFavorite proxies repo.DeleteFavorite.
func (favoriteRepoShim) DeleteFavorite(ctx context.Context, db *gorm.DB, id, userID string) error {
	return repo.DeleteFavorite(ctx, db, id, userID)
}

// CountFavorites proxies repo.CountFavorites.
func (favoriteRepoShim) CountFavorites(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	return repo.CountFavorites(ctx, db, userID)
}

// progressRepoShim adapts the repository free functions to the
// services.ProgressRepo interface expected by the ProgressService.
type progressRepoShim struct{}

// UpsertProgress proxies repo.UpsertProgress.
func (progressRepoShim) UpsertProgress(ctx context.Context, db *gorm.DB, userID string, chapter, verse int) (*domain.ReadingProgress, error) {
	return repo.UpsertProgress(ctx, db, userID, chapter, verse)
}

// GetProgress proxies repo.GetProgress.
func (progressRepoShim) GetProgress(ctx context.Context, db *gorm.DB, userID string, chapter int) (*domain.ReadingProgress, error) {
	return repo.GetProgress(ctx, db, userID, chapter)
}

// ListProgress proxies repo.ListProgress.
func (progressRepoShim) ListProgress(ctx context.Context, db *gorm.DB, userID string) ([]domain.ReadingProgress, error) {
	return repo.ListProgress(ctx, db, userID)
}

// SumProgressVerses proxies repo.SumProgressVerses.
func (progressRepoShim) SumProgressVerses(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	return repo.SumProgressVerses(ctx, db, userID)
}

// DeleteProgress proxies repo.DeleteProgress.
func (progressRepoShim) DeleteProgress(ctx context.Context, db *gorm.DB, userID string, chapter int) error {
	return repo.DeleteProgress(ctx, db, userID, chapter)
}

// tafsirRepoShim adapts the repository free functions to the
// services.TafsirRepo interface expected by the TafsirService.
type tafsirRepoShim struct{}

// UpsertTafsirSource proxies repo.UpsertTafsirSource.
func (tafsirRepoShim) UpsertTafsirSource(ctx context.Context, db *gorm.DB, externalID int, name, arabicName, language string) (*domain.TafsirSource, error) {
	return repo.UpsertTafsirSource(ctx, db, externalID, name, arabicName, language)
}

// GetTafsirSourceByExternalID proxies repo.GetTafsirSourceByExternalID.
func (tafsirRepoShim) GetTafsirSourceByExternalID(ctx context.Context, db *gorm.DB, externalID int) (*domain.TafsirSource, error) {
	return repo.GetTafsirSourceByExternalID(ctx, db, externalID)
}

// UpsertTafsirEntry proxies repo.UpsertTafsirEntry.
func (tafsirRepoShim) UpsertTafsirEntry(ctx context.Context, db *gorm.DB, sourceID string, chapter, verse int, text string) (*domain.TafsirEntry, error) {
	return repo.UpsertTafsirEntry(ctx, db, sourceID, chapter, verse, text)
}

// GetTafsirEntry proxies repo.GetTafsirEntry.
func (tafsirRepoShim) GetTafsirEntry(ctx context.Context, db *gorm.DB, sourceID string, chapter, verse int) (*domain.TafsirEntry, error) {
	return repo.GetTafsirEntry(ctx, db, sourceID, chapter, verse)
}

// ListTafsirEntriesByChapter proxies repo.ListTafsirEntriesByChapter.
func (tafsirRepoShim) ListTafsirEntriesByChapter(ctx context.Context, db *gorm.DB, sourceID string, chapter int) ([]domain.TafsirEntry, error) {
	return repo.ListTafsirEntriesByChapter(ctx, db, sourceID, chapter)
}

// CountTafsirEntries proxies repo.CountTafsirEntries.
func (tafsirRepoShim) CountTafsirEntries(ctx context.Context, db *gorm.DB, sourceID string) (int64, error) {
	return repo.CountTafsirEntries(ctx, db, sourceID)
}

// chapterCatalog serves chapter reads from the corpus cache, falling back to
// the upstream client only for the full listing, which the corpus does not
// index by itself.
type chapterCatalog struct {
	client *quran.Client
	corpus *search.Corpus
}

// ListChapters proxies the upstream chapter listing.
func (cc chapterCatalog) ListChapters(ctx context.Context) ([]quran.Chapter, error) {
	return cc.client.ListChapters(ctx)
}

// Chapter reads one chapter through the corpus cache.
func (cc chapterCatalog) Chapter(ctx context.Context, n int) (*quran.Chapter, error) {
	return cc.corpus.Chapter(ctx, n)
}

// boundedSearcher caps result sets at the configured maximum regardless of
// what the caller asked for.
type boundedSearcher struct {
	inner *search.Searcher
	max   int
}

// Search clamps opts.Limit to the configured maximum and delegates.
func (b boundedSearcher) Search(ctx context.Context, query string, opts search.Options) ([]search.Result, error) {
	if b.max > 0 && (opts.Limit <= 0 || opts.Limit > b.max) {
		opts.Limit = b.max
	}
	return b.inner.Search(ctx, query, opts)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting, CORS
// and security headers, health/readiness and metrics endpoints, and then
// mounts the versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Response compression
//  7. Metrics
//  8. Rate limiter (per user/IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, corpus *search.Corpus, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.Logger(middleware.LogOptions{
		MaskHeaders: []string{
			"X-API-Key", // project-specific sensitive header example
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress responses; Arabic verse payloads shrink well
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Readiness flips once the whole corpus is cached; single-chapter reads
	// work before that.
	r.GET("/readyz", func(c *gin.Context) {
		loaded := corpus.Loaded()
		if !corpus.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":          "loading",
				"chapters_loaded": loaded,
				"chapters_total":  quran.TotalChapters,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":          "ready",
			"chapters_loaded": loaded,
			"chapters_total":  quran.TotalChapters,
		})
	})

	// Swagger UI (off by default)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db/corpus/upstream clients
	client := quran.NewClient(cfg.Quran.BaseURL, cfg.Quran.Timeout)
	tafsirClient := quran.NewTafsirClient(cfg.Quran.TafsirBaseURL, cfg.Quran.Timeout)

	chapterSvc := chapterCatalog{client: client, corpus: corpus}
	searchSvc := boundedSearcher{inner: search.NewSearcher(corpus), max: cfg.Search.MaxResults}
	suggestSvc := services.NewSuggestService()
	favoriteSvc := services.NewFavoriteService(db, favoriteRepoShim{})
	progressSvc := services.NewProgressService(db, progressRepoShim{})
	tafsirSvc := services.NewTafsirService(db, tafsirRepoShim{}, tafsirClient)

	h := handlers.New(chapterSvc, searchSvc, suggestSvc, favoriteSvc, progressSvc, tafsirSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Chapters
		api.GET("/chapters", h.ListChapters)
		api.GET("/chapters/:ref", h.GetChapter)

		// Search and suggestions
		api.GET("/search", h.Search)
		api.GET("/suggestions", h.Suggestions)

		// Favorites
		api.POST("/favorites", h.CreateFavorite)
		api.GET("/favorites", h.ListFavorites)
		api.DELETE("/favorites/:id", h.DeleteFavorite)

		// Reading progress
		api.PUT("/progress", h.MarkProgress)
		api.GET("/progress", h.ListProgress)
		api.GET("/progress/overview", h.ProgressOverview)
		api.GET("/progress/:chapter", h.GetProgress)
		api.DELETE("/progress/:chapter", h.ResetProgress)

		// Tafsir
		api.GET("/tafsir/sources", h.ListTafsirSources)
		api.GET("/tafsir/status", h.TafsirStatus)
		api.POST("/tafsir/import", h.ImportTafsir)
		api.GET("/tafsir/:source/:chapter", h.GetTafsirChapter)
		api.GET("/tafsir/:source/:chapter/:verse", h.GetTafsirVerse)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
