// Command server runs the Quran backend HTTP API: chapter reading,
// Arabic verse search with highlighting, favorites, reading progress and
// tafsir commentary import.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/tbourn/go-quran-backend/docs"
	"github.com/tbourn/go-quran-backend/internal/config"
	httpapi "github.com/tbourn/go-quran-backend/internal/http"
	"github.com/tbourn/go-quran-backend/internal/http/middleware"
	"github.com/tbourn/go-quran-backend/internal/observability"
	"github.com/tbourn/go-quran-backend/internal/quran"
	"github.com/tbourn/go-quran-backend/internal/repo"
	"github.com/tbourn/go-quran-backend/internal/search"
	"github.com/tbourn/go-quran-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title           Quran Backend API
// @version         1.0
// @description     Read Quran chapters, search Arabic verse text with highlighting, keep favorites and reading progress, and import tafsir commentary.
// @BasePath        /api/v1
// @schemes         http https
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(sysutil.FirstNonEmpty(os.Getenv("LOG_LEVEL"), cfg.LogLevel))
	if cfg.LogPretty || sysutil.IsTruthy(os.Getenv("LOG_PRETTY")) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(c); err != nil {
			log.Warn().Err(err).Msg("otel shutdown failed")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database failed")
	}

	client := quran.NewClient(cfg.Quran.BaseURL, cfg.Quran.Timeout)
	corpus := search.NewCorpus(client)
	if cfg.Search.PreloadOnStart {
		go func() {
			start := time.Now()
			if err := corpus.Preload(ctx, cfg.Search.PreloadParallel); err != nil {
				log.Warn().Err(err).
					Int("chapters_loaded", corpus.Loaded()).
					Msg("corpus preload incomplete; search serves per-chapter until filled")
			} else {
				log.Info().
					Dur("took", time.Since(start)).
					Int("chapters_loaded", corpus.Loaded()).
					Msg("corpus preload complete")
			}
			middleware.SetCorpusLoaded(corpus.Loaded())
		}()
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, corpus, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("version", version).
			Str("addr", srv.Addr).
			Str("base_path", cfg.APIBasePath).
			Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
