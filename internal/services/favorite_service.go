// Package services – FavoriteService
//
// This file implements the FavoriteService, which manages per-user verse
// bookmarks. It validates verse references against the canonical chapter
// sizes, rejects duplicates early with a service-level error, and
// coordinates repository operations for creating, listing, and removing
// favorites.
//
// Observability: public methods are OpenTelemetry-instrumented; spans
// include the user identifier and verse reference where applicable.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-quran-backend/internal/domain"
	"github.com/tbourn/go-quran-backend/internal/quran"
	"github.com/tbourn/go-quran-backend/internal/repo"
)

// FavoriteRepo defines the repository contract required by FavoriteService.
type FavoriteRepo interface {
	// CreateFavorite inserts a new favorite row for the given user.
	CreateFavorite(ctx context.Context, db *gorm.DB, userID string, chapter, verse int, note string) (*domain.Favorite, error)

	// ListFavorites returns all favorites belonging to the user in reading order.
	ListFavorites(ctx context.Context, db *gorm.DB, userID string) ([]domain.Favorite, error)

	// ListFavoritesByChapter returns the user's favorites within one chapter.
	ListFavoritesByChapter(ctx context.Context, db *gorm.DB, userID string, chapter int) ([]domain.Favorite, error)

	// FindFavoriteByVerse fetches the user's favorite for one verse reference.
	FindFavoriteByVerse(ctx context.Context, db *gorm.DB, userID string, chapter, verse int) (*domain.Favorite, error)

	// DeleteFavorite removes a favorite by ID, enforcing user ownership.
	DeleteFavorite(ctx context.Context, db *gorm.DB, id, userID string) error

	// CountFavorites returns the total number of favorites for the user.
	CountFavorites(ctx context.Context, db *gorm.DB, userID string) (int64, error)
}

// FavoriteService provides bookmark operations over verses. It enforces
// verse validity and duplicate rules before touching persistence.
type FavoriteService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the favorite repository used by this service.
	Repo FavoriteRepo

	// NoteMaxLen caps stored notes by rune length.
	NoteMaxLen int
}

// NewFavoriteService constructs a FavoriteService with sane defaults.
func NewFavoriteService(db *gorm.DB, r FavoriteRepo) *FavoriteService {
	return &FavoriteService{
		DB:         db,
		Repo:       r,
		NoteMaxLen: 500,
	}
}

// Add bookmarks one verse for userID. The verse reference is validated
// against the canonical chapter sizes, and favoriting an already
// bookmarked verse returns ErrDuplicateFavorite.
func (s *FavoriteService) Add(ctx context.Context, userID string, chapter, verse int, note string) (*domain.Favorite, error) {
	tr := otel.Tracer("services/FavoriteService")
	ctx, span := tr.Start(ctx, "Add",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("chapter", chapter),
			attribute.Int("verse", verse),
		),
	)
	defer span.End()

	if !quran.ValidVerseRef(chapter, verse) {
		return nil, ErrInvalidVerseRef
	}

	note = strings.TrimSpace(note)
	if s.NoteMaxLen > 0 && utf8.RuneCountInString(note) > s.NoteMaxLen {
		runes := []rune(note)
		note = string(runes[:s.NoteMaxLen])
	}

	if _, err := s.Repo.FindFavoriteByVerse(ctx, s.DB, userID, chapter, verse); err == nil {
		return nil, ErrDuplicateFavorite
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	return s.Repo.CreateFavorite(ctx, s.DB, userID, chapter, verse, note)
}

// List returns all of userID's favorites in reading order.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	tr := otel.Tracer("services/FavoriteService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	return s.Repo.ListFavorites(ctx, s.DB, userID)
}

// ListByChapter returns userID's favorites within one chapter.
func (s *FavoriteService) ListByChapter(ctx context.Context, userID string, chapter int) ([]domain.Favorite, error) {
	tr := otel.Tracer("services/FavoriteService")
	ctx, span := tr.Start(ctx, "ListByChapter",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("chapter", chapter),
		),
	)
	defer span.End()

	if !quran.ValidChapter(chapter) {
		return nil, ErrInvalidVerseRef
	}
	return s.Repo.ListFavoritesByChapter(ctx, s.DB, userID, chapter)
}

// Remove deletes userID's favorite by ID. Missing or foreign rows return
// ErrFavoriteNotFound.
func (s *FavoriteService) Remove(ctx context.Context, userID, id string) error {
	tr := otel.Tracer("services/FavoriteService")
	ctx, span := tr.Start(ctx, "Remove",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("favorite.id", id),
		),
	)
	defer span.End()

	err := s.Repo.DeleteFavorite(ctx, s.DB, id, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}

// Count returns how many verses userID has bookmarked.
func (s *FavoriteService) Count(ctx context.Context, userID string) (int64, error) {
	return s.Repo.CountFavorites(ctx, s.DB, userID)
}
