// Package services – ProgressService
//
// This file implements the ProgressService, which tracks how far a user has
// read in each chapter and derives overall completion across the whole
// text. Progress writes are upserts: one row per (user, chapter), updated
// in place as the reader advances.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-quran-backend/internal/domain"
	"github.com/tbourn/go-quran-backend/internal/quran"
	"github.com/tbourn/go-quran-backend/internal/repo"
)

// ProgressRepo defines the repository contract required by ProgressService.
type ProgressRepo interface {
	// UpsertProgress records the last verse reached in one chapter.
	UpsertProgress(ctx context.Context, db *gorm.DB, userID string, chapter, verse int) (*domain.ReadingProgress, error)

	// GetProgress fetches the user's progress in one chapter.
	GetProgress(ctx context.Context, db *gorm.DB, userID string, chapter int) (*domain.ReadingProgress, error)

	// ListProgress returns all per-chapter progress rows for the user.
	ListProgress(ctx context.Context, db *gorm.DB, userID string) ([]domain.ReadingProgress, error)

	// SumProgressVerses totals the verses reached across chapters.
	SumProgressVerses(ctx context.Context, db *gorm.DB, userID string) (int64, error)

	// DeleteProgress removes the user's progress in one chapter.
	DeleteProgress(ctx context.Context, db *gorm.DB, userID string, chapter int) error
}

// Overview summarizes a user's reading across the whole text.
type Overview struct {
	ChaptersStarted int     `json:"chapters_started"`
	VersesRead      int64   `json:"verses_read"`
	Percent         float64 `json:"percent"`
}

// ProgressService tracks per-chapter reading positions.
type ProgressService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the progress repository used by this service.
	Repo ProgressRepo
}

// NewProgressService constructs a ProgressService.
func NewProgressService(db *gorm.DB, r ProgressRepo) *ProgressService {
	return &ProgressService{DB: db, Repo: r}
}

// MarkRead records that userID reached the given verse. The reference is
// validated against the canonical chapter sizes.
func (s *ProgressService) MarkRead(ctx context.Context, userID string, chapter, verse int) (*domain.ReadingProgress, error) {
	tr := otel.Tracer("services/ProgressService")
	ctx, span := tr.Start(ctx, "MarkRead",
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
	return s.Repo.UpsertProgress(ctx, s.DB, userID, chapter, verse)
}

// Chapter returns userID's position in one chapter, or ErrProgressNotFound
// when the chapter has never been read.
func (s *ProgressService) Chapter(ctx context.Context, userID string, chapter int) (*domain.ReadingProgress, error) {
	tr := otel.Tracer("services/ProgressService")
	ctx, span := tr.Start(ctx, "Chapter",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("chapter", chapter),
		),
	)
	defer span.End()

	if !quran.ValidChapter(chapter) {
		return nil, ErrInvalidVerseRef
	}
	p, err := s.Repo.GetProgress(ctx, s.DB, userID, chapter)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProgressNotFound
	}
	return p, err
}

// List returns all of userID's per-chapter progress rows in chapter order.
func (s *ProgressService) List(ctx context.Context, userID string) ([]domain.ReadingProgress, error) {
	tr := otel.Tracer("services/ProgressService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	return s.Repo.ListProgress(ctx, s.DB, userID)
}

// Overall derives userID's completion across all chapters. Percent is the
// share of the text's verses reached, in [0, 100].
func (s *ProgressService) Overall(ctx context.Context, userID string) (*Overview, error) {
	tr := otel.Tracer("services/ProgressService")
	ctx, span := tr.Start(ctx, "Overall",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	rows, err := s.Repo.ListProgress(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	read, err := s.Repo.SumProgressVerses(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	return &Overview{
		ChaptersStarted: len(rows),
		VersesRead:      read,
		Percent:         float64(read) / float64(quran.TotalVerses) * 100,
	}, nil
}

// Reset forgets userID's progress in one chapter. Missing rows return
// ErrProgressNotFound.
func (s *ProgressService) Reset(ctx context.Context, userID string, chapter int) error {
	tr := otel.Tracer("services/ProgressService")
	ctx, span := tr.Start(ctx, "Reset",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("chapter", chapter),
		),
	)
	defer span.End()

	if !quran.ValidChapter(chapter) {
		return ErrInvalidVerseRef
	}
	err := s.Repo.DeleteProgress(ctx, s.DB, userID, chapter)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrProgressNotFound
	}
	return err
}
