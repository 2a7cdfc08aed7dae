// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Favorite
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a favorite is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-quran-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateFavorite inserts a new Favorite row owned by userID for the given
// verse reference. The ID is a randomly generated UUID (string), and
// CreatedAt is set to UTC. The unique index on (user, chapter, verse)
// rejects duplicates; that constraint error is propagated unchanged.
func CreateFavorite(ctx context.Context, db *gorm.DB, userID string, chapter, verse int, note string) (*domain.Favorite, error) {
	f := &domain.Favorite{
		ID:            uuid.NewString(),
		UserID:        userID,
		ChapterNumber: chapter,
		VerseNumber:   verse,
		Note:          note,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// ListFavorites returns all favorites belonging to userID in reading order
// (chapter, then verse). It returns an empty slice if the user has none.
func ListFavorites(ctx context.Context, db *gorm.DB, userID string) ([]domain.Favorite, error) {
	var out []domain.Favorite
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("chapter_number asc, verse_number asc").
		Find(&out).Error
	return out, err
}

// ListFavoritesByChapter returns userID's favorites within one chapter,
// ordered by verse.
func ListFavoritesByChapter(ctx context.Context, db *gorm.DB, userID string, chapter int) ([]domain.Favorite, error) {
	var out []domain.Favorite
	err := db.WithContext(ctx).
		Where("user_id = ? AND chapter_number = ?", userID, chapter).
		Order("verse_number asc").
		Find(&out).Error
	return out, err
}

// GetFavorite fetches a favorite by ID, enforcing user ownership.
// Returns ErrNotFound when no matching row exists.
func GetFavorite(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Favorite, error) {
	var f domain.Favorite
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindFavoriteByVerse fetches userID's favorite for one verse reference.
// Returns ErrNotFound when the verse is not favorited.
func FindFavoriteByVerse(ctx context.Context, db *gorm.DB, userID string, chapter, verse int) (*domain.Favorite, error) {
	var f domain.Favorite
	err := db.WithContext(ctx).
		Where("user_id = ? AND chapter_number = ? AND verse_number = ?", userID, chapter, verse).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFavorite removes a favorite by ID, enforcing user ownership.
// The delete is unscoped so the unique (user, chapter, verse) index does
// not block favoriting the same verse again later.
// Returns ErrNotFound when no matching row exists.
func DeleteFavorite(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).Unscoped().
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountFavorites returns the total number of favorites owned by userID.
func CountFavorites(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
