// Package repo – reading progress persistence.
//
// This file provides repository functions for the ReadingProgress model.
// Progress is an upsert-shaped aggregate: one row per (user, chapter),
// updated in place as the user advances through a chapter.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-quran-backend/internal/domain"
)

// UpsertProgress records that userID reached the given verse in chapter.
// An existing row for the same (user, chapter) is updated in place,
// otherwise a new row is inserted.
func UpsertProgress(ctx context.Context, db *gorm.DB, userID string, chapter, verse int) (*domain.ReadingProgress, error) {
	p := &domain.ReadingProgress{
		ID:            uuid.NewString(),
		UserID:        userID,
		ChapterNumber: chapter,
		VerseNumber:   verse,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "chapter_number"}},
			DoUpdates: clause.Assignments(map[string]any{
				"verse_number": verse,
				"updated_at":   time.Now().UTC(),
			}),
		}).
		Create(p).Error
	if err != nil {
		return nil, err
	}
	// Re-read so callers see the surviving row, not the candidate insert.
	return GetProgress(ctx, db, userID, chapter)
}

// GetProgress fetches userID's progress in one chapter.
// Returns ErrNotFound when the chapter has never been read.
func GetProgress(ctx context.Context, db *gorm.DB, userID string, chapter int) (*domain.ReadingProgress, error) {
	var p domain.ReadingProgress
	err := db.WithContext(ctx).
		Where("user_id = ? AND chapter_number = ?", userID, chapter).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProgress returns all of userID's per-chapter progress rows in chapter
// order. It returns an empty slice for a user who has read nothing.
func ListProgress(ctx context.Context, db *gorm.DB, userID string) ([]domain.ReadingProgress, error) {
	var out []domain.ReadingProgress
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("chapter_number asc").
		Find(&out).Error
	return out, err
}

// SumProgressVerses returns the total number of verses userID has reached,
// summed across chapters. Used for overall completion percentage.
func SumProgressVerses(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var row struct {
		Total int64
	}
	err := db.WithContext(ctx).
		Model(&domain.ReadingProgress{}).
		Select("COALESCE(SUM(verse_number), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&row).Error
	return row.Total, err
}

// DeleteProgress removes userID's progress in one chapter. The delete is
// unscoped so a later re-read can upsert a fresh row under the unique
// (user, chapter) index.
// Returns ErrNotFound when no matching row exists.
func DeleteProgress(ctx context.Context, db *gorm.DB, userID string, chapter int) error {
	res := db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND chapter_number = ?", userID, chapter).
		Delete(&domain.ReadingProgress{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
