// Package repo – aggregate/statistics queries.
//
// This file provides small aggregate queries used primarily for conditional
// responses (e.g., ETag generation) in the HTTP layer. Each function is
// context-aware and safe to call from services or handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-quran-backend/internal/domain"
)

// FavoritesStats returns aggregate metadata for a user's favorites: the
// total number of rows and the maximum UpdatedAt timestamp among those
// rows. When the user has no favorites, the returned count is 0 and
// maxUpdatedAt is nil.
func FavoritesStats(ctx context.Context, db *gorm.DB, userID string) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Favorite{}).Where("user_id = ?", userID)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}

// ProgressStats returns aggregate metadata for a user's reading progress:
// the number of chapters started and the maximum UpdatedAt timestamp.
// When the user has read nothing, the returned count is 0 and maxUpdatedAt
// is nil.
func ProgressStats(ctx context.Context, db *gorm.DB, userID string) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.ReadingProgress{}).Where("user_id = ?", userID)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
