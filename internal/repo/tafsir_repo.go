// Package repo – tafsir persistence.
//
// This file provides repository functions for the TafsirSource and
// TafsirEntry models. Imports are idempotent: sources and entries are
// upserted, so re-running an import never duplicates rows.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-quran-backend/internal/domain"
)

// UpsertTafsirSource inserts a commentary source or refreshes its names if
// a row with the same external id already exists. The surviving row is
// returned.
func UpsertTafsirSource(ctx context.Context, db *gorm.DB, externalID int, name, arabicName, language string) (*domain.TafsirSource, error) {
	s := &domain.TafsirSource{
		ID:         uuid.NewString(),
		ExternalID: externalID,
		Name:       name,
		ArabicName: arabicName,
		Language:   language,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":        name,
				"arabic_name": arabicName,
				"language":    language,
				"updated_at":  time.Now().UTC(),
			}),
		}).
		Create(s).Error
	if err != nil {
		return nil, err
	}
	return GetTafsirSourceByExternalID(ctx, db, externalID)
}

// GetTafsirSourceByExternalID fetches a source by its upstream resource id.
// Returns ErrNotFound when the source has never been imported.
func GetTafsirSourceByExternalID(ctx context.Context, db *gorm.DB, externalID int) (*domain.TafsirSource, error) {
	var s domain.TafsirSource
	err := db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListTafsirSources returns all imported sources ordered by external id.
func ListTafsirSources(ctx context.Context, db *gorm.DB) ([]domain.TafsirSource, error) {
	var out []domain.TafsirSource
	err := db.WithContext(ctx).
		Order("external_id asc").
		Find(&out).Error
	return out, err
}

// UpsertTafsirEntry stores the commentary text for one verse, replacing any
// previous entry from the same source for that verse.
func UpsertTafsirEntry(ctx context.Context, db *gorm.DB, sourceID string, chapter, verse int, text string) (*domain.TafsirEntry, error) {
	e := &domain.TafsirEntry{
		ID:            uuid.NewString(),
		SourceID:      sourceID,
		ChapterNumber: chapter,
		VerseNumber:   verse,
		Text:          text,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "source_id"}, {Name: "chapter_number"}, {Name: "verse_number"}},
			DoUpdates: clause.Assignments(map[string]any{
				"text":       text,
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(e).Error
	if err != nil {
		return nil, err
	}
	return GetTafsirEntry(ctx, db, sourceID, chapter, verse)
}

// GetTafsirEntry fetches one verse's commentary from one source.
// Returns ErrNotFound when no entry has been imported for that verse.
func GetTafsirEntry(ctx context.Context, db *gorm.DB, sourceID string, chapter, verse int) (*domain.TafsirEntry, error) {
	var e domain.TafsirEntry
	err := db.WithContext(ctx).
		Where("source_id = ? AND chapter_number = ? AND verse_number = ?", sourceID, chapter, verse).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListTafsirEntriesByChapter returns one source's entries for a whole
// chapter, ordered by verse.
func ListTafsirEntriesByChapter(ctx context.Context, db *gorm.DB, sourceID string, chapter int) ([]domain.TafsirEntry, error) {
	var out []domain.TafsirEntry
	err := db.WithContext(ctx).
		Where("source_id = ? AND chapter_number = ?", sourceID, chapter).
		Order("verse_number asc").
		Find(&out).Error
	return out, err
}

// CountTafsirEntries returns how many verse entries a source carries.
func CountTafsirEntries(ctx context.Context, db *gorm.DB, sourceID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.TafsirEntry{}).
		Where("source_id = ?", sourceID).
		Count(&total).Error
	return total, err
}
