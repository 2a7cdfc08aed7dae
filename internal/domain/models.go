// Package domain defines the persistence models for favorites, reading
// progress, and imported tafsir commentary. These types are mapped with
// GORM and form the mutable data layer of the application; the Quran text
// itself is never persisted here, it lives in the in-memory corpus.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Favorite marks a single verse a user has bookmarked. A user can favorite
// a verse at most once (enforced by unique index).
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserID: identifier of the owner; indexed for efficient retrieval.
//   - ChapterNumber / VerseNumber: the bookmarked verse reference.
//   - Note: optional free-form annotation.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (retains row for audit/history).
type Favorite struct {
	ID            string         `json:"id"             gorm:"type:char(36);primaryKey"`
	UserID        string         `json:"user_id"        gorm:"type:varchar(64);not null;index:idx_user_favorites;uniqueIndex:ux_favorite_user_verse"`
	ChapterNumber int            `json:"chapter_number" gorm:"not null;check:chapter_number BETWEEN 1 AND 114;uniqueIndex:ux_favorite_user_verse"`
	VerseNumber   int            `json:"verse_number"   gorm:"not null;check:verse_number >= 1;uniqueIndex:ux_favorite_user_verse"`
	Note          string         `json:"note,omitempty" gorm:"type:text"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-"              gorm:"index"`
}

// TableName returns the database table name for Favorite.
func (Favorite) TableName() string { return "favorites" }

// ReadingProgress records the last verse a user reached in one chapter.
// One row per user and chapter (enforced by unique index); re-reads update
// the row in place.
type ReadingProgress struct {
	ID            string         `json:"id"             gorm:"type:char(36);primaryKey"`
	UserID        string         `json:"user_id"        gorm:"type:varchar(64);not null;index:idx_user_progress;uniqueIndex:ux_progress_user_chapter"`
	ChapterNumber int            `json:"chapter_number" gorm:"not null;check:chapter_number BETWEEN 1 AND 114;uniqueIndex:ux_progress_user_chapter"`
	VerseNumber   int            `json:"verse_number"   gorm:"not null;check:verse_number >= 1"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-"              gorm:"index"`
}

// TableName returns the database table name for ReadingProgress.
func (ReadingProgress) TableName() string { return "reading_progress" }

// TafsirSource is one commentary collection available for import, e.g.
// Ibn Kathir. ExternalID is the upstream api.quran.com resource id.
type TafsirSource struct {
	ID         string         `json:"id"          gorm:"type:char(36);primaryKey"`
	ExternalID int            `json:"external_id" gorm:"not null;uniqueIndex:ux_tafsir_source_external"`
	Name       string         `json:"name"        gorm:"type:varchar(255);not null"`
	ArabicName string         `json:"arabic_name" gorm:"type:varchar(255);not null"`
	Language   string         `json:"language"    gorm:"type:varchar(16);not null;default:'ar'"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-"           gorm:"index"`
}

// TableName returns the database table name for TafsirSource.
func (TafsirSource) TableName() string { return "tafsir_sources" }

// TafsirEntry is the imported commentary text for one verse from one
// source. Text is stored already cleaned of HTML markup and is only
// accepted when it passes the Arabic-content validation at import time.
//
// A source carries at most one entry per verse (enforced by unique index).
// Entries are cascade-deleted when their source is removed.
type TafsirEntry struct {
	ID            string         `json:"id"             gorm:"type:char(36);primaryKey"`
	SourceID      string         `json:"source_id"      gorm:"type:char(36);not null;index;uniqueIndex:ux_tafsir_entry_verse"`
	ChapterNumber int            `json:"chapter_number" gorm:"not null;check:chapter_number BETWEEN 1 AND 114;uniqueIndex:ux_tafsir_entry_verse"`
	VerseNumber   int            `json:"verse_number"   gorm:"not null;check:verse_number >= 1;uniqueIndex:ux_tafsir_entry_verse"`
	Text          string         `json:"text"           gorm:"type:text;not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-"              gorm:"index"`

	// Source is the parent commentary collection. Entries are
	// cascade-deleted if their source is removed.
	Source TafsirSource `json:"-" gorm:"foreignKey:SourceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for TafsirEntry.
func (TafsirEntry) TableName() string { return "tafsir_entries" }
