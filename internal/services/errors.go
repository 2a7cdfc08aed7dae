// Package services defines the business logic for favorites, reading
// progress, tafsir imports, and query suggestions. This file centralizes
// common service-level error values so that they can be consistently
// returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

var (
	// ErrInvalidVerseRef is returned when a (chapter, verse) pair does not
	// name an existing verse.
	ErrInvalidVerseRef = errors.New("invalid verse reference")

	// ErrFavoriteNotFound indicates that the requested favorite does not
	// exist or is not accessible to the current user.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrDuplicateFavorite is returned when a user attempts to favorite a
	// verse they have already favorited.
	ErrDuplicateFavorite = errors.New("verse already favorited")

	// ErrProgressNotFound indicates that the user has no recorded progress
	// for the requested chapter.
	ErrProgressNotFound = errors.New("no reading progress for chapter")

	// ErrUnknownTafsirSource is returned when an import or lookup names a
	// commentary source that is not in the supported set.
	ErrUnknownTafsirSource = errors.New("unknown tafsir source")

	// ErrTafsirNotFound indicates that no commentary has been imported for
	// the requested verse.
	ErrTafsirNotFound = errors.New("tafsir entry not found")

	// ErrQueryTooShort is returned when a suggestion query is below the
	// minimum rune length.
	ErrQueryTooShort = errors.New("query too short")
)
