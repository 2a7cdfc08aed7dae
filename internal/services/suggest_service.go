// Package services – SuggestService
//
// This file implements the SuggestService, a thin policy layer over the
// query suggestion primitives: spelling corrections for queries that found
// nothing, and prefix completions for queries still being typed.
package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-quran-backend/internal/arabic"
)

// SuggestService applies length and normalization policy around the
// suggestion primitives.
type SuggestService struct {
	// MinRunes is the minimum query length eligible for suggestions.
	MinRunes int
}

// NewSuggestService constructs a SuggestService with sane defaults.
func NewSuggestService() *SuggestService {
	return &SuggestService{MinRunes: 2}
}

// Corrections returns alternative spellings for a query, best for "did you
// mean" prompts after an empty result set. Queries below the minimum
// length return ErrQueryTooShort.
func (s *SuggestService) Corrections(ctx context.Context, query string) ([]string, error) {
	_, span := otel.Tracer("services/SuggestService").Start(ctx, "Corrections",
		trace.WithAttributes(attribute.Int("query.runes", utf8.RuneCountInString(query))),
	)
	defer span.End()

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.MinRunes {
		return nil, ErrQueryTooShort
	}
	return arabic.Suggestions(query), nil
}

// Completions returns frequent-word completions for a query prefix.
// Queries below the minimum length return ErrQueryTooShort.
func (s *SuggestService) Completions(ctx context.Context, query string) ([]string, error) {
	_, span := otel.Tracer("services/SuggestService").Start(ctx, "Completions",
		trace.WithAttributes(attribute.Int("query.runes", utf8.RuneCountInString(query))),
	)
	defer span.End()

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.MinRunes {
		return nil, ErrQueryTooShort
	}
	return arabic.Autocomplete(query), nil
}
