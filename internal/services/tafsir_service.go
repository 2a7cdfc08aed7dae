// Package services – TafsirService
//
// This file implements the TafsirService, which imports Arabic commentary
// (tafsir) verse by verse from an upstream provider and serves it from
// local storage afterwards. Imports are idempotent and validated: fetched
// text is stripped of HTML markup and rejected unless it is predominantly
// Arabic, so a misconfigured upstream can never pollute the store with
// translations or markup.
package services

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-quran-backend/internal/arabic"
	"github.com/tbourn/go-quran-backend/internal/domain"
	"github.com/tbourn/go-quran-backend/internal/quran"
	"github.com/tbourn/go-quran-backend/internal/repo"
)

// Source describes one supported commentary collection.
type Source struct {
	ExternalID int    `json:"external_id"`
	Name       string `json:"name"`
	ArabicName string `json:"arabic_name"`
}

// knownSources is the supported Arabic commentary set, keyed by the
// upstream resource id.
var knownSources = map[int]Source{
	169: {ExternalID: 169, Name: "Ibn Kathir", ArabicName: "تفسير ابن كثير"},
	170: {ExternalID: 170, Name: "Saadi", ArabicName: "تفسير السعدي"},
	164: {ExternalID: 164, Name: "Tabari", ArabicName: "تفسير الطبري"},
	168: {ExternalID: 168, Name: "Qurtubi", ArabicName: "تفسير القرطبي"},
	74:  {ExternalID: 74, Name: "Jalalayn", ArabicName: "تفسير الجلالين"},
}

// TafsirFetcher is the upstream dependency of TafsirService, typically
// quran.TafsirClient. An empty string with nil error means the source has
// no entry for that verse.
type TafsirFetcher interface {
	FetchVerseCommentary(ctx context.Context, sourceID, chapter, verse int) (string, error)
}

// TafsirRepo defines the repository contract required by TafsirService.
type TafsirRepo interface {
	UpsertTafsirSource(ctx context.Context, db *gorm.DB, externalID int, name, arabicName, language string) (*domain.TafsirSource, error)
	GetTafsirSourceByExternalID(ctx context.Context, db *gorm.DB, externalID int) (*domain.TafsirSource, error)
	UpsertTafsirEntry(ctx context.Context, db *gorm.DB, sourceID string, chapter, verse int, text string) (*domain.TafsirEntry, error)
	GetTafsirEntry(ctx context.Context, db *gorm.DB, sourceID string, chapter, verse int) (*domain.TafsirEntry, error)
	ListTafsirEntriesByChapter(ctx context.Context, db *gorm.DB, sourceID string, chapter int) ([]domain.TafsirEntry, error)
	CountTafsirEntries(ctx context.Context, db *gorm.DB, sourceID string) (int64, error)
}

// ImportReport summarizes one chapter import.
type ImportReport struct {
	SourceID int `json:"source_id"`
	Chapter  int `json:"chapter"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// SourceStatus reports how much of one source has been imported so far.
type SourceStatus struct {
	Source   Source  `json:"source"`
	Entries  int64   `json:"entries"`
	Coverage float64 `json:"coverage"`
}

// TafsirService imports and serves verse commentary.
type TafsirService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the tafsir repository used by this service.
	Repo TafsirRepo
	// Fetch retrieves raw commentary from the upstream provider.
	Fetch TafsirFetcher
}

// NewTafsirService constructs a TafsirService.
func NewTafsirService(db *gorm.DB, r TafsirRepo, f TafsirFetcher) *TafsirService {
	return &TafsirService{DB: db, Repo: r, Fetch: f}
}

// Sources lists the supported commentary collections in a stable order.
func (s *TafsirService) Sources() []Source {
	out := make([]Source, 0, len(knownSources))
	for _, src := range knownSources {
		out = append(out, src)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExternalID < out[j].ExternalID })
	return out
}

// ImportChapter fetches one source's commentary for every verse of a
// chapter and stores the entries that pass validation. Verses whose text is
// missing, empty after HTML cleanup, or not predominantly Arabic are
// counted as skipped. Upstream fetch errors abort the import; everything
// stored before the failure is kept, and re-running the import resumes
// idempotently.
func (s *TafsirService) ImportChapter(ctx context.Context, externalID, chapter int) (*ImportReport, error) {
	tr := otel.Tracer("services/TafsirService")
	ctx, span := tr.Start(ctx, "ImportChapter",
		trace.WithAttributes(
			attribute.Int("tafsir.source", externalID),
			attribute.Int("chapter", chapter),
		),
	)
	defer span.End()

	src, ok := knownSources[externalID]
	if !ok {
		return nil, ErrUnknownTafsirSource
	}
	if !quran.ValidChapter(chapter) {
		return nil, ErrInvalidVerseRef
	}

	stored, err := s.Repo.UpsertTafsirSource(ctx, s.DB, src.ExternalID, src.Name, src.ArabicName, "ar")
	if err != nil {
		return nil, err
	}

	report := &ImportReport{SourceID: externalID, Chapter: chapter}
	for verse := 1; verse <= quran.VerseCount(chapter); verse++ {
		raw, err := s.Fetch.FetchVerseCommentary(ctx, externalID, chapter, verse)
		if err != nil {
			return report, err
		}
		text := arabic.CleanHTML(raw)
		if text == "" || !arabic.IsMostlyArabic(text) {
			report.Skipped++
			continue
		}
		if _, err := s.Repo.UpsertTafsirEntry(ctx, s.DB, stored.ID, chapter, verse, text); err != nil {
			return report, err
		}
		report.Imported++
	}
	return report, nil
}

// Verse returns the stored commentary of one source for one verse.
func (s *TafsirService) Verse(ctx context.Context, externalID, chapter, verse int) (*domain.TafsirEntry, error) {
	tr := otel.Tracer("services/TafsirService")
	ctx, span := tr.Start(ctx, "Verse",
		trace.WithAttributes(
			attribute.Int("tafsir.source", externalID),
			attribute.Int("chapter", chapter),
			attribute.Int("verse", verse),
		),
	)
	defer span.End()

	if _, ok := knownSources[externalID]; !ok {
		return nil, ErrUnknownTafsirSource
	}
	if !quran.ValidVerseRef(chapter, verse) {
		return nil, ErrInvalidVerseRef
	}

	src, err := s.Repo.GetTafsirSourceByExternalID(ctx, s.DB, externalID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTafsirNotFound
	} else if err != nil {
		return nil, err
	}

	e, err := s.Repo.GetTafsirEntry(ctx, s.DB, src.ID, chapter, verse)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTafsirNotFound
	}
	return e, err
}

// Chapter returns the stored commentary of one source for a whole chapter,
// in verse order. Chapters with no imported entries return an empty slice.
func (s *TafsirService) Chapter(ctx context.Context, externalID, chapter int) ([]domain.TafsirEntry, error) {
	tr := otel.Tracer("services/TafsirService")
	ctx, span := tr.Start(ctx, "Chapter",
		trace.WithAttributes(
			attribute.Int("tafsir.source", externalID),
			attribute.Int("chapter", chapter),
		),
	)
	defer span.End()

	if _, ok := knownSources[externalID]; !ok {
		return nil, ErrUnknownTafsirSource
	}
	if !quran.ValidChapter(chapter) {
		return nil, ErrInvalidVerseRef
	}

	src, err := s.Repo.GetTafsirSourceByExternalID(ctx, s.DB, externalID)
	if errors.Is(err, repo.ErrNotFound) {
		return []domain.TafsirEntry{}, nil
	} else if err != nil {
		return nil, err
	}
	return s.Repo.ListTafsirEntriesByChapter(ctx, s.DB, src.ID, chapter)
}

// Status reports per-source import coverage across the whole text.
// Sources that have never been imported report zero entries.
func (s *TafsirService) Status(ctx context.Context) ([]SourceStatus, error) {
	tr := otel.Tracer("services/TafsirService")
	ctx, span := tr.Start(ctx, "Status")
	defer span.End()

	out := make([]SourceStatus, 0, len(knownSources))
	for _, src := range s.Sources() {
		st := SourceStatus{Source: src}
		stored, err := s.Repo.GetTafsirSourceByExternalID(ctx, s.DB, src.ExternalID)
		if err == nil {
			n, err := s.Repo.CountTafsirEntries(ctx, s.DB, stored.ID)
			if err != nil {
				return nil, err
			}
			st.Entries = n
			st.Coverage = float64(n) / float64(quran.TotalVerses) * 100
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}
