package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tbourn/go-quran-backend/internal/arabic"
	"github.com/tbourn/go-quran-backend/internal/quran"
)

// testVerses is a tiny synthetic corpus with known match tiers for the
// query "رحمن": chapter 3 hits exact, chapters 1 and 55 hit via
// article stripping.
var testVerses = map[int][]quran.Verse{
	1:  {verse(1, "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ")},
	3:  {verse(1, "رحمن كريم")},
	55: {verse(1, "الرَّحْمَٰنُ"), verse(2, "عَلَّمَ الْقُرْآنَ")},
	90: {verse(1, "   "), verse(2, "")},
}

func readyCorpus(t *testing.T) *Corpus {
	t.Helper()
	c := NewCorpus(&fakeProvider{verses: testVerses})
	if err := c.Preload(context.Background(), 8); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	return c
}

func TestSearchBlankQuery(t *testing.T) {
	s := NewSearcher(readyCorpus(t))
	for _, q := range []string{"", "   ", "\t\n", "ًَّ"} {
		got, err := s.Search(context.Background(), q, Options{})
		if err != nil {
			t.Fatalf("Search(%q): %v", q, err)
		}
		if len(got) != 0 {
			t.Fatalf("Search(%q) returned %d results, want none", q, len(got))
		}
	}
}

func TestSearchNotReady(t *testing.T) {
	s := NewSearcher(NewCorpus(&fakeProvider{verses: testVerses}))
	if _, err := s.Search(context.Background(), "الله", Options{}); !errors.Is(err, ErrCorpusNotReady) {
		t.Fatalf("err = %v, want ErrCorpusNotReady", err)
	}
}

func TestSearchSingleChapterFetchesOnDemand(t *testing.T) {
	p := &fakeProvider{verses: testVerses}
	s := NewSearcher(NewCorpus(p))

	got, err := s.Search(context.Background(), "رحمن", Options{ChapterNumber: 55})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ChapterNumber != 55 || got[0].VerseNumber != 1 {
		t.Fatalf("results = %+v", got)
	}
	if p.calls.Load() != 1 {
		t.Fatalf("provider called %d times, want 1", p.calls.Load())
	}
}

func TestSearchRanking(t *testing.T) {
	s := NewSearcher(readyCorpus(t))

	got, err := s.Search(context.Background(), "رحمن", Options{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3: %+v", len(got), got)
	}

	// Exact hit first, then article-stripped hits in chapter order.
	if got[0].ChapterNumber != 3 || got[0].Score != arabic.ScoreExact || got[0].MatchType != "exact" {
		t.Fatalf("first result = %+v", got[0])
	}
	if got[1].ChapterNumber != 1 || got[1].Score != arabic.ScoreWord {
		t.Fatalf("second result = %+v", got[1])
	}
	if got[2].ChapterNumber != 55 || got[2].VerseNumber != 1 {
		t.Fatalf("third result = %+v", got[2])
	}
}

func TestSearchHighlightsMatches(t *testing.T) {
	s := NewSearcher(readyCorpus(t))

	got, err := s.Search(context.Background(), "بسم", Options{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	hl := got[0].HighlightedText
	if !strings.Contains(hl, "<mark>") || !strings.Contains(hl, "</mark>") {
		t.Fatalf("highlighted text %q lacks default markers", hl)
	}
	if got[0].Text == hl {
		t.Fatal("highlighted text should differ from the raw verse")
	}
	if got[0].ChapterName == "" {
		t.Fatal("chapter name should be populated")
	}
}

func TestSearchCustomMarker(t *testing.T) {
	s := NewSearcher(readyCorpus(t))

	got, err := s.Search(context.Background(), "بسم", Options{
		Marker: arabic.Marker{Prefix: "**", Suffix: "**"},
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || !strings.Contains(got[0].HighlightedText, "**") {
		t.Fatalf("results = %+v", got)
	}
}

func TestSearchLimit(t *testing.T) {
	s := NewSearcher(readyCorpus(t))

	got, err := s.Search(context.Background(), "رحمن", Options{Limit: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want the limit of 2", len(got))
	}
	if got[0].Score < got[1].Score {
		t.Fatal("truncation must keep the best results")
	}
}

func TestSearchSkipsBlankVerses(t *testing.T) {
	s := NewSearcher(readyCorpus(t))

	got, err := s.Search(context.Background(), "رحمن", Options{ChapterNumber: 90})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("blank verses produced %d results", len(got))
	}
}

func TestSearchNoResults(t *testing.T) {
	s := NewSearcher(readyCorpus(t))

	got, err := s.Search(context.Background(), "قمر", Options{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d results, want none", len(got))
	}
}
