package search

import (
	"context"
	"sort"
	"strings"

	"github.com/tbourn/go-quran-backend/internal/arabic"
	"github.com/tbourn/go-quran-backend/internal/quran"
)

// DefaultLimit caps the result set when Options.Limit is unset.
const DefaultLimit = 100

// Result is one matching verse, ranked by match confidence.
type Result struct {
	ChapterNumber   int    `json:"chapter_number"`
	ChapterName     string `json:"chapter_name"`
	VerseNumber     int    `json:"verse_number"`
	Text            string `json:"text"`
	HighlightedText string `json:"highlighted_text"`
	Score           int    `json:"score"`
	MatchType       string `json:"match_type"`
}

// Options narrows and bounds a search.
type Options struct {
	// ChapterNumber restricts the search to one chapter when non-zero.
	ChapterNumber int
	// Limit caps the number of results; zero means DefaultLimit.
	Limit int
	// Marker wraps matched spans in the highlighted text. Zero value means
	// arabic.DefaultMarker.
	Marker arabic.Marker
}

// Searcher runs ranked verse search over a corpus.
type Searcher struct {
	corpus *Corpus
}

// NewSearcher returns a Searcher reading from c.
func NewSearcher(c *Corpus) *Searcher {
	return &Searcher{corpus: c}
}

// Search returns verses matching query, best first. Ties break by chapter
// then verse order. A blank query returns no results and no error. Searching
// the whole corpus before it is fully loaded returns ErrCorpusNotReady;
// a single-chapter search fetches that chapter on demand instead.
func (s *Searcher) Search(ctx context.Context, query string, opts Options) ([]Result, error) {
	if strings.TrimSpace(query) == "" || arabic.Normalize(query) == "" {
		return []Result{}, nil
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Marker == (arabic.Marker{}) {
		opts.Marker = arabic.DefaultMarker
	}

	var chapters []*quran.Chapter
	if opts.ChapterNumber != 0 {
		ch, err := s.corpus.Chapter(ctx, opts.ChapterNumber)
		if err != nil {
			return nil, err
		}
		chapters = []*quran.Chapter{ch}
	} else {
		if !s.corpus.Ready() {
			return nil, ErrCorpusNotReady
		}
		chapters = make([]*quran.Chapter, 0, quran.TotalChapters)
		for n := 1; n <= quran.TotalChapters; n++ {
			ch, err := s.corpus.Chapter(ctx, n)
			if err != nil {
				return nil, err
			}
			chapters = append(chapters, ch)
		}
	}

	results := make([]Result, 0, 32)
	for _, ch := range chapters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, v := range ch.Verses {
			if strings.TrimSpace(v.Text) == "" {
				continue
			}
			outcome := arabic.Match(v.Text, query)
			if !outcome.Matches {
				continue
			}
			results = append(results, Result{
				ChapterNumber:   ch.Number,
				ChapterName:     ch.Name,
				VerseNumber:     v.NumberInChapter,
				Text:            v.Text,
				HighlightedText: arabic.Highlight(v.Text, query, opts.Marker),
				Score:           outcome.Score,
				MatchType:       outcome.Type.String(),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].ChapterNumber != results[j].ChapterNumber {
			return results[i].ChapterNumber < results[j].ChapterNumber
		}
		return results[i].VerseNumber < results[j].VerseNumber
	})

	if len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results, nil
}
