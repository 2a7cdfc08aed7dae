// Package search builds an in-memory corpus of Quran text and runs ranked
// Arabic verse search over it. The corpus is filled once from a chapter
// provider and is read-only afterwards, so lookups are safe for concurrent
// use. No logging happens in the library, callers decide how to log.
package search

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tbourn/go-quran-backend/internal/quran"
)

// ErrCorpusNotReady is returned when a whole-corpus operation runs before
// every chapter has been loaded. It is distinct from an empty result set.
var ErrCorpusNotReady = errors.New("corpus not fully loaded")

// ChapterProvider supplies chapter text, typically the alquran.cloud client.
type ChapterProvider interface {
	GetChapter(ctx context.Context, n int) (*quran.Chapter, error)
}

// Corpus caches fetched chapters. Concurrent requests for the same chapter
// are coalesced into one upstream fetch.
type Corpus struct {
	provider ChapterProvider

	mu       sync.RWMutex
	chapters map[int]*quran.Chapter

	sf singleflight.Group
}

// NewCorpus returns an empty corpus backed by p.
func NewCorpus(p ChapterProvider) *Corpus {
	return &Corpus{
		provider: p,
		chapters: make(map[int]*quran.Chapter, quran.TotalChapters),
	}
}

// Chapter returns chapter n, fetching and caching it on first use.
func (c *Corpus) Chapter(ctx context.Context, n int) (*quran.Chapter, error) {
	if !quran.ValidChapter(n) {
		return nil, quran.ErrInvalidChapter
	}

	c.mu.RLock()
	ch, ok := c.chapters[n]
	c.mu.RUnlock()
	if ok {
		return ch, nil
	}

	v, err, _ := c.sf.Do(strconv.Itoa(n), func() (any, error) {
		c.mu.RLock()
		cached, ok := c.chapters[n]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		fetched, err := c.provider.GetChapter(ctx, n)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.chapters[n] = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*quran.Chapter), nil
}

// Preload fetches every chapter, at most parallel fetches in flight.
// Already cached chapters are skipped. The first fetch error aborts the
// remaining work and is returned.
func (c *Corpus) Preload(ctx context.Context, parallel int) error {
	if parallel <= 0 {
		parallel = 10
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for n := 1; n <= quran.TotalChapters; n++ {
		g.Go(func() error {
			_, err := c.Chapter(ctx, n)
			return err
		})
	}
	return g.Wait()
}

// Ready reports whether all chapters are cached.
func (c *Corpus) Ready() bool {
	return c.Loaded() == quran.TotalChapters
}

// Loaded returns how many chapters are cached.
func (c *Corpus) Loaded() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.chapters)
}
