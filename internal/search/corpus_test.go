package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/tbourn/go-quran-backend/internal/quran"
)

// fakeProvider serves synthetic chapters and counts upstream fetches.
type fakeProvider struct {
	calls  atomic.Int64
	failOn int
	verses map[int][]quran.Verse
}

func (p *fakeProvider) GetChapter(ctx context.Context, n int) (*quran.Chapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.calls.Add(1)
	if p.failOn != 0 && n == p.failOn {
		return nil, errors.New("upstream down")
	}
	ch := &quran.Chapter{
		Number: n,
		Name:   fmt.Sprintf("سورة %d", n),
	}
	if vs, ok := p.verses[n]; ok {
		ch.Verses = vs
	} else {
		ch.Verses = []quran.Verse{{Number: n, NumberInChapter: 1, Text: "آية"}}
	}
	return ch, nil
}

func verse(n int, text string) quran.Verse {
	return quran.Verse{Number: n, NumberInChapter: n, Text: text}
}

func TestChapterCachesFetch(t *testing.T) {
	p := &fakeProvider{}
	c := NewCorpus(p)

	first, err := c.Chapter(context.Background(), 5)
	if err != nil {
		t.Fatalf("Chapter: %v", err)
	}
	second, err := c.Chapter(context.Background(), 5)
	if err != nil {
		t.Fatalf("Chapter: %v", err)
	}
	if first != second {
		t.Fatal("expected the cached chapter pointer on the second call")
	}
	if got := p.calls.Load(); got != 1 {
		t.Fatalf("provider called %d times, want 1", got)
	}
}

func TestChapterCoalescesConcurrentFetches(t *testing.T) {
	p := &fakeProvider{}
	c := NewCorpus(p)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Chapter(context.Background(), 7); err != nil {
				t.Errorf("Chapter: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := p.calls.Load(); got != 1 {
		t.Fatalf("provider called %d times, want 1", got)
	}
}

func TestChapterInvalidNumber(t *testing.T) {
	c := NewCorpus(&fakeProvider{})
	for _, n := range []int{0, -1, 115} {
		if _, err := c.Chapter(context.Background(), n); !errors.Is(err, quran.ErrInvalidChapter) {
			t.Errorf("Chapter(%d) err = %v, want ErrInvalidChapter", n, err)
		}
	}
}

func TestPreloadFillsCorpus(t *testing.T) {
	p := &fakeProvider{}
	c := NewCorpus(p)

	if c.Ready() {
		t.Fatal("fresh corpus should not be ready")
	}
	if err := c.Preload(context.Background(), 8); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if !c.Ready() {
		t.Fatal("corpus should be ready after Preload")
	}
	if got := c.Loaded(); got != quran.TotalChapters {
		t.Fatalf("Loaded = %d, want %d", got, quran.TotalChapters)
	}
	if got := p.calls.Load(); got != quran.TotalChapters {
		t.Fatalf("provider called %d times, want %d", got, quran.TotalChapters)
	}

	// Second pass is served entirely from cache.
	if err := c.Preload(context.Background(), 8); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if got := p.calls.Load(); got != quran.TotalChapters {
		t.Fatalf("provider called %d times after cached Preload, want %d", got, quran.TotalChapters)
	}
}

func TestPreloadPropagatesFetchError(t *testing.T) {
	p := &fakeProvider{failOn: 50}
	c := NewCorpus(p)

	if err := c.Preload(context.Background(), 4); err == nil {
		t.Fatal("expected Preload to surface the fetch error")
	}
	if c.Ready() {
		t.Fatal("corpus must not report ready after a failed Preload")
	}
}

func TestPreloadHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCorpus(&fakeProvider{})
	if err := c.Preload(ctx, 4); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
