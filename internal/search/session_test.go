package search

import (
	"context"
	"sync"
	"testing"
	"time"
)

// notifyLog records published states in order.
type notifyLog struct {
	mu     sync.Mutex
	states []State
}

func (l *notifyLog) record(st State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.states = append(l.states, st)
}

func (l *notifyLog) completed() []State {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []State
	for _, st := range l.states {
		if !st.Searching && st.Query != "" {
			out = append(out, st)
		}
	}
	return out
}

func TestSessionSynchronous(t *testing.T) {
	sess := NewSession(NewSearcher(readyCorpus(t)), 0, Options{}, nil)

	sess.Update(context.Background(), "رحمن")

	st := sess.State()
	if st.Searching {
		t.Fatal("synchronous session should not stay in searching state")
	}
	if st.Err != nil {
		t.Fatalf("unexpected error: %v", st.Err)
	}
	if len(st.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(st.Results))
	}
	if st.Query != "رحمن" {
		t.Fatalf("query = %q", st.Query)
	}
}

func TestSessionBlankQueryClearsImmediately(t *testing.T) {
	sess := NewSession(NewSearcher(readyCorpus(t)), 0, Options{}, nil)

	sess.Update(context.Background(), "رحمن")
	sess.Update(context.Background(), "   ")

	st := sess.State()
	if st.Query != "" || len(st.Results) != 0 || st.Searching {
		t.Fatalf("state after blank update = %+v", st)
	}
}

func TestSessionDebouncesRapidUpdates(t *testing.T) {
	log := &notifyLog{}
	sess := NewSession(NewSearcher(readyCorpus(t)), 30*time.Millisecond, Options{}, log.record)

	ctx := context.Background()
	sess.Update(ctx, "ر")
	sess.Update(ctx, "رح")
	sess.Update(ctx, "رحم")
	sess.Update(ctx, "رحمن")

	time.Sleep(200 * time.Millisecond)

	done := log.completed()
	if len(done) != 1 {
		t.Fatalf("%d searches completed, want 1 (only the last)", len(done))
	}
	if done[0].Query != "رحمن" {
		t.Fatalf("completed query = %q, want the final one", done[0].Query)
	}
	if len(done[0].Results) != 3 {
		t.Fatalf("got %d results, want 3", len(done[0].Results))
	}
}

func TestSessionClearCancelsPending(t *testing.T) {
	sess := NewSession(NewSearcher(readyCorpus(t)), 40*time.Millisecond, Options{}, nil)

	ctx := context.Background()
	sess.Update(ctx, "رحمن")
	sess.Clear()

	time.Sleep(150 * time.Millisecond)

	st := sess.State()
	if st.Query != "" || len(st.Results) != 0 {
		t.Fatalf("state after Clear = %+v", st)
	}
}

func TestSessionLaterUpdateWins(t *testing.T) {
	sess := NewSession(NewSearcher(readyCorpus(t)), 25*time.Millisecond, Options{}, nil)

	ctx := context.Background()
	sess.Update(ctx, "بسم")
	time.Sleep(5 * time.Millisecond)
	sess.Update(ctx, "رحمن")

	time.Sleep(200 * time.Millisecond)

	st := sess.State()
	if st.Query != "رحمن" {
		t.Fatalf("final query = %q, want the later update", st.Query)
	}
	if len(st.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(st.Results))
	}
}

func TestSessionSearchError(t *testing.T) {
	// Corpus never preloaded, whole-corpus search must surface the error.
	sess := NewSession(NewSearcher(NewCorpus(&fakeProvider{})), 0, Options{}, nil)

	sess.Update(context.Background(), "رحمن")

	st := sess.State()
	if st.Err == nil {
		t.Fatal("expected corpus-not-ready error in session state")
	}
	if len(st.Results) != 0 {
		t.Fatalf("got %d results alongside an error", len(st.Results))
	}
}
