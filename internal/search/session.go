package search

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DefaultDebounce is the pause after the last keystroke before a session
// actually runs the search.
const DefaultDebounce = 300 * time.Millisecond

// State is a snapshot of a session's current search.
type State struct {
	Query     string
	Results   []Result
	Err       error
	Searching bool
}

// Session serializes as-you-type queries against one Searcher. Each Update
// supersedes the previous one; only the latest query's results are ever
// published. Searches are debounced so rapid keystrokes collapse into a
// single execution.
type Session struct {
	searcher *Searcher
	delay    time.Duration
	opts     Options
	notify   func(State)

	mu    sync.Mutex
	gen   uint64
	state State
	timer *time.Timer
}

// NewSession returns a Session over s. A non-positive delay disables
// debouncing and runs each Update synchronously. notify, when non-nil, is
// invoked after every state change, outside the session lock.
func NewSession(s *Searcher, delay time.Duration, opts Options, notify func(State)) *Session {
	return &Session{
		searcher: s,
		delay:    delay,
		opts:     opts,
		notify:   notify,
		state:    State{Results: []Result{}},
	}
}

// Update registers a new query. A blank query clears results immediately;
// anything else schedules a search after the debounce delay, cancelling any
// search still pending from an earlier Update.
func (s *Session) Update(ctx context.Context, query string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if strings.TrimSpace(query) == "" {
		s.state = State{Results: []Result{}}
		snap := s.state
		s.mu.Unlock()
		s.publish(snap)
		return
	}

	s.state.Query = query
	s.state.Searching = true
	snap := s.state
	if s.delay <= 0 {
		s.mu.Unlock()
		s.publish(snap)
		s.run(ctx, gen, query)
		return
	}
	s.timer = time.AfterFunc(s.delay, func() { s.run(ctx, gen, query) })
	s.mu.Unlock()
	s.publish(snap)
}

// Clear wipes the session state and cancels any pending search.
func (s *Session) Clear() {
	s.mu.Lock()
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = State{Results: []Result{}}
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
}

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// run executes the search for query unless a later Update or Clear has
// superseded generation gen.
func (s *Session) run(ctx context.Context, gen uint64, query string) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	results, err := s.searcher.Search(ctx, query, s.opts)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.state = State{Query: query, Results: results, Err: err}
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
}

func (s *Session) publish(st State) {
	if s.notify != nil {
		s.notify(st)
	}
}
