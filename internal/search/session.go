package search

import (
	"sync"
	"time"

	"github.com/promptopia/promptopia-api/internal/domain/entity"
)

// State is the phase of a search session.
type State int

const (
	// StateIdle shows the unfiltered list; no query is set.
	StateIdle State = iota
	// StatePending has a query typed but the debounce timer still running.
	StatePending
	// StateFiltered shows the results for the last evaluated query.
	StateFiltered
)

// Session drives one search box over a fetched prompt list:
// Idle -> keystroke -> Pending -> timer fire -> Filtered, with Clear
// returning to Idle and TagClick jumping straight to Filtered from any
// state. The OnChange hook, if set, observes every state change.
type Session struct {
	debouncer *Debouncer

	// OnChange is invoked (outside the lock) after every transition.
	OnChange func(State)

	mu      sync.Mutex
	full    []*entity.Prompt
	query   string
	state   State
	results []*entity.Prompt
	err     error
}

// NewSession creates a session over the full prompt list with the given
// debounce interval (zero means DefaultDebounce).
func NewSession(full []*entity.Prompt, interval time.Duration) *Session {
	return &Session{
		debouncer: NewDebouncer(interval),
		full:      full,
		state:     StateIdle,
		results:   full,
	}
}

// SetQuery records a keystroke. Empty text clears immediately; anything
// else enters Pending and evaluates once input has been idle.
func (s *Session) SetQuery(q string) {
	if q == "" {
		s.Clear()
		return
	}
	s.mu.Lock()
	s.query = q
	s.state = StatePending
	s.mu.Unlock()
	s.notify(StatePending)

	s.debouncer.Trigger(q, s.evaluate)
}

// TagClick sets the visible query to the tag and evaluates immediately,
// skipping the debounce.
func (s *Session) TagClick(tag string) {
	s.debouncer.Stop()
	s.mu.Lock()
	s.query = tag
	s.mu.Unlock()
	s.evaluate(tag)
}

// Clear cancels pending work and returns to Idle with the full list.
func (s *Session) Clear() {
	s.debouncer.Stop()
	s.mu.Lock()
	s.query = ""
	s.state = StateIdle
	s.results = s.full
	s.err = nil
	s.mu.Unlock()
	s.notify(StateIdle)
}

// Reset replaces the backing list, re-running the current filter if one
// is active.
func (s *Session) Reset(full []*entity.Prompt) {
	s.mu.Lock()
	s.full = full
	q := s.query
	if s.state != StateFiltered {
		s.results = full
	}
	s.mu.Unlock()
	if q != "" {
		s.evaluate(q)
	}
}

func (s *Session) evaluate(q string) {
	s.mu.Lock()
	// A keystroke or clear may have superseded this evaluation.
	if q != s.query {
		s.mu.Unlock()
		return
	}
	res, err := Filter(s.full, q)
	s.state = StateFiltered
	s.results = res
	s.err = err
	s.mu.Unlock()
	s.notify(StateFiltered)
}

// Results returns the current state, visible query, result list, and any
// filter error (an invalid pattern).
func (s *Session) Results() (State, string, []*entity.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.query, s.results, s.err
}

// Close releases the debounce timer.
func (s *Session) Close() { s.debouncer.Stop() }

func (s *Session) notify(st State) {
	if s.OnChange != nil {
		s.OnChange(st)
	}
}
