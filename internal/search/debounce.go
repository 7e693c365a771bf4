package search

import (
	"sync"
	"time"
)

// DefaultDebounce is how long input must be idle before the filter runs.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer coalesces a burst of triggers into a single callback fired
// with the most recent value once input has been idle for the interval.
// Every fresh trigger cancels the pending timer and reschedules.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given idle interval;
// non-positive intervals fall back to DefaultDebounce.
func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Debouncer{interval: interval}
}

// Trigger schedules fn(value) after the idle interval, replacing any
// pending invocation. fn runs on a timer goroutine.
func (d *Debouncer) Trigger(value string, fn func(string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() { fn(value) })
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
