// Package debounce delays a callback until input has been quiet for a fixed
// interval. Each new Trigger restarts the wait; only the latest value is
// delivered.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used for search input.
const DefaultDelay = 300 * time.Millisecond

type Debouncer[T any] struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func(T)
	timer *time.Timer
}

// New returns a debouncer that calls fn with the last triggered value once
// delay has passed without another Trigger. fn runs on its own goroutine.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Trigger schedules fn(v), cancelling any pending call.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fn(v) })
}

// Flush cancels the pending call and runs fn(v) right away on the caller's
// goroutine.
func (d *Debouncer[T]) Flush(v T) {
	d.Stop()
	d.fn(v)
}

// Stop cancels a pending call, if any.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
