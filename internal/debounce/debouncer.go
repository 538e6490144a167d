// Package debounce coalesces bursts of values so only the latest one is acted on.
package debounce

import (
	"sync"
	"time"
)

// Debouncer delivers the most recent value passed to Trigger once no new value
// has arrived for a full window. Earlier values in the burst are dropped, not
// replayed. Callbacks never run concurrently with each other.
type Debouncer[T any] struct {
	window time.Duration
	fn     func(T)

	// runMu serialises callbacks; mu guards the fields below
	runMu sync.Mutex
	mu    sync.Mutex

	timer   *time.Timer
	pending T
	has     bool
	seq     uint64
	stopped bool
}

// New creates a Debouncer that calls fn after window of quiet. A window of
// zero or less calls fn synchronously from Trigger.
func New[T any](window time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		window: window,
		fn:     fn,
	}
}

// Window returns the configured quiet period
func (d *Debouncer[T]) Window() time.Duration {
	return d.window
}

// Trigger records v as the latest value and restarts the window
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()

		return
	}

	d.seq++
	seq := d.seq
	d.pending = v
	d.has = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if d.window <= 0 {
		d.mu.Unlock()
		d.fire(seq)

		return
	}

	d.timer = time.AfterFunc(d.window, func() { d.fire(seq) })
	d.mu.Unlock()
}

// Flush delivers the pending value now, if any, and reports whether it did
func (d *Debouncer[T]) Flush() bool {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	d.mu.Lock()
	v, ok := d.take()
	d.mu.Unlock()

	if ok {
		d.fn(v)
	}

	return ok
}

// Pending reports whether a value is waiting for its window to close
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.has
}

// Stop discards any pending value; later Triggers are ignored
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.take()
}

// fire runs the callback for seq unless a newer Trigger superseded it
func (d *Debouncer[T]) fire(seq uint64) {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	d.mu.Lock()
	if seq != d.seq {
		d.mu.Unlock()

		return
	}
	v, ok := d.take()
	d.mu.Unlock()

	if ok {
		d.fn(v)
	}
}

// take clears and returns the pending value; mu must be held
func (d *Debouncer[T]) take() (T, bool) {
	var zero T
	if !d.has {
		return zero, false
	}

	v := d.pending
	d.pending = zero
	d.has = false

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	return v, true
}
