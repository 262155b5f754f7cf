// Package viewstate implements the per-screen fetch state machine:
// Idle → Loading → {Ready, Failed}, plus a terminal Unauthenticated state
// for screens reached without a credential.
//
// Every Load is tagged with a generation number; a fetch result is applied
// only when its generation is still the latest. A response to a superseded
// request is discarded on arrival, so it can never overwrite state that
// belongs to a newer request. The backend is not told to abort: staleness
// is decided at the commit point.
package viewstate

import (
	"context"
	"sync"
)

// Phase is the screen's current fetch state.
type Phase int

const (
	Idle Phase = iota
	Loading
	Ready
	Failed
	Unauthenticated
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent view of a screen's state. Exactly one of
// {Loading, Err != nil, data-present} holds: entering Loading clears both
// data and error, a failure replaces data with the zero value, and a
// success clears any prior error.
type Snapshot[T any] struct {
	Phase Phase
	Data  T
	Err   error
}

// Controller runs fetches for one screen and guards commits with a
// generation counter.
type Controller[T any] struct {
	mu   sync.Mutex
	gen  uint64
	snap Snapshot[T]
}

func New[T any]() *Controller[T] {
	return &Controller[T]{}
}

// Load starts a fetch for the current screen state. It transitions to
// Loading immediately and commits the result only if no newer Load (or
// Reset) happened in the meantime. The returned channel closes when the
// fetch goroutine finishes, whether or not its result was applied.
func (c *Controller[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) <-chan struct{} {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	var zero T
	c.snap = Snapshot[T]{Phase: Loading, Data: zero}
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		data, err := fetch(ctx)

		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen {
			// Superseded while in flight; this result is no longer wanted.
			return
		}
		if err != nil {
			var zero T
			c.snap = Snapshot[T]{Phase: Failed, Data: zero, Err: err}
			return
		}
		c.snap = Snapshot[T]{Phase: Ready, Data: data}
	}()
	return done
}

// Snapshot returns the current state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// SetUnauthenticated parks the screen in the terminal unauthenticated
// state and invalidates any in-flight fetch.
func (c *Controller[T]) SetUnauthenticated() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	var zero T
	c.snap = Snapshot[T]{Phase: Unauthenticated, Data: zero}
}

// Reset returns the screen to Idle, e.g. on navigation away. Any in-flight
// fetch result arriving afterwards is discarded.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	var zero T
	c.snap = Snapshot[T]{Phase: Idle, Data: zero}
}
