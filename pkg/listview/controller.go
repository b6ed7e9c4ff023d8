// Package listview provides the fetch lifecycle shared by every list-bearing
// page of the storefront: the menu, the store directory, and the owner
// dashboard all hold a collection, a loading status, and an error message,
// and refill the collection wholesale on every load.
package listview

import (
	"context"
	"sync"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// FetchFunc retrieves the full collection for one view.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Controller is the state machine behind one list view. Load may be called
// repeatedly; each call supersedes whatever was in flight, and a superseded
// load never writes its result back. On failure the previously loaded
// collection is retained so the page stays usable.
type Controller[T any] struct {
	fetch FetchFunc[T]

	mu     sync.Mutex
	gen    uint64
	status Status
	items  []T
	errMsg string
}

func NewController[T any](fetch FetchFunc[T]) *Controller[T] {
	return &Controller[T]{
		fetch:  fetch,
		status: StatusIdle,
	}
}

func (c *Controller[T]) Load(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.status = StatusLoading
	c.errMsg = ""
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// a later Load took over; discard this result
		return
	}

	if err != nil {
		c.status = StatusFailed
		c.errMsg = err.Error()
		return
	}

	if items == nil {
		items = []T{}
	}
	c.items = items
	c.status = StatusReady
}

// Items returns a copy of the current collection.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller[T]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Err returns the display message of the last failed load, empty otherwise.
func (c *Controller[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}
