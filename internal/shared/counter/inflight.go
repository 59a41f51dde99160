package counter

import (
	"sync"
	"sync/atomic"
)

// InFlight counts requests that have started but not completed. Each screen
// session owns its own counter; there is no package-level instance.
type InFlight struct {
	n atomic.Int64
}

func NewInFlight() *InFlight {
	return &InFlight{}
}

// Begin registers a request and returns the func that completes it.
// Calling the returned func more than once has no further effect.
func (c *InFlight) Begin() func() {
	c.n.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() { c.n.Add(-1) })
	}
}

func (c *InFlight) Count() int64 {
	return c.n.Load()
}

// Active reports whether any request is still pending.
func (c *InFlight) Active() bool {
	return c.n.Load() > 0
}
