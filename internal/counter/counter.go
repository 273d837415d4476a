package counter

import "sync/atomic"

// Counter is an int total that is safe for concurrent use.
type Counter struct {
	total atomic.Int64
}

// NewCounter creates and initializes a new Counter
func NewCounter() *Counter {
	return &Counter{}
}

// Add adds a value to the counter safely
func (c *Counter) Add(value int) {
	c.total.Add(int64(value))
}

// Count returns the current count safely
func (c *Counter) Count() int {
	return int(c.total.Load())
}
