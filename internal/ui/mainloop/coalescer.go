// Package mainloop schedules work onto a host UI thread.
package mainloop

import "sync"

// Key identifies a class of mergeable tasks.
type Key string

// Coalescer merges bursts of same-key main-loop tasks: while a task is
// pending, newer submissions replace its callback instead of scheduling again.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[Key]bool
	callbacks map[Key]func()
	post      func(func())
	destroyed bool
}

func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[Key]bool),
		callbacks: make(map[Key]func()),
		post:      post,
	}
}

// Post schedules fn under key and reports whether a new main-loop task was
// scheduled. false means fn replaced an already pending callback or was dropped.
func (c *Coalescer) Post(key Key, fn func()) bool {
	if fn == nil || key == "" {
		return false
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return false
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return false
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
	return true
}

func (c *Coalescer) run(key Key) {
	c.mu.Lock()
	if c.destroyed {
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()
		return
	}
	fn := c.callbacks[key]
	delete(c.pending, key)
	delete(c.callbacks, key)
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Pending reports whether a task for key is waiting to run.
func (c *Coalescer) Pending(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[key]
}

// Destroy drops pending work. Later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[Key]bool{}
	c.callbacks = map[Key]func(){}
	c.mu.Unlock()
}
