package observable

import (
	"sync"
)

// Listener receives the new value of a cell after it changes.
type Listener[T comparable] func(value T)

type subscription[T comparable] struct {
	id       uint64
	listener Listener[T]
}

// Cell holds a single value and notifies its listeners synchronously,
// in registration order, every time the value changes.
type Cell[T comparable] struct {
	mu        sync.RWMutex
	value     T
	nextID    uint64
	listeners []subscription[T]
}

// NewCell creates a cell holding the initial value.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores value and, if it differs from the current one, runs every
// listener before returning. Listeners run outside the lock so they may
// read this or any other cell.
func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	if c.value == value {
		c.mu.Unlock()
		return
	}
	c.value = value
	listeners := make([]subscription[T], len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, sub := range listeners {
		sub.listener(value)
	}
}

// Update applies fn to the current value and stores the result.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.Get()))
}

// Subscribe registers listener and returns a function that removes it.
func (c *Cell[T]) Subscribe(listener Listener[T]) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, subscription[T]{id: id, listener: listener})

	return func() {
		c.unsubscribe(id)
	}
}

func (c *Cell[T]) unsubscribe(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sub := range c.listeners {
		if sub.id == id {
			c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount reports how many listeners are registered.
func (c *Cell[T]) ListenerCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.listeners)
}
