package notify

import "sync"

// safeChannel guards the subscriber list with a mutex.
// Notify copies the callbacks under the lock and invokes them after
// releasing it, so callbacks may re-enter the channel.
type safeChannel[T any] struct {
	mu   sync.Mutex
	list list[T]
}

func newSafeChannel[T any](capacity int) *safeChannel[T] {
	return &safeChannel[T]{list: newList[T](capacity)}
}

func (c *safeChannel[T]) Subscribe(r Receiver[T]) error {
	id := normalizeID(r)
	if id == nil {
		return ErrNilReceiver
	}
	return c.SubscribeFunc(id, r.Receive)
}

func (c *safeChannel[T]) SubscribeFunc(id any, fn func(T)) error {
	id = normalizeID(id)
	if err := validateEntry(id, fn); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.add(id, fn)
}

func (c *safeChannel[T]) Unsubscribe(id any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.remove(id)
}

func (c *safeChannel[T]) UnsubscribeAll() {
	c.mu.Lock()
	c.list.clear()
	c.mu.Unlock()
}

// Notify delivers to the subscribers registered at the moment the lock was held.
// Changes made concurrently, or by the callbacks themselves, apply from the next call.
func (c *safeChannel[T]) Notify(payload T) {
	c.mu.Lock()
	fns := c.list.callbacks()
	c.mu.Unlock()

	for _, fn := range fns {
		fn(payload)
	}
}

func (c *safeChannel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.n
}

func (c *safeChannel[T]) Cap() int {
	// Capacity never changes after construction.
	return len(c.list.slots)
}

func (c *safeChannel[T]) Contains(id any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.indexOf(id) >= 0
}

func (c *safeChannel[T]) ThreadSafe() bool {
	return true
}
