package notify

// unsafeChannel performs no synchronization at all.
// Callers must serialize every call, and callbacks must not mutate the
// channel they are invoked from.
type unsafeChannel[T any] struct {
	list list[T]
}

func newUnsafeChannel[T any](capacity int) *unsafeChannel[T] {
	return &unsafeChannel[T]{list: newList[T](capacity)}
}

func (c *unsafeChannel[T]) Subscribe(r Receiver[T]) error {
	id := normalizeID(r)
	if id == nil {
		return ErrNilReceiver
	}
	return c.SubscribeFunc(id, r.Receive)
}

func (c *unsafeChannel[T]) SubscribeFunc(id any, fn func(T)) error {
	id = normalizeID(id)
	if err := validateEntry(id, fn); err != nil {
		return err
	}
	return c.list.add(id, fn)
}

func (c *unsafeChannel[T]) Unsubscribe(id any) error {
	return c.list.remove(id)
}

func (c *unsafeChannel[T]) UnsubscribeAll() {
	c.list.clear()
}

func (c *unsafeChannel[T]) Notify(payload T) {
	// Re-read n on each step so a misbehaving callback that shrinks the
	// list cannot make us call a zeroed slot.
	for i := 0; i < c.list.n; i++ {
		c.list.slots[i].fn(payload)
	}
}

func (c *unsafeChannel[T]) Len() int {
	return c.list.n
}

func (c *unsafeChannel[T]) Cap() int {
	return len(c.list.slots)
}

func (c *unsafeChannel[T]) Contains(id any) bool {
	return c.list.indexOf(id) >= 0
}

func (c *unsafeChannel[T]) ThreadSafe() bool {
	return false
}
