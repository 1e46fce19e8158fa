package notify

// entry pairs a receiver identity with the callback invoked on notify.
type entry[T any] struct {
	id any
	fn func(T)
}

// list is a fixed-capacity slot arena. Slots [0, n) are occupied.
// Removal moves the last occupied slot into the hole, so order is only
// preserved until the first removal.
type list[T any] struct {
	slots []entry[T]
	n     int
}

func newList[T any](capacity int) list[T] {
	return list[T]{slots: make([]entry[T], capacity)}
}

func (l *list[T]) indexOf(id any) int {
	id, ok := lookupKey(id)
	if !ok {
		return -1
	}
	for i := range l.n {
		if l.slots[i].id == id {
			return i
		}
	}
	return -1
}

func (l *list[T]) add(id any, fn func(T)) error {
	if l.indexOf(id) >= 0 {
		return ErrAlreadySubscribed
	}
	if l.n == len(l.slots) {
		return ErrCapacityExceeded
	}
	l.slots[l.n] = entry[T]{id: id, fn: fn}
	l.n++
	return nil
}

func (l *list[T]) remove(id any) error {
	i := l.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	last := l.n - 1
	l.slots[i] = l.slots[last]
	// Zero the vacated slot so the callback and its receiver can be collected.
	l.slots[last] = entry[T]{}
	l.n--
	return nil
}

func (l *list[T]) clear() {
	clear(l.slots[:l.n])
	l.n = 0
}

// callbacks copies the registered callbacks in slot order.
func (l *list[T]) callbacks() []func(T) {
	if l.n == 0 {
		return nil
	}
	fns := make([]func(T), l.n)
	for i := range l.n {
		fns[i] = l.slots[i].fn
	}
	return fns
}
