package notify

import "reflect"

// Receiver is anything that can be notified with a payload of type T.
// The receiver value itself is the subscription identity, so it should be
// a pointer or another comparable value.
type Receiver[T any] interface {
	Receive(payload T)
}

// Func adapts a plain function to the Receiver interface.
// Functions are not comparable in Go, so a Func cannot serve as its own
// identity: register it with SubscribeFunc under an explicit owner instead.
type Func[T any] func(payload T)

// Receive calls f(payload).
func (f Func[T]) Receive(payload T) {
	f(payload)
}

// validateEntry checks an (identity, callback) pair before it touches the list.
func validateEntry[T any](id any, fn func(T)) error {
	if id == nil {
		return ErrNilReceiver
	}
	if fn == nil {
		return ErrNilCallback
	}
	// Value.Comparable also inspects interface fields of structs and arrays,
	// so a value accepted here never panics on ==.
	if !reflect.ValueOf(id).Comparable() {
		return ErrReceiverNotComparable
	}
	return nil
}

// normalizeID treats typed nil pointers, maps, slices, funcs and chans as nil,
// so (*T)(nil) cannot be registered as an identity.
func normalizeID(id any) any {
	if id == nil {
		return nil
	}
	v := reflect.ValueOf(id)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return nil
		}
	}
	return id
}

// lookupKey normalizes id for a list lookup. It reports false for identities
// that could never have been registered, which keeps == from panicking.
func lookupKey(id any) (any, bool) {
	id = normalizeID(id)
	if id == nil || !reflect.ValueOf(id).Comparable() {
		return nil, false
	}
	return id, true
}
