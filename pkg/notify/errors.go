package notify

import "errors"

var (
	// ErrAlreadySubscribed is returned when the receiver identity is already registered.
	ErrAlreadySubscribed = errors.New("notify: receiver already subscribed")

	// ErrCapacityExceeded is returned when the subscriber list is full.
	ErrCapacityExceeded = errors.New("notify: subscriber capacity exceeded")

	// ErrNotFound is returned when unsubscribing an identity that is not registered.
	ErrNotFound = errors.New("notify: receiver not found")

	// ErrInvalidCapacity is returned when a channel is configured with fewer than one slot.
	ErrInvalidCapacity = errors.New("notify: max subscribers must be at least 1")

	// ErrNilReceiver is returned when the receiver identity is nil.
	ErrNilReceiver = errors.New("notify: receiver cannot be nil")

	// ErrNilCallback is returned when the callback is nil.
	ErrNilCallback = errors.New("notify: callback cannot be nil")

	// ErrReceiverNotComparable is returned when the receiver identity cannot be compared with ==.
	// Use a pointer or another comparable value as identity.
	ErrReceiverNotComparable = errors.New("notify: receiver identity is not comparable")
)
