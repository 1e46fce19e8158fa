package notify

import "fmt"

// Channel delivers a payload of type T synchronously to a bounded set of subscribers.
//
// Each subscriber is identified by an opaque comparable value (usually a pointer).
// The same identity can be registered at most once.
type Channel[T any] interface {
	// Subscribe registers r under its own identity, with r.Receive as callback.
	Subscribe(r Receiver[T]) error

	// SubscribeFunc registers fn under the identity id.
	SubscribeFunc(id any, fn func(T)) error

	// Unsubscribe removes the subscriber registered under id.
	// The last subscriber takes the freed slot, so the order of the
	// remaining subscribers may change.
	Unsubscribe(id any) error

	// UnsubscribeAll removes every subscriber. It never fails.
	UnsubscribeAll()

	// Notify invokes every registered callback with payload, exactly once each,
	// on the calling goroutine.
	Notify(payload T)

	// Len returns the number of registered subscribers.
	Len() int

	// Cap returns the maximum number of subscribers.
	Cap() int

	// Contains reports whether id is registered.
	Contains(id any) bool

	// ThreadSafe reports whether the channel guards its state with a lock.
	ThreadSafe() bool
}

// Config fixes the shape of a channel at construction time.
type Config struct {
	// MaxSubscribers is the hard upper bound on registered subscribers.
	MaxSubscribers int `env:"NOTIFY_MAX_SUBSCRIBERS" envDefault:"16" yaml:"max_subscribers"`

	// ThreadSafe selects the locking implementation.
	// The non-locking one must only ever be used from a single goroutine.
	ThreadSafe bool `env:"NOTIFY_THREAD_SAFE" envDefault:"true" yaml:"thread_safe"`
}

// DefaultConfig returns the same values as the env defaults.
func DefaultConfig() Config {
	return Config{
		MaxSubscribers: 16,
		ThreadSafe:     true,
	}
}

// New creates a channel for the given configuration.
func New[T any](cfg Config) (Channel[T], error) {
	if cfg.MaxSubscribers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, cfg.MaxSubscribers)
	}
	if cfg.ThreadSafe {
		return newSafeChannel[T](cfg.MaxSubscribers), nil
	}
	return newUnsafeChannel[T](cfg.MaxSubscribers), nil
}

// NewSafe creates a lock-guarded channel.
// It panics if capacity is less than 1.
func NewSafe[T any](capacity int) Channel[T] {
	return mustNew[T](Config{MaxSubscribers: capacity, ThreadSafe: true})
}

// NewUnsafe creates a channel without any synchronization.
// It panics if capacity is less than 1.
func NewUnsafe[T any](capacity int) Channel[T] {
	return mustNew[T](Config{MaxSubscribers: capacity, ThreadSafe: false})
}

func mustNew[T any](cfg Config) Channel[T] {
	ch, err := New[T](cfg)
	if err != nil {
		panic(err)
	}
	return ch
}
