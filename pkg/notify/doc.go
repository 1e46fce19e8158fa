// Package notify provides a bounded, synchronous publish/subscribe channel.
//
// A Channel holds at most a fixed number of subscribers, chosen at construction.
// Notify calls every subscriber's callback in-line on the caller's goroutine.
// There is no queueing, no background goroutine and no delivery across processes.
//
// # Identity
//
// Every subscriber is registered under an identity: a comparable value,
// normally a pointer to the receiving object. Identities are compared with ==
// to reject duplicates and to locate entries on Unsubscribe. The callback is
// never compared.
//
//	type Display struct{ last int }
//
//	func (d *Display) Receive(v int) { d.last = v }
//
//	ch := notify.NewSafe[int](4)
//	d := &Display{}
//	if err := ch.Subscribe(d); err != nil { ... }      // identity is d
//	ch.SubscribeFunc(owner, func(v int) { ... })       // identity is owner
//	ch.Notify(42)
//	ch.Unsubscribe(d)
//
// # Variants
//
// Config.ThreadSafe selects between two implementations behind Channel:
//
//   - The safe variant guards the list with a sync.Mutex. Notify copies the
//     callbacks under the lock, releases it and then calls them, so callbacks
//     may subscribe, unsubscribe or notify again without deadlocking. Each
//     Notify delivers to the copy taken when it held the lock.
//   - The unsafe variant has no synchronization at all. It is meant for
//     single-goroutine owners and costs nothing beyond the slice walk.
//
// # Ordering
//
// Subscribers are stored in a fixed slot array. Removal moves the last
// subscriber into the freed slot, so callers must not rely on delivery order
// after any Unsubscribe.
//
// # Errors
//
// All failures are returned to the caller and leave the channel unchanged:
// ErrAlreadySubscribed, ErrCapacityExceeded, ErrNotFound, plus validation
// errors for nil or non-comparable identities. A panicking callback is not
// recovered; it propagates to the caller of Notify and the remaining
// callbacks of that call are skipped.
package notify
