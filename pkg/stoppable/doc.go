// Package stoppable manages the lifecycle of a single worker goroutine with
// cooperative cancellation.
//
// A Thread is idle when created. Start runs an entry function on a new
// goroutine; Stop raises an atomic stop flag and blocks until the worker
// returns, leaving the Thread idle again. A Thread may be restarted any
// number of times, but never runs two workers at once.
//
// The worker decides when to exit by polling ShouldStop:
//
//	t := stoppable.New(stoppable.WithName("poller"))
//	err := t.Start(func() {
//	    for !t.ShouldStop() {
//	        poll()
//	    }
//	})
//	...
//	t.Stop()
//
// Nothing interrupts a worker that ignores the flag. Stop waits forever for
// such a worker; StopContext bounds the wait and keeps the handle when it
// times out, so the single-worker invariant holds.
//
// # Lifecycle
//
//	Idle --Start--> Running --Stop/StopContext--> StopRequested --worker returns, joined--> Idle
//
// # Spawning
//
// Goroutines are created through a Spawner. GoSpawner (default) never fails.
// GroupSpawner runs workers inside an errgroup.Group with an optional limit;
// when the limit is reached Start returns a *SpawnError wrapping ErrSpawnLimit
// and the Thread stays idle.
//
// # Panics
//
// A panic in the worker is recovered on the worker goroutine, logged, and
// reported by Err after the worker is joined.
//
// # Logging
//
// Lifecycle transitions are logged at Debug level through the logger given
// with WithLogger. The default logger discards everything.
//
// # errgroup
//
// Run adapts a Thread to errgroup.Group.Go: the worker is started, stopped
// when the group context ends, and its Err is returned.
package stoppable
