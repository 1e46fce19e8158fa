package stoppable

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRunning is returned by Start when a worker is already active.
	ErrAlreadyRunning = errors.New("stoppable: worker already running")

	// ErrSpawnFailure matches every *SpawnError.
	ErrSpawnFailure = errors.New("stoppable: failed to spawn worker")

	// ErrSpawnLimit is the cause reported by GroupSpawner when its goroutine limit is reached.
	ErrSpawnLimit = errors.New("stoppable: goroutine limit reached")

	// ErrNilEntry is returned when Start is called with a nil entry function.
	ErrNilEntry = errors.New("stoppable: entry function cannot be nil")

	// ErrStopTimeout is returned by StopContext when the worker did not exit in time.
	ErrStopTimeout = errors.New("stoppable: worker did not stop in time")

	// ErrWorkerPanic matches every *PanicError.
	ErrWorkerPanic = errors.New("stoppable: worker panicked")
)

// SpawnError reports that the Spawner refused to start the worker.
// The Thread stays idle.
type SpawnError struct {
	Cause error
}

// Error includes the spawner's cause.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("stoppable: failed to spawn worker: %v", e.Cause)
}

// Unwrap returns the spawner's cause.
func (e *SpawnError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is(err, ErrSpawnFailure).
func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawnFailure
}

// PanicError carries a panic recovered on the worker goroutine.
type PanicError struct {
	Value any
	Stack []byte
}

// Error formats the panic value; the stack is left out.
func (e *PanicError) Error() string {
	return fmt.Sprintf("stoppable: worker panicked: %v", e.Value)
}

// Is allows errors.Is(err, ErrWorkerPanic).
func (e *PanicError) Is(target error) bool {
	return target == ErrWorkerPanic
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
