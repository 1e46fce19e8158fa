package stoppable

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/synckit/pkg/logger"
)

// Thread owns the lifecycle of at most one worker goroutine.
//
// Cancellation is cooperative: Stop raises a flag and waits, and the worker
// is expected to poll ShouldStop and return. Start, Stop and StopContext
// must be called by the owner only, never concurrently with each other.
// ShouldStop, State, IsRunning, Done and Err may be called from anywhere,
// including the worker itself.
type Thread struct {
	id      uuid.UUID
	name    string
	spawner Spawner
	logger  *slog.Logger

	stop atomic.Bool

	mu  sync.Mutex
	cur *run  // non-nil iff the thread is not idle
	err error // outcome of the last joined run
}

// run is the join handle of one worker execution.
type run struct {
	done    chan struct{}
	err     error // written before done is closed
	started time.Time
}

// New creates an idle Thread.
func New(opts ...Option) *Thread {
	t := &Thread{
		id:      uuid.New(),
		name:    "worker",
		spawner: GoSpawner{},
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With(
		logger.Component("stoppable"),
		logger.ThreadName(t.name),
		logger.ThreadID(t.id),
	)
	return t
}

// ID returns the identifier attached to this Thread's log records.
func (t *Thread) ID() uuid.UUID {
	return t.id
}

// Name returns the configured name.
func (t *Thread) Name() string {
	return t.name
}

// Start clears the stop flag and runs entry on a new goroutine.
// It fails with ErrAlreadyRunning unless the thread is idle, and with a
// *SpawnError if the spawner refuses; in both cases nothing is started.
func (t *Thread) Start(entry func()) error {
	if entry == nil {
		return ErrNilEntry
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cur != nil {
		return ErrAlreadyRunning
	}

	// The flag is cleared before spawning so the worker never sees a stale
	// request, and restored if nothing was started.
	prev := t.stop.Swap(false)
	r := &run{done: make(chan struct{}), started: time.Now()}
	if err := t.spawner.Spawn(func() { t.execute(r, entry) }); err != nil {
		t.stop.Store(prev)
		t.logger.Debug("worker spawn failed", logger.Error(err))
		return &SpawnError{Cause: err}
	}

	t.cur = r
	t.err = nil
	t.logger.Debug("worker started")
	return nil
}

// StartWith starts entry(args) on t. Arguments are evaluated before the call.
func StartWith[A any](t *Thread, entry func(A), args A) error {
	if entry == nil {
		return ErrNilEntry
	}
	return t.Start(func() { entry(args) })
}

func (t *Thread) execute(r *run, entry func()) {
	defer close(r.done)
	defer func() {
		if v := recover(); v != nil {
			r.err = &PanicError{Value: v, Stack: debug.Stack()}
			t.logger.Error("worker panicked", logger.Panic(v))
		}
	}()
	entry()
}

// ShouldStop reports whether a stop was requested. Workers poll it to exit.
func (t *Thread) ShouldStop() bool {
	return t.stop.Load()
}

// Stop requests the worker to exit and blocks until it has returned.
// The thread is idle afterwards. Stop is a no-op on an idle thread.
//
// There is no timeout: a worker that never checks ShouldStop blocks Stop
// forever. Use StopContext to bound the wait.
func (t *Thread) Stop() {
	r := t.requestStop()
	if r == nil {
		return
	}
	<-r.done
	t.join(r)
}

// StopContext is Stop bounded by ctx. If ctx ends first it returns an error
// matching both ErrStopTimeout and ctx.Err(), and the thread keeps its handle
// in StateStopRequested: no new worker can be started until a later Stop or
// StopContext observes the exit.
func (t *Thread) StopContext(ctx context.Context) error {
	r := t.requestStop()
	if r == nil {
		return nil
	}

	select {
	case <-r.done:
		t.join(r)
		return nil
	case <-ctx.Done():
		t.logger.WarnContext(ctx, "worker did not stop in time",
			logger.State(StateStopRequested),
			logger.Error(ctx.Err()))
		return fmt.Errorf("%w: %w", ErrStopTimeout, ctx.Err())
	}
}

func (t *Thread) requestStop() *run {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cur == nil {
		return nil
	}
	if !t.stop.Swap(true) {
		t.logger.Debug("worker stop requested")
	}
	return t.cur
}

func (t *Thread) join(r *run) {
	t.mu.Lock()
	if t.cur == r {
		t.cur = nil
		t.err = r.err
	}
	t.mu.Unlock()

	t.logger.Debug("worker stopped", logger.Group("run",
		logger.Duration(time.Since(r.started)),
		logger.Error(r.err)))
}

// State returns the current lifecycle state.
func (t *Thread) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case t.cur == nil:
		return StateIdle
	case t.stop.Load():
		return StateStopRequested
	default:
		return StateRunning
	}
}

// IsRunning reports whether a worker handle is held, i.e. the thread is not idle.
// A worker that returned on its own still counts until it is joined by Stop.
func (t *Thread) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cur != nil
}

// Done returns a channel closed when the current worker returns.
// On an idle thread the returned channel is already closed.
func (t *Thread) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cur == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return t.cur.done
}

// Err returns the outcome of the last joined worker: nil, or a *PanicError
// if it panicked. It is reset by Start.
func (t *Thread) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Run returns a function suitable for errgroup.Group.Go: it starts entry,
// waits until ctx is done or the worker returns by itself, stops the worker
// and reports Err.
func (t *Thread) Run(ctx context.Context, entry func()) func() error {
	return func() error {
		if err := t.Start(entry); err != nil {
			return err
		}
		t.logger.DebugContext(ctx, "worker run started")

		select {
		case <-ctx.Done():
		case <-t.Done():
		}

		t.Stop()
		err := t.Err()
		t.logger.DebugContext(ctx, "worker run finished", logger.Errors(ctx.Err(), err))
		return err
	}
}
