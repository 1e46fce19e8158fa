package stoppable

// State is the lifecycle state of a Thread.
type State int32

const (
	// StateIdle means no worker is attached. Start may be called.
	StateIdle State = iota

	// StateRunning means a worker was started and no stop was requested yet.
	StateRunning

	// StateStopRequested means the stop flag is set but the worker has not been joined.
	StateStopRequested
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopRequested:
		return "stop_requested"
	default:
		return "unknown"
	}
}
