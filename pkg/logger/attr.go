package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// ThreadName records a worker name under the key "thread".
func ThreadName(name string) slog.Attr {
	return slog.String("thread", name)
}

// ThreadID records a worker instance identifier under the key "thread_id".
// If id is nil, it returns an empty Attr.
func ThreadID(id fmt.Stringer) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.String("thread_id", id.String())
}

// State records a lifecycle state under the key "state".
func State(state fmt.Stringer) slog.Attr {
	if state == nil {
		return slog.Attr{}
	}
	return slog.String("state", state.String())
}

// Panic records a recovered panic value under the key "panic".
// If v is nil, it returns an empty Attr.
func Panic(v any) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.String("panic", fmt.Sprint(v))
}
