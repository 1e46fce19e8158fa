// Package synckit is a small toolkit for coordinating work inside a process.
//
// It is organized as independent packages under pkg/:
//
//   - notify: a bounded, synchronous observer channel. Subscribers are
//     identified by value, notified in slot order and removed by swapping
//     with the last slot. A mutex-guarded and a lock-free variant share one
//     interface.
//   - stoppable: a handle that owns at most one worker goroutine with
//     cooperative cancellation through a stop flag, a join on Stop and a
//     context-bounded StopContext.
//   - config: loads the Config structs of the other packages from the
//     environment, .env files and YAML files.
//   - logger: slog construction and attribute helpers used by stoppable.
//
// Basic usage:
//
//	ch := notify.NewSafe[Reading](8)
//	_ = ch.Subscribe(display)
//
//	poller := stoppable.New(stoppable.WithName("poller"))
//	_ = poller.Start(func() {
//		for !poller.ShouldStop() {
//			ch.Notify(read())
//			time.Sleep(time.Second)
//		}
//	})
//	defer poller.Stop()
package synckit
