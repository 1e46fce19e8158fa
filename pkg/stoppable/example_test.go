package stoppable_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/synckit/pkg/stoppable"
)

func ExampleThread() {
	t := stoppable.New(stoppable.WithName("ticker"))

	var ticks atomic.Int64
	if err := t.Start(func() {
		for !t.ShouldStop() {
			ticks.Add(1)
			time.Sleep(time.Millisecond)
		}
	}); err != nil {
		panic(err)
	}

	err := t.Start(func() {})
	fmt.Println(errors.Is(err, stoppable.ErrAlreadyRunning))

	t.Stop()
	fmt.Println(t.State())

	// Output:
	// true
	// idle
}

func ExampleThread_StopContext() {
	t := stoppable.New()
	release := make(chan struct{})
	_ = t.Start(func() { <-release }) // ignores ShouldStop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := t.StopContext(ctx)
	fmt.Println(errors.Is(err, stoppable.ErrStopTimeout), t.State())

	close(release)
	t.Stop()
	fmt.Println(t.State())

	// Output:
	// true stop_requested
	// idle
}

func ExampleThread_Run() {
	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)

	t := stoppable.New()
	started := make(chan struct{})
	g.Go(t.Run(gctx, func() {
		close(started)
		for !t.ShouldStop() {
			time.Sleep(time.Millisecond)
		}
	}))

	<-started
	cancel()
	fmt.Println(g.Wait(), t.State())

	// Output:
	// <nil> idle
}

func ExampleStartWith() {
	t := stoppable.New()
	done := make(chan string, 1)

	_ = stoppable.StartWith(t, func(name string) { done <- "hello " + name }, "worker")
	fmt.Println(<-done)
	t.Stop()

	// Output:
	// hello worker
}
