package stoppable

import "golang.org/x/sync/errgroup"

// Spawner starts fn on a new goroutine.
// A non-nil error means fn was not started and will never run.
type Spawner interface {
	Spawn(fn func()) error
}

// GoSpawner starts every function with a plain go statement. It never fails.
type GoSpawner struct{}

// Spawn runs fn on a new goroutine.
func (GoSpawner) Spawn(fn func()) error {
	go fn()
	return nil
}

// GroupSpawner starts functions inside an errgroup.Group, optionally bounded.
// Share one GroupSpawner between several Threads to cap the number of workers
// running at once. When the cap is reached Spawn fails with ErrSpawnLimit.
//
// The group releases a slot only after the worker function has fully returned,
// which can be a moment after the owning Thread's Stop has returned.
type GroupSpawner struct {
	group *errgroup.Group
}

// NewGroupSpawner creates a spawner allowing at most limit concurrent workers.
// A limit <= 0 means unlimited.
func NewGroupSpawner(limit int) *GroupSpawner {
	g := new(errgroup.Group)
	if limit > 0 {
		g.SetLimit(limit)
	}
	return &GroupSpawner{group: g}
}

// Spawn runs fn in the group, or returns ErrSpawnLimit if the group is full.
func (s *GroupSpawner) Spawn(fn func()) error {
	ok := s.group.TryGo(func() error {
		fn()
		return nil
	})
	if !ok {
		return ErrSpawnLimit
	}
	return nil
}

// Wait blocks until every function started through s has returned.
func (s *GroupSpawner) Wait() error {
	return s.group.Wait()
}
