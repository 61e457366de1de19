package search

import (
	"sync"

	"github.com/google/uuid"

	"github.com/leadscout-hq/leadscout/internal/domain"
)

// Controller owns the request lifecycle for a single search surface. Every
// state mutation happens under one mutex, giving the lifecycle a single
// logical writer no matter which goroutine carries the network call.
type Controller[T any] struct {
	mu    sync.Mutex
	state domain.LifecycleState[T]
}

// NewController returns a controller in the idle phase.
func NewController[T any]() *Controller[T] {
	return &Controller[T]{
		state: domain.LifecycleState[T]{Phase: domain.PhaseIdle},
	}
}

// Begin transitions to in-flight under a fresh request id. A submission
// started while another is outstanding supersedes it for result acceptance;
// the older transport call is not aborted, its response is simply discarded
// on arrival. Beginning also clears any previously settled outcome.
func (c *Controller[T]) Begin() string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = domain.LifecycleState[T]{
		Phase:     domain.PhaseInFlight,
		RequestID: id,
	}
	return id
}

// Settle records the outcome of submission id. It reports false and leaves
// the state untouched when id is no longer the current in-flight submission,
// so a slow earlier response can never clobber a later one's results.
func (c *Controller[T]) Settle(id string, out *domain.Outcome[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Phase != domain.PhaseInFlight || c.state.RequestID != id {
		return false
	}
	c.state = domain.LifecycleState[T]{
		Phase:   domain.PhaseSettled,
		Outcome: out,
	}
	return true
}

// SettleNow settles immediately without ever entering in-flight. Used for
// validation failures, which short-circuit before any network call.
func (c *Controller[T]) SettleNow(out *domain.Outcome[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = domain.LifecycleState[T]{
		Phase:   domain.PhaseSettled,
		Outcome: out,
	}
}

// State returns a point-in-time snapshot. Safe to call from any goroutine
// while a submission is outstanding.
func (c *Controller[T]) State() domain.LifecycleState[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
