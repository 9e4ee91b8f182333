package pulsosdk

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned by an evaluation whose result was discarded
// because newer criteria arrived first.
var ErrSuperseded = errors.New("pulsosdk: evaluation superseded")

// ReasonError is the reason published when an evaluation fails.
const ReasonError = "error"

// State is what a guarded view should show.
type State int

const (
	Loading State = iota
	Denied
	Allowed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Denied:
		return "denied"
	case Allowed:
		return "allowed"
	}
	return "unknown"
}

// Decision is a published guard state.
type Decision struct {
	State  State
	Reason string
}

// Checker evaluates gate criteria. *Client implements it.
type Checker interface {
	CheckPermission(ctx context.Context, req CheckRequest) (*CheckResponse, error)
}

var _ Checker = (*Client)(nil)

// Guard holds the current permission decision for one view. Every
// evaluation is tagged with a generation and only the newest generation may
// publish; older ones are cancelled and return ErrSuperseded.
type Guard struct {
	checker  Checker
	onChange func(Decision)

	mu       sync.Mutex
	gen      uint64
	criteria CheckRequest
	started  bool
	cancel   context.CancelFunc
	done     chan struct{} // closed when the in-flight evaluation ends
	err      error         // error of the last published evaluation
	current  Decision
}

// NewGuard creates a guard in the Loading state. onChange, if not nil, is
// called with each published decision while the guard's lock is held, so it
// must not call back into the guard.
func NewGuard(checker Checker, onChange func(Decision)) *Guard {
	return &Guard{checker: checker, onChange: onChange}
}

// Current returns the last published decision.
func (g *Guard) Current() Decision {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Update evaluates criteria and blocks until the result is published. When
// criteria equal the last ones no new evaluation starts: a settled decision
// is returned as is, and an in-flight one is waited for and its result
// shared. Errors publish Denied and are returned alongside it.
func (g *Guard) Update(ctx context.Context, criteria CheckRequest) (Decision, error) {
	g.mu.Lock()
	if g.started && g.criteria == criteria {
		if g.done != nil {
			return g.waitLocked(ctx)
		}
		d := g.current
		g.mu.Unlock()
		return d, nil
	}
	return g.evaluateLocked(ctx, criteria)
}

// Refresh re-evaluates the last criteria, e.g. after the user's roles
// changed.
func (g *Guard) Refresh(ctx context.Context) (Decision, error) {
	g.mu.Lock()
	return g.evaluateLocked(ctx, g.criteria)
}

// Reset cancels any in-flight evaluation and returns to Loading.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.gen++
	g.started = false
	g.criteria = CheckRequest{}
	g.done, g.err = nil, nil
	g.publishLocked(Decision{State: Loading})
}

// waitLocked is entered with g.mu held and waits for the in-flight
// evaluation without starting another.
func (g *Guard) waitLocked(ctx context.Context) (Decision, error) {
	gen, done := g.gen, g.done
	g.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		return Decision{}, ctx.Err()
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.gen {
		return Decision{}, ErrSuperseded
	}
	return g.current, g.err
}

// evaluateLocked is entered with g.mu held and releases it while the
// checker runs.
func (g *Guard) evaluateLocked(ctx context.Context, criteria CheckRequest) (Decision, error) {
	if g.cancel != nil {
		g.cancel()
	}
	g.gen++
	gen := g.gen
	g.criteria, g.started = criteria, true

	done := make(chan struct{})
	defer close(done)
	g.done = done

	ectx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.publishLocked(Decision{State: Loading})
	g.mu.Unlock()
	defer cancel()

	resp, err := g.checker.CheckPermission(ectx, criteria)

	g.mu.Lock()
	defer g.mu.Unlock()

	if gen != g.gen {
		return Decision{}, ErrSuperseded
	}
	g.cancel, g.done, g.err = nil, nil, err

	var d Decision
	switch {
	case err != nil:
		d = Decision{State: Denied, Reason: ReasonError}
	case resp.Allowed:
		d = Decision{State: Allowed, Reason: resp.Reason}
	default:
		d = Decision{State: Denied, Reason: resp.Reason}
	}
	g.publishLocked(d)
	return d, err
}

func (g *Guard) publishLocked(d Decision) {
	g.current = d
	if g.onChange != nil {
		g.onChange(d)
	}
}
