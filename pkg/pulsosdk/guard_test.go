package pulsosdk

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// blockingChecker answers each request when released through its channel,
// or fails with ctx.Err() if cancelled first.
type blockingChecker struct {
	mu      sync.Mutex
	calls   []CheckRequest
	release map[string]chan *CheckResponse
}

func newBlockingChecker() *blockingChecker {
	return &blockingChecker{release: make(map[string]chan *CheckResponse)}
}

func (b *blockingChecker) ch(permission string) chan *CheckResponse {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.release[permission]
	if !ok {
		c = make(chan *CheckResponse, 1)
		b.release[permission] = c
	}
	return c
}

func (b *blockingChecker) CheckPermission(ctx context.Context, req CheckRequest) (*CheckResponse, error) {
	b.mu.Lock()
	b.calls = append(b.calls, req)
	b.mu.Unlock()

	select {
	case resp := <-b.ch(req.Permission):
		if resp == nil {
			return nil, errors.New("boom")
		}
		return resp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (b *blockingChecker) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func TestGuardStartsLoading(t *testing.T) {
	t.Parallel()
	g := NewGuard(newBlockingChecker(), nil)
	require.Equal(t, Decision{State: Loading}, g.Current())
	require.Equal(t, "loading", g.Current().State.String())
}

func TestGuardPublishesDecision(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	checker := newBlockingChecker()

	var published []State
	g := NewGuard(checker, func(d Decision) { published = append(published, d.State) })

	checker.ch("checklist.view") <- &CheckResponse{Allowed: true, Reason: "allowed"}
	d, err := g.Update(ctx, CheckRequest{Permission: "checklist.view"})
	require.NoError(t, err)
	require.Equal(t, Decision{State: Allowed, Reason: "allowed"}, d)
	require.Equal(t, []State{Loading, Allowed}, published)

	t.Run("same criteria do not re-evaluate", func(t *testing.T) {
		d, err := g.Update(ctx, CheckRequest{Permission: "checklist.view"})
		require.NoError(t, err)
		require.Equal(t, Allowed, d.State)
		require.Equal(t, 1, checker.callCount())
	})

	t.Run("new criteria re-evaluate", func(t *testing.T) {
		checker.ch("automation.create") <- &CheckResponse{Reason: "missing_permission"}
		d, err := g.Update(ctx, CheckRequest{Permission: "automation.create"})
		require.NoError(t, err)
		require.Equal(t, Decision{State: Denied, Reason: "missing_permission"}, d)
		require.Equal(t, 2, checker.callCount())
	})

	t.Run("refresh re-evaluates the same criteria", func(t *testing.T) {
		checker.ch("automation.create") <- &CheckResponse{Allowed: true, Reason: "allowed"}
		d, err := g.Refresh(ctx)
		require.NoError(t, err)
		require.Equal(t, Allowed, d.State)
		require.Equal(t, 3, checker.callCount())
	})
}

func TestGuardSharesInFlightEvaluation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	checker := newBlockingChecker()
	g := NewGuard(checker, nil)

	type result struct {
		d   Decision
		err error
	}
	results := make(chan result, 2)
	update := func() {
		d, err := g.Update(ctx, CheckRequest{Permission: "checklist.view"})
		results <- result{d, err}
	}
	go update()
	require.Eventually(t, func() bool { return checker.callCount() == 1 }, time.Second, time.Millisecond)
	go update()

	// The second caller must not see Loading or start its own check.
	select {
	case r := <-results:
		t.Fatalf("update returned before the check finished: %+v", r)
	case <-time.After(50 * time.Millisecond):
	}

	checker.ch("checklist.view") <- &CheckResponse{Allowed: true, Reason: "allowed"}
	for range 2 {
		r := <-results
		require.NoError(t, r.err)
		require.Equal(t, Decision{State: Allowed, Reason: "allowed"}, r.d)
	}
	require.Equal(t, 1, checker.callCount())

	t.Run("waiter gives up with its context", func(t *testing.T) {
		go func() { _, _ = g.Update(ctx, CheckRequest{Permission: "slow"}) }()
		require.Eventually(t, func() bool { return checker.callCount() == 2 }, time.Second, time.Millisecond)

		wctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := g.Update(wctx, CheckRequest{Permission: "slow"})
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, 2, checker.callCount())

		checker.ch("slow") <- &CheckResponse{Reason: "missing_permission"}
		require.Eventually(t, func() bool { return g.Current().State == Denied }, time.Second, time.Millisecond)
	})
}

func TestGuardFailsClosed(t *testing.T) {
	t.Parallel()
	checker := newBlockingChecker()
	g := NewGuard(checker, nil)

	checker.ch("checklist.view") <- nil
	d, err := g.Update(context.Background(), CheckRequest{Permission: "checklist.view"})
	require.Error(t, err)
	require.Equal(t, Decision{State: Denied, Reason: ReasonError}, d)
	require.Equal(t, d, g.Current())
}

func TestGuardDropsSupersededResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	checker := newBlockingChecker()
	g := NewGuard(checker, nil)

	type result struct {
		d   Decision
		err error
	}
	first := make(chan result, 1)
	go func() {
		d, err := g.Update(ctx, CheckRequest{Permission: "slow"})
		first <- result{d, err}
	}()
	require.Eventually(t, func() bool { return checker.callCount() == 1 }, time.Second, time.Millisecond)

	checker.ch("fast") <- &CheckResponse{Reason: "missing_permission"}
	d, err := g.Update(ctx, CheckRequest{Permission: "fast"})
	require.NoError(t, err)
	require.Equal(t, Denied, d.State)

	// The slow evaluation was cancelled and must not overwrite the newer result.
	r := <-first
	require.ErrorIs(t, r.err, ErrSuperseded)
	require.Equal(t, Decision{State: Denied, Reason: "missing_permission"}, g.Current())
}

func TestGuardReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	checker := newBlockingChecker()
	g := NewGuard(checker, nil)

	done := make(chan error, 1)
	go func() {
		_, err := g.Update(ctx, CheckRequest{Permission: "slow"})
		done <- err
	}()
	require.Eventually(t, func() bool { return checker.callCount() == 1 }, time.Second, time.Millisecond)

	g.Reset()
	require.ErrorIs(t, <-done, ErrSuperseded)
	require.Equal(t, Decision{State: Loading}, g.Current())
}
