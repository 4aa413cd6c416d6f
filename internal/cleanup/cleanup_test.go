package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeUsers struct {
	mu    sync.Mutex
	calls []time.Time
	n     int64
	err   error
}

func (f *fakeUsers) PurgeExpiredResetTokens(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, now)
	return f.n, f.err
}

func (f *fakeUsers) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeCarts struct {
	cutoff time.Time
	calls  int
	err    error
}

func (f *fakeCarts) DeleteEmptyBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.calls++
	f.cutoff = cutoff
	return 3, f.err
}

func TestRunFullCleanup(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	users := &fakeUsers{n: 2}
	carts := &fakeCarts{}
	svc := NewCleanupService(users, carts, zap.NewNop())
	svc.now = func() time.Time { return now }

	if err := svc.RunFullCleanup(context.Background()); err != nil {
		t.Fatalf("RunFullCleanup: %v", err)
	}
	if users.count() != 1 || !users.calls[0].Equal(now) {
		t.Fatalf("purge calls = %v", users.calls)
	}
	if carts.calls != 1 || !carts.cutoff.Equal(now.Add(-AbandonedCartAge)) {
		t.Fatalf("cart cutoff = %v", carts.cutoff)
	}
}

func TestRunFullCleanup_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	users := &fakeUsers{err: boom}
	carts := &fakeCarts{}
	svc := NewCleanupService(users, carts, zap.NewNop())

	if err := svc.RunFullCleanup(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if carts.calls != 0 {
		t.Fatal("cart cleanup should not run after a failure")
	}
}

func TestScheduler_RunsTokenCleanupOnStart(t *testing.T) {
	users := &fakeUsers{}
	s := NewScheduler(NewCleanupService(users, &fakeCarts{}, zap.NewNop()), zap.NewNop())

	s.Start(context.Background())
	deadline := time.Now().Add(2 * time.Second)
	for users.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	s.Stop()
	s.Stop()

	if users.count() == 0 {
		t.Fatal("expected an initial token cleanup")
	}
}
