package cleanup

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Scheduler struct {
	cleanup  *CleanupService
	log      *zap.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	tokenEvery time.Duration
	cartEvery  time.Duration
}

func NewScheduler(cleanup *CleanupService, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cleanup:    cleanup,
		log:        log,
		stopCh:     make(chan struct{}),
		tokenEvery: 30 * time.Minute,
		cartEvery:  24 * time.Hour,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("starting cleanup scheduler")

	s.wg.Add(2)
	go s.loop(ctx, "expired reset tokens", s.tokenEvery, true, s.cleanup.CleanupExpiredResetTokens)
	go s.loop(ctx, "abandoned carts", s.cartEvery, false, s.cleanup.CleanupAbandonedCarts)
}

// Stop signals the loops and waits for them to return. Safe to call twice.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.log.Info("stopping cleanup scheduler")
		close(s.stopCh)
	})
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, name string, every time.Duration, runNow bool, task func(context.Context) error) {
	defer s.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	if runNow {
		if err := task(ctx); err != nil {
			s.log.Error("initial cleanup failed", zap.String("task", name), zap.Error(err))
		}
	}

	for {
		select {
		case <-ticker.C:
			if err := task(ctx); err != nil {
				s.log.Error("cleanup failed", zap.String("task", name), zap.Error(err))
			}
		case <-s.stopCh:
			s.log.Info("cleanup stopped", zap.String("task", name))
			return
		case <-ctx.Done():
			s.log.Info("cleanup cancelled", zap.String("task", name))
			return
		}
	}
}

// RunOnceNow runs the full cleanup synchronously.
func (s *Scheduler) RunOnceNow(ctx context.Context) error {
	return s.cleanup.RunFullCleanup(ctx)
}
