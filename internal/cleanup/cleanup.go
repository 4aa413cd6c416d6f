package cleanup

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// AbandonedCartAge is how long an empty cart may sit untouched before it is removed.
const AbandonedCartAge = 30 * 24 * time.Hour

type ResetTokenStore interface {
	PurgeExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

type CartStore interface {
	DeleteEmptyBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type CleanupService struct {
	users ResetTokenStore
	carts CartStore
	log   *zap.Logger
	now   func() time.Time
}

func NewCleanupService(users ResetTokenStore, carts CartStore, log *zap.Logger) *CleanupService {
	return &CleanupService{
		users: users,
		carts: carts,
		log:   log,
		now:   time.Now,
	}
}

// CleanupExpiredResetTokens unsets password reset tokens past their expiry.
func (c *CleanupService) CleanupExpiredResetTokens(ctx context.Context) error {
	n, err := c.users.PurgeExpiredResetTokens(ctx, c.now())
	if err != nil {
		c.log.Error("failed to cleanup expired reset tokens", zap.Error(err))
		return err
	}
	if n > 0 {
		c.log.Info("cleaned up expired reset tokens", zap.Int64("count", n))
	}
	return nil
}

// CleanupAbandonedCarts drops empty carts that have not been touched for AbandonedCartAge.
// A cart is recreated lazily on the next read, so nothing user-visible is lost.
func (c *CleanupService) CleanupAbandonedCarts(ctx context.Context) error {
	n, err := c.carts.DeleteEmptyBefore(ctx, c.now().Add(-AbandonedCartAge))
	if err != nil {
		c.log.Error("failed to cleanup abandoned carts", zap.Error(err))
		return err
	}
	if n > 0 {
		c.log.Info("cleaned up abandoned carts", zap.Int64("count", n))
	}
	return nil
}

func (c *CleanupService) RunFullCleanup(ctx context.Context) error {
	c.log.Info("starting full cleanup")

	if err := c.CleanupExpiredResetTokens(ctx); err != nil {
		return err
	}
	if err := c.CleanupAbandonedCarts(ctx); err != nil {
		return err
	}

	c.log.Info("full cleanup completed")
	return nil
}
