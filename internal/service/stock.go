package service

import (
	"context"
	"fmt"

	"storefront/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stockLine struct {
	product primitive.ObjectID
	name    string
	qty     int
}

// decrementStock applies the guarded decrements in order. When one of them
// does not apply, the ones already applied are given back and the call fails.
func decrementStock(ctx context.Context, products repository.ProductRepo, lines []stockLine, log *zap.Logger) error {
	for i, l := range lines {
		ok, err := products.DecrementStock(ctx, l.product, l.qty)
		if err == nil && !ok {
			err = fmt.Errorf("%w for %s", ErrInsufficientStock, l.name)
		}
		if err != nil {
			restoreStock(ctx, products, lines[:i], log)
			return err
		}
	}
	return nil
}

func restoreStock(ctx context.Context, products repository.ProductRepo, lines []stockLine, log *zap.Logger) {
	for i := len(lines) - 1; i >= 0; i-- {
		l := lines[i]
		if err := products.IncrementStock(ctx, l.product, l.qty); err != nil {
			log.Error("failed to restore stock",
				zap.String("product_id", l.product.Hex()),
				zap.Int("quantity", l.qty),
				zap.Error(err))
		}
	}
}
