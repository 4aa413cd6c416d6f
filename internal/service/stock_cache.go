package service

import (
	"context"

	"storefront/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// cachedStockProducts drops the cached featured listing whenever stock moves,
// since the cached cards carry stock.
type cachedStockProducts struct {
	repository.ProductRepo
	cache Cache
	log   *zap.Logger
}

// WithFeaturedInvalidation wraps products for the order and payment paths.
// It returns products unchanged when cache is nil.
func WithFeaturedInvalidation(products repository.ProductRepo, cache Cache, log *zap.Logger) repository.ProductRepo {
	if cache == nil {
		return products
	}
	return &cachedStockProducts{ProductRepo: products, cache: cache, log: log}
}

func (p *cachedStockProducts) DecrementStock(ctx context.Context, id primitive.ObjectID, qty int) (bool, error) {
	ok, err := p.ProductRepo.DecrementStock(ctx, id, qty)
	if ok {
		dropFeatured(ctx, p.cache, p.log)
	}
	return ok, err
}

func (p *cachedStockProducts) IncrementStock(ctx context.Context, id primitive.ObjectID, qty int) error {
	err := p.ProductRepo.IncrementStock(ctx, id, qty)
	if err == nil {
		dropFeatured(ctx, p.cache, p.log)
	}
	return err
}
