package service

import (
	"context"

	"storefront/internal/repository"
)

type Stats struct {
	Revenue       float64 `json:"revenue"`
	OrdersCount   int64   `json:"ordersCount"`
	ProductsCount int64   `json:"productsCount"`
	ActiveCarts   int64   `json:"activeCarts"`
}

type AdminService interface {
	Stats(ctx context.Context) (*Stats, error)
}

type adminService struct {
	orders   repository.OrderRepo
	products repository.ProductRepo
	carts    repository.CartRepo
}

func NewAdminService(orders repository.OrderRepo, products repository.ProductRepo, carts repository.CartRepo) AdminService {
	return &adminService{orders: orders, products: products, carts: carts}
}

// Stats aggregates the dashboard counters. Revenue excludes cancelled orders.
func (s *adminService) Stats(ctx context.Context) (*Stats, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	revenue, err := s.orders.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	carts, err := s.carts.CountNonEmpty(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Revenue:       revenue,
		OrdersCount:   orders,
		ProductsCount: products,
		ActiveCarts:   carts,
	}, nil
}
