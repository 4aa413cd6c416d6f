package service_test

import (
	"errors"
	"testing"

	"storefront/internal/models"
	"storefront/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAdmin_Stats(t *testing.T) {
	orders := newMemOrders()
	products := newMemProducts()
	carts := newMemCarts()
	svc := service.NewAdminService(orders, products, carts)
	ctx := adminCtx()

	products.add(models.Product{Name: "A", Price: 1, Stock: 1})
	products.add(models.Product{Name: "B", Price: 1, Stock: 1})
	carts.put(primitive.NewObjectID(), models.CartItem{Product: primitive.NewObjectID(), Quantity: 1, Price: 1})
	carts.put(primitive.NewObjectID())
	for _, o := range []models.Order{
		{TotalPrice: 120.5, OrderStatus: models.OrderStatusDelivered},
		{TotalPrice: 79.5, OrderStatus: models.OrderStatusProcessing},
		{TotalPrice: 1000, OrderStatus: models.OrderStatusCancelled},
	} {
		if err := orders.Create(ctx, &o); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	want := service.Stats{Revenue: 200, OrdersCount: 3, ProductsCount: 2, ActiveCarts: 1}
	if *stats != want {
		t.Fatalf("stats = %+v, want %+v", *stats, want)
	}

	if _, err := svc.Stats(userCtx(primitive.NewObjectID())); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
