package service

import (
	"context"

	"storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateOrderInput struct {
	ShippingAddress models.ShippingAddress
	SaveAddress     bool
	PaymentMethod   string
}

type ListFilter struct {
	Status *models.OrderStatus
	Limit  int
	Offset int
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	MyOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
	UpdatePaymentStatus(ctx context.Context, id primitive.ObjectID, status models.PaymentStatus) (*models.Order, error)
	CancelOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
}
