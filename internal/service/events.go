package service

import (
	"context"
	"time"

	"storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OrderItemEvent struct {
	ProductID primitive.ObjectID `json:"product_id"`
	Quantity  int                `json:"quantity"`
	Price     float64            `json:"price"`
}

type OrderCreatedEvent struct {
	OrderID       primitive.ObjectID `json:"order_id"`
	UserID        primitive.ObjectID `json:"user_id"`
	Items         []OrderItemEvent   `json:"items"`
	ItemsPrice    float64            `json:"items_price"`
	TotalPrice    float64            `json:"total_price"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`
}

type OrderCancelledEvent struct {
	OrderID     primitive.ObjectID `json:"order_id"`
	UserID      primitive.ObjectID `json:"user_id"`
	CancelledBy string             `json:"cancelled_by"`
	CancelledAt time.Time          `json:"cancelled_at"`
}

type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishOrderCancelled(ctx context.Context, e OrderCancelledEvent) error
}

// publishOrderCreated is best effort: a bus failure never fails the order.
func publishOrderCreated(ctx context.Context, bus EventBus, log *zap.Logger, o *models.Order) {
	if bus == nil {
		return
	}
	items := make([]OrderItemEvent, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEvent{ProductID: it.Product, Quantity: it.Quantity, Price: it.Price})
	}
	if err := bus.PublishOrderCreated(ctx, OrderCreatedEvent{
		OrderID:       o.ID,
		UserID:        o.User,
		Items:         items,
		ItemsPrice:    o.ItemsPrice,
		TotalPrice:    o.TotalPrice,
		PaymentMethod: o.PaymentInfo.Method,
		CreatedAt:     o.CreatedAt,
	}); err != nil {
		log.Warn("failed to publish order created event", zap.String("order_id", o.ID.Hex()), zap.Error(err))
	}
}
