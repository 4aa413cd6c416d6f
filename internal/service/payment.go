package service

import (
	"context"

	"storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CheckoutItem struct {
	ProductID primitive.ObjectID `json:"productId"`
	Quantity  int                `json:"quantity"`
}

type CheckoutInput struct {
	Items           []CheckoutItem
	ShippingAddress models.ShippingAddress
}

type CheckoutResult struct {
	SessionID string
	URL       string
}

type VerifyResult struct {
	Order   *models.Order
	Created bool
}

type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
	CreatePaymentIntent(ctx context.Context, amount float64) (string, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	VerifySession(ctx context.Context, sessionID string) (*VerifyResult, error)
}
