package service

import (
	"context"
	"time"

	"storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type Claims struct {
	UserID primitive.ObjectID
	Role   models.Role
	Exp    time.Time
}

type TokenProvider interface {
	SignAccess(ctx context.Context, sub primitive.ObjectID, role models.Role, ttl time.Duration) (string, time.Time, error)
	ParseAndValidateAccess(ctx context.Context, token string) (*Claims, error)
}

// Cache is the subset of the redis client the services rely on.
// Get returns an error when the key is absent.
type Cache interface {
	SetRateLimit(ctx context.Context, key string, ttl time.Duration) error
	CheckRateLimit(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type EmailMessage struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}

type EmailSender interface {
	SendEmail(ctx context.Context, key string, msg EmailMessage) error
}

type CheckoutLineItem struct {
	Name        string
	Description string
	Image       string
	UnitAmount  int64 // minor units
	Quantity    int64
}

type CheckoutShipping struct {
	Name       string
	Phone      string
	Line1      string
	City       string
	State      string
	PostalCode string
	Country    string
}

type CheckoutSessionRequest struct {
	LineItems         []CheckoutLineItem
	Currency          string
	SuccessURL        string
	CancelURL         string
	CustomerEmail     string
	ClientReferenceID string
	Metadata          map[string]string
	Shipping          *CheckoutShipping
}

type CheckoutSession struct {
	ID              string
	URL             string
	Paid            bool
	PaymentIntentID string
	Metadata        map[string]string
}

const EventCheckoutSessionCompleted = "checkout.session.completed"

type WebhookEvent struct {
	ID      string
	Type    string
	Session *CheckoutSession
}

// PaymentGateway is the hosted payment provider.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error)
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (string, error)
	// ParseWebhook verifies the signature and decodes the event.
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
