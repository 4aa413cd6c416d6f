package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductSummary struct {
	ID     primitive.ObjectID `json:"_id"`
	Name   string             `json:"name"`
	Price  float64            `json:"price"`
	Images []string           `json:"images"`
	Stock  int                `json:"stock"`
}

type UserSummary struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

type CartItemDetails struct {
	ID       primitive.ObjectID `json:"_id"`
	Product  *ProductSummary    `json:"product"`
	Quantity int                `json:"quantity"`
	Price    float64            `json:"price"`
}

// CartDetails is a cart with its products resolved for display.
type CartDetails struct {
	ID         primitive.ObjectID `json:"_id"`
	User       primitive.ObjectID `json:"user"`
	Owner      *UserSummary       `json:"owner,omitempty"`
	Items      []CartItemDetails  `json:"items"`
	TotalPrice float64            `json:"totalPrice"`
	TotalItems int                `json:"totalItems"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

type CartService interface {
	GetCart(ctx context.Context) (*CartDetails, error)
	AddItem(ctx context.Context, productID primitive.ObjectID, quantity int) (*CartDetails, error)
	UpdateItem(ctx context.Context, itemID primitive.ObjectID, quantity int) (*CartDetails, error)
	RemoveItem(ctx context.Context, itemID primitive.ObjectID) (*CartDetails, error)
	ClearCart(ctx context.Context) (*CartDetails, error)
	ListCarts(ctx context.Context) ([]CartDetails, error)
}
