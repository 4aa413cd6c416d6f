package service

import (
	"context"

	"storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthResult struct {
	Token     string
	ExpiresAt int64
	User      *models.User
}

type ProfilePatch struct {
	Name      *string
	Phone     *string
	Avatar    *string
	Addresses *[]models.Address
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch ProfilePatch) (*models.User, error)
	ToggleWishlist(ctx context.Context, productID primitive.ObjectID) (*models.User, error)
	Wishlist(ctx context.Context) ([]models.Product, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) (*AuthResult, error)
}
