package service

import (
	"context"

	"storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductQuery struct {
	Category string
	Brand    string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Page     int
	Limit    int
}

type ProductPage struct {
	Products []models.Product
	Total    int64
	Page     int
	Pages    int
}

type ProductInput struct {
	Name           string
	Description    string
	Price          float64
	Category       models.Category
	Brand          string
	Stock          int
	Images         []string
	IsFeatured     bool
	Specifications map[string]string
}

// ProductPatch carries only the fields the caller wants to change.
type ProductPatch struct {
	Name           *string
	Description    *string
	Price          *float64
	Category       *models.Category
	Brand          *string
	Stock          *int
	Images         *[]string
	IsFeatured     *bool
	Specifications *map[string]string
}

type ProductService interface {
	ListProducts(ctx context.Context, q ProductQuery) (*ProductPage, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FeaturedProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, patch ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
	AddReview(ctx context.Context, id primitive.ObjectID, rating int, comment string) error
}
