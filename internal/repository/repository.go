package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	CollUsers    = "users"
	CollProducts = "products"
	CollCarts    = "carts"
	CollOrders   = "orders"
)

// ErrDuplicate is returned when a write violates a unique index.
var ErrDuplicate = errors.New("duplicate key")

type Repository struct {
	DB       *mongo.Database
	Users    UserRepo
	Products ProductRepo
	Carts    CartRepo
	Orders   OrderRepo
}

func buildRepository(db *mongo.Database) *Repository {
	return &Repository{
		DB:       db,
		Users:    NewUserRepo(db),
		Products: NewProductRepo(db),
		Carts:    NewCartRepo(db),
		Orders:   NewOrderRepo(db),
	}
}

func New(db *mongo.Database) *Repository { return buildRepository(db) }

func wrapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
