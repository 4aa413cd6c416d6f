package main

import (
	"context"
	"flag"
	"os"

	"storefront/config"
	"storefront/internal/database"
	"storefront/internal/hashing"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/repository"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type seedUser struct {
	name, email, password string
	role                  models.Role
}

var seedUsers = []seedUser{
	{"Admin User", "admin@ecommerce.com", "admin123", models.RoleAdmin},
	{"Test User", "user@ecommerce.com", "user123", models.RoleUser},
}

func main() {
	destroy := flag.Bool("destroy", false, "only wipe the collections")
	flag.Parse()

	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()
	cfg := config.Load(log)

	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	ctx := context.Background()

	for _, name := range []string{repository.CollUsers, repository.CollProducts, repository.CollCarts, repository.CollOrders} {
		res, err := db.Collection(name).DeleteMany(ctx, bson.M{})
		if err != nil {
			log.Fatal("failed to clear collection", zap.String("collection", name), zap.Error(err))
		}
		log.Info("collection cleared", zap.String("collection", name), zap.Int64("deleted", res.DeletedCount))
	}
	if *destroy {
		log.Info("data destroyed")
		return
	}

	repos := repository.New(db)
	hasher := hashing.NewBcrypt(cfg.Password.BcryptCost)

	for _, su := range seedUsers {
		hash, err := hasher.Hash(su.password)
		if err != nil {
			log.Fatal("failed to hash password", zap.Error(err))
		}
		u := &models.User{Name: su.name, Email: su.email, Password: hash, Role: su.role}
		if err := repos.Users.Create(ctx, u); err != nil {
			log.Fatal("failed to create user", zap.String("email", su.email), zap.Error(err))
		}
		log.Info("user created", zap.String("email", su.email), zap.String("role", string(su.role)))
	}

	if err := repos.Products.InsertMany(ctx, sampleProducts); err != nil {
		log.Fatal("failed to insert products", zap.Error(err))
	}
	featured := 0
	for _, p := range sampleProducts {
		if p.IsFeatured {
			featured++
		}
	}
	log.Info("database seeded",
		zap.Int("users", len(seedUsers)),
		zap.Int("products", len(sampleProducts)),
		zap.Int("featured", featured),
	)
}
