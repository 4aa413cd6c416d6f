package main

import (
	"context"
	"fmt"
	"os"

	"storefront/config"
	"storefront/internal/cleanup"
	"storefront/internal/database"
	"storefront/internal/logger"
	"storefront/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
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

	repos := repository.New(db)
	cleanupSvc := cleanup.NewCleanupService(repos.Users, repos.Carts, log)

	ctx := context.Background()

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/cleanup/main.go [tokens|carts|all]")
		fmt.Println("  tokens - unset expired password reset tokens")
		fmt.Println("  carts  - delete long-abandoned empty carts")
		fmt.Println("  all    - run full cleanup (default)")
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "tokens":
		log.Info("running expired reset tokens cleanup")
		err = cleanupSvc.CleanupExpiredResetTokens(ctx)
	case "carts":
		log.Info("running abandoned carts cleanup")
		err = cleanupSvc.CleanupAbandonedCarts(ctx)
	default:
		log.Info("running full cleanup")
		err = cleanupSvc.RunFullCleanup(ctx)
	}
	if err != nil {
		log.Fatal("cleanup failed", zap.Error(err))
	}

	log.Info("cleanup completed successfully")
}
