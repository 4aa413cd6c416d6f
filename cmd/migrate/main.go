package main

import (
	"context"
	"flag"
	"os"

	"storefront/config"
	"storefront/internal/database"
	"storefront/internal/logger"
	"storefront/internal/migrate"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	noValidators := flag.Bool("no-validators", false, "skip $jsonSchema collection validators")
	noText := flag.Bool("no-text-index", false, "skip the product text index")
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

	opts := migrate.DefaultMigrateOptions()
	opts.CreateValidators = !*noValidators
	opts.CreateTextIndex = !*noText

	if err := migrate.MigrateStoreDB(context.Background(), db, log, opts); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	log.Info("migration completed")
}
