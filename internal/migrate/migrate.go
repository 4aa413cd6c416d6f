package migrate

import (
	"context"
	"errors"

	"storefront/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type MigrateOptions struct {
	CreateValidators  bool // $jsonSchema on products, carts, orders
	CreateTextIndex   bool // text index on product name/description
	UniqueTransaction bool // partial unique index on paymentInfo.transactionId
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateValidators:  true,
		CreateTextIndex:   true,
		UniqueTransaction: true,
	}
}

const codeNamespaceExists = 48

func MigrateStoreDB(ctx context.Context, db *mongo.Database, log *zap.Logger, opt MigrateOptions) error {
	log.Info("starting storefront database migration")

	log.Info("creating collections")
	for _, name := range []string{repository.CollUsers, repository.CollProducts, repository.CollCarts, repository.CollOrders} {
		if err := ensureCollection(ctx, db, name); err != nil {
			log.Error("failed to create collection", zap.String("collection", name), zap.Error(err))
			return err
		}
	}
	log.Info("collections ready")

	if opt.CreateValidators {
		log.Info("applying collection validators")
		for name, schema := range validators() {
			cmd := bson.D{
				{Key: "collMod", Value: name},
				{Key: "validator", Value: bson.M{"$jsonSchema": schema}},
				{Key: "validationLevel", Value: "moderate"},
			}
			if err := db.RunCommand(ctx, cmd).Err(); err != nil {
				log.Error("failed to apply validator", zap.String("collection", name), zap.Error(err))
				return err
			}
		}
		log.Info("validators applied")
	}

	log.Info("creating indexes")
	if err := createIndexes(ctx, db, opt); err != nil {
		log.Error("failed to create indexes", zap.Error(err))
		return err
	}
	log.Info("indexes created",
		zap.Bool("textIndex", opt.CreateTextIndex),
		zap.Bool("uniqueTransaction", opt.UniqueTransaction))

	log.Info("storefront database migration completed")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	err := db.CreateCollection(ctx, name)
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists {
		return nil
	}
	return err
}

func createIndexes(ctx context.Context, db *mongo.Database, opt MigrateOptions) error {
	users := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("ux_users_email")},
		{Keys: bson.D{{Key: "resetPasswordToken", Value: 1}}, Options: options.Index().SetSparse(true).SetName("ix_users_reset_token")},
	}
	if _, err := db.Collection(repository.CollUsers).Indexes().CreateMany(ctx, users); err != nil {
		return err
	}

	products := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "price", Value: 1}}, Options: options.Index().SetName("ix_products_category_price")},
		{Keys: bson.D{{Key: "isFeatured", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("ix_products_featured")},
	}
	if opt.CreateTextIndex {
		products = append(products, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
			Options: options.Index().SetName("tx_products_name_description"),
		})
	}
	if _, err := db.Collection(repository.CollProducts).Indexes().CreateMany(ctx, products); err != nil {
		return err
	}

	carts := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}}, Options: options.Index().SetUnique(true).SetName("ux_carts_user")},
	}
	if _, err := db.Collection(repository.CollCarts).Indexes().CreateMany(ctx, carts); err != nil {
		return err
	}

	orders := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("ix_orders_user_created")},
		{Keys: bson.D{{Key: "orderStatus", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("ix_orders_status_created")},
	}
	if opt.UniqueTransaction {
		orders = append(orders, mongo.IndexModel{
			Keys: bson.D{{Key: "paymentInfo.transactionId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"paymentInfo.transactionId": bson.M{"$type": "string"}}).
				SetName("ux_orders_transaction"),
		})
	}
	_, err := db.Collection(repository.CollOrders).Indexes().CreateMany(ctx, orders)
	return err
}

func validators() map[string]bson.M {
	return map[string]bson.M{
		repository.CollProducts: {
			"bsonType": "object",
			"required": bson.A{"name", "price", "stock", "category"},
			"properties": bson.M{
				"name":  bson.M{"bsonType": "string", "maxLength": 100},
				"price": bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}, "minimum": 0},
				"stock": bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"ratings": bson.M{
					"bsonType": "object",
					"properties": bson.M{
						"average": bson.M{"minimum": 0, "maximum": 5},
					},
				},
			},
		},
		repository.CollCarts: {
			"bsonType": "object",
			"required": bson.A{"user", "items"},
			"properties": bson.M{
				"items": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"product", "quantity"},
						"properties": bson.M{
							"quantity": bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 1},
						},
					},
				},
			},
		},
		repository.CollOrders: {
			"bsonType": "object",
			"required": bson.A{"user", "items", "orderStatus", "paymentInfo"},
			"properties": bson.M{
				"orderStatus": bson.M{"enum": bson.A{"processing", "shipped", "out-for-delivery", "delivered", "cancelled"}},
				"paymentInfo": bson.M{
					"bsonType": "object",
					"properties": bson.M{
						"status": bson.M{"enum": bson.A{"pending", "completed", "failed"}},
					},
				},
			},
		},
	}
}
