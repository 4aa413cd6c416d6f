package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepo interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	Create(ctx context.Context, c *models.Cart) error
	// Save writes the lines and derived totals as they are on c.
	Save(ctx context.Context, c *models.Cart) error
	ClearItems(ctx context.Context, userID primitive.ObjectID) error
	List(ctx context.Context) ([]models.Cart, error)
	CountNonEmpty(ctx context.Context) (int64, error)
	// DeleteEmptyBefore removes carts with no lines untouched since cutoff.
	DeleteEmptyBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type cartRepo struct{ coll *mongo.Collection }

func NewCartRepo(db *mongo.Database) CartRepo { return &cartRepo{coll: db.Collection(CollCarts)} }

func (r *cartRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var c models.Cart
	err := r.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cartRepo) Create(ctx context.Context, c *models.Cart) error {
	now := time.Now().UTC()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	c.CreatedAt, c.UpdatedAt = now, now
	_, err := r.coll.InsertOne(ctx, c)
	return wrapWriteErr(err)
}

func (r *cartRepo) Save(ctx context.Context, c *models.Cart) error {
	c.UpdatedAt = time.Now().UTC()
	items := c.Items
	if items == nil {
		items = []models.CartItem{}
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": c.ID}, bson.M{"$set": bson.M{
		"items":      items,
		"totalPrice": c.TotalPrice,
		"totalItems": c.TotalItems,
		"updatedAt":  c.UpdatedAt,
	}})
	return err
}

func (r *cartRepo) ClearItems(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"user": userID}, bson.M{"$set": bson.M{
		"items":      []models.CartItem{},
		"totalPrice": 0,
		"totalItems": 0,
		"updatedAt":  time.Now().UTC(),
	}})
	return err
}

func (r *cartRepo) List(ctx context.Context) ([]models.Cart, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	list := []models.Cart{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *cartRepo) CountNonEmpty(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"items.0": bson.M{"$exists": true}})
}

func (r *cartRepo) DeleteEmptyBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{
		"items.0":   bson.M{"$exists": false},
		"updatedAt": bson.M{"$lt": cutoff.UTC()},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
