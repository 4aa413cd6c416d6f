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

type OrderListFilter struct {
	UserID *primitive.ObjectID
	Status *models.OrderStatus
	Limit  int
	Offset int
}

type OrderRepo interface {
	// Create inserts the order. A second order carrying the same payment
	// transaction id fails with ErrDuplicate.
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	GetByTransactionID(ctx context.Context, txID string) (*models.Order, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]models.Order, int64, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Order, error)
	// UpdateFieldsIfStatus applies fields only while the order is in status
	// from. It returns nil when the order is missing or in another status.
	UpdateFieldsIfStatus(ctx context.Context, id primitive.ObjectID, from models.OrderStatus, fields map[string]any) (*models.Order, error)
	Count(ctx context.Context) (int64, error)
	Revenue(ctx context.Context) (float64, error)
}

type orderRepo struct{ coll *mongo.Collection }

func NewOrderRepo(db *mongo.Database) OrderRepo { return &orderRepo{coll: db.Collection(CollOrders)} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	now := time.Now().UTC()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	if o.OrderStatus == "" {
		o.OrderStatus = models.OrderStatusProcessing
	}
	if o.PaymentInfo.Status == "" {
		o.PaymentInfo.Status = models.PaymentStatusPending
	}
	if o.ShippingAddress.Country == "" {
		o.ShippingAddress.Country = "USA"
	}
	o.CreatedAt, o.UpdatedAt = now, now
	_, err := r.coll.InsertOne(ctx, o)
	return wrapWriteErr(err)
}

func (r *orderRepo) findOne(ctx context.Context, filter any) (*models.Order, error) {
	var o models.Order
	err := r.coll.FindOne(ctx, filter).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *orderRepo) GetByTransactionID(ctx context.Context, txID string) (*models.Order, error) {
	if txID == "" {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"paymentInfo.transactionId": txID})
}

func (r *orderRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	list := []models.Order{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *orderRepo) List(ctx context.Context, f OrderListFilter) ([]models.Order, int64, error) {
	q := bson.M{}
	if f.UserID != nil {
		q["user"] = *f.UserID
	}
	if f.Status != nil {
		q["orderStatus"] = *f.Status
	}

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(int64(f.Offset))
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	list := []models.Order{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *orderRepo) update(ctx context.Context, filter bson.M, fields map[string]any) (*models.Order, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	var o models.Order
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Order, error) {
	return r.update(ctx, bson.M{"_id": id}, fields)
}

func (r *orderRepo) UpdateFieldsIfStatus(ctx context.Context, id primitive.ObjectID, from models.OrderStatus, fields map[string]any) (*models.Order, error) {
	return r.update(ctx, bson.M{"_id": id, "orderStatus": from}, fields)
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *orderRepo) Revenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"orderStatus": bson.M{"$ne": models.OrderStatusCancelled}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "revenue": bson.M{"$sum": "$totalPrice"}}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var rows []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Revenue, nil
}
