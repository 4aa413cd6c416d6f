package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortRating    ProductSort = "rating"
)

type ProductListFilter struct {
	Category string
	Brand    string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Sort     ProductSort
	Limit    int
	Offset   int
}

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	InsertMany(ctx context.Context, ps []models.Product) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	BatchGetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	// DecrementStock lowers stock by qty only when at least qty units remain.
	// It reports false when the guard did not match.
	DecrementStock(ctx context.Context, id primitive.ObjectID, qty int) (bool, error)
	IncrementStock(ctx context.Context, id primitive.ObjectID, qty int) error
	// PushReview appends the review unless the author already has one on the
	// product, and recomputes ratings from the stored reviews in the same write.
	PushReview(ctx context.Context, id primitive.ObjectID, review models.Review) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type productRepo struct{ coll *mongo.Collection }

func NewProductRepo(db *mongo.Database) ProductRepo {
	return &productRepo{coll: db.Collection(CollProducts)}
}

func prepareProduct(p *models.Product, now time.Time) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Reviews == nil {
		p.Reviews = []models.Review{}
	}
	if p.Category == "" {
		p.Category = models.CategoryOther
	}
	p.CreatedAt, p.UpdatedAt = now, now
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	prepareProduct(p, time.Now().UTC())
	_, err := r.coll.InsertOne(ctx, p)
	return wrapWriteErr(err)
}

func (r *productRepo) InsertMany(ctx context.Context, ps []models.Product) error {
	if len(ps) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]any, 0, len(ps))
	for i := range ps {
		prepareProduct(&ps[i], now)
		docs = append(docs, ps[i])
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return wrapWriteErr(err)
}

func (r *productRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) BatchGetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var out []models.Product
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func buildProductQuery(f ProductListFilter) bson.M {
	q := bson.M{}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Brand != "" {
		q["brand"] = f.Brand
	}
	if f.Search != "" {
		q["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		q["price"] = price
	}
	return q
}

func sortSpec(s ProductSort) bson.D {
	switch s {
	case SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}}
	case SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}, {Key: "_id", Value: 1}}
	case SortRating:
		return bson.D{{Key: "ratings.average", Value: -1}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	}
}

func (r *productRepo) List(ctx context.Context, f ProductListFilter) ([]models.Product, int64, error) {
	q := buildProductQuery(f)

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 12
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	opts := options.Find().
		SetSort(sortSpec(f.Sort)).
		SetSkip(int64(f.Offset)).
		SetLimit(int64(f.Limit)).
		SetProjection(bson.M{"reviews": 0})
	cur, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	list := []models.Product{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *productRepo) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"reviews": 0})
	cur, err := r.coll.Find(ctx, bson.M{"isFeatured": true}, opts)
	if err != nil {
		return nil, err
	}
	list := []models.Product{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Product, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	var p models.Product
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *productRepo) DecrementStock(ctx context.Context, id primitive.ObjectID, qty int) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "stock": bson.M{"$gte": qty}},
		bson.M{
			"$inc": bson.M{"stock": -qty},
			"$set": bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *productRepo) IncrementStock(ctx context.Context, id primitive.ObjectID, qty int) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"stock": qty},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	return err
}

func (r *productRepo) PushReview(ctx context.Context, id primitive.ObjectID, review models.Review) (bool, error) {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "reviews", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$reviews", bson.A{}}}},
				// literal so comment text starting with $ is not read as a field path
				bson.D{{Key: "$literal", Value: bson.A{review}}},
			}}}},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "ratings.count", Value: bson.D{{Key: "$size", Value: "$reviews"}}},
			{Key: "ratings.average", Value: bson.D{{Key: "$avg", Value: "$reviews.rating"}}},
		}}},
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "reviews.user": bson.M{"$ne": review.User}},
		update,
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
