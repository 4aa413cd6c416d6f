package service

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	defaultPageSize    = 12
	maxPageSize        = 100
	featuredLimit      = 8
	featuredCacheKey   = "products:featured"
	maxNameLength      = 100
	maxDescriptionSize = 2000
)

type productService struct {
	products repository.ProductRepo
	users    repository.UserRepo
	cache    Cache
	cacheTTL time.Duration
	log      *zap.Logger
	now      func() time.Time
}

// NewProductService builds the catalog service. cache may be nil.
func NewProductService(products repository.ProductRepo, users repository.UserRepo, cache Cache, cacheTTL time.Duration, log *zap.Logger) ProductService {
	return &productService{
		products: products,
		users:    users,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
		now:      time.Now,
	}
}

func (s *productService) ListProducts(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultPageSize
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}

	list, total, err := s.products.List(ctx, repository.ProductListFilter{
		Category: q.Category,
		Brand:    q.Brand,
		Search:   strings.TrimSpace(q.Search),
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Sort:     repository.ProductSort(q.Sort),
		Limit:    q.Limit,
		Offset:   (q.Page - 1) * q.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Products: list,
		Total:    total,
		Page:     q.Page,
		Pages:    int(math.Ceil(float64(total) / float64(q.Limit))),
	}, nil
}

func (s *productService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *productService) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, featuredCacheKey); err == nil {
			var cached []models.Product
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	list, err := s.products.Featured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(list); err == nil {
			if err := s.cache.Set(ctx, featuredCacheKey, raw, s.cacheTTL); err != nil {
				s.log.Warn("failed to cache featured products", zap.Error(err))
			}
		}
	}
	return list, nil
}

func (s *productService) invalidateFeatured(ctx context.Context) {
	dropFeatured(ctx, s.cache, s.log)
}

func dropFeatured(ctx context.Context, cache Cache, log *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, featuredCacheKey); err != nil {
		log.Warn("failed to invalidate featured products cache", zap.Error(err))
	}
}

func validateProduct(name, description string, price float64, stock int, category models.Category) error {
	switch {
	case strings.TrimSpace(name) == "" || len(name) > maxNameLength:
		return ErrInvalidProduct
	case len(description) > maxDescriptionSize:
		return ErrInvalidProduct
	case price < 0 || stock < 0:
		return ErrInvalidProduct
	case !category.Valid():
		return ErrInvalidCategory
	}
	return nil
}

func (s *productService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if in.Category == "" {
		in.Category = models.CategoryOther
	}
	if err := validateProduct(in.Name, in.Description, in.Price, in.Stock, in.Category); err != nil {
		return nil, err
	}

	p := &models.Product{
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		Price:          in.Price,
		Category:       in.Category,
		Brand:          in.Brand,
		Stock:          in.Stock,
		Images:         in.Images,
		IsFeatured:     in.IsFeatured,
		Specifications: in.Specifications,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	s.log.Info("product created", zap.String("product_id", p.ID.Hex()), zap.String("name", p.Name))
	return p, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id primitive.ObjectID, patch ProductPatch) (*models.Product, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	current, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrProductNotFound
	}

	fields := map[string]any{}
	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
		fields["name"] = current.Name
	}
	if patch.Description != nil {
		current.Description = *patch.Description
		fields["description"] = current.Description
	}
	if patch.Price != nil {
		current.Price = *patch.Price
		fields["price"] = current.Price
	}
	if patch.Category != nil {
		current.Category = *patch.Category
		fields["category"] = current.Category
	}
	if patch.Brand != nil {
		fields["brand"] = *patch.Brand
	}
	if patch.Stock != nil {
		current.Stock = *patch.Stock
		fields["stock"] = current.Stock
	}
	if patch.Images != nil {
		fields["images"] = *patch.Images
	}
	if patch.IsFeatured != nil {
		fields["isFeatured"] = *patch.IsFeatured
	}
	if patch.Specifications != nil {
		fields["specifications"] = *patch.Specifications
	}
	if err := validateProduct(current.Name, current.Description, current.Price, current.Stock, current.Category); err != nil {
		return nil, err
	}

	updated, err := s.products.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}
	s.invalidateFeatured(ctx)
	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	ok, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	s.invalidateFeatured(ctx)
	s.log.Info("product deleted", zap.String("product_id", id.Hex()))
	return nil
}

func (s *productService) AddReview(ctx context.Context, id primitive.ObjectID, rating int, comment string) error {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return err
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if product.HasReviewBy(uid) {
		return ErrAlreadyReviewed
	}

	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	ok, err := s.products.PushReview(ctx, id, models.Review{
		ID:        primitive.NewObjectID(),
		User:      uid,
		Name:      user.Name,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}
	if !ok {
		// lost a race with a concurrent review by the same user, or the product vanished
		return ErrAlreadyReviewed
	}
	return nil
}
