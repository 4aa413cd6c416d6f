package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type productFixture struct {
	svc      service.ProductService
	products *memProducts
	users    *memUsers
	cache    *fakeCache
}

func newProductFixture() *productFixture {
	f := &productFixture{products: newMemProducts(), users: newMemUsers(), cache: newFakeCache()}
	f.svc = service.NewProductService(f.products, f.users, f.cache, time.Minute, zap.NewNop())
	return f
}

func TestProduct_ListPaging(t *testing.T) {
	f := newProductFixture()
	for i := 0; i < 25; i++ {
		f.products.add(models.Product{Name: "Item", Price: float64(i), Stock: 1, Category: models.CategoryBooks})
	}
	f.products.add(models.Product{Name: "Ball", Price: 9, Stock: 1, Category: models.CategorySports})

	page, err := f.svc.ListProducts(context.Background(), service.ProductQuery{Category: "Books"})
	if err != nil {
		t.Fatalf("ListProducts error: %v", err)
	}
	if page.Total != 25 || page.Pages != 3 || page.Page != 1 || len(page.Products) != 12 {
		t.Fatalf("page = total %d pages %d page %d len %d", page.Total, page.Pages, page.Page, len(page.Products))
	}

	page, err = f.svc.ListProducts(context.Background(), service.ProductQuery{Category: "Books", Page: 3, Limit: 1000})
	if err != nil {
		t.Fatalf("ListProducts error: %v", err)
	}
	// the limit is capped, so everything fits on page one and page three is empty
	if page.Pages != 1 || len(page.Products) != 0 {
		t.Fatalf("capped page = pages %d len %d", page.Pages, len(page.Products))
	}
}

func TestProduct_GetMissing(t *testing.T) {
	f := newProductFixture()
	if _, err := f.svc.GetProduct(context.Background(), primitive.NewObjectID()); !errors.Is(err, service.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProduct_FeaturedIsCachedAndInvalidated(t *testing.T) {
	f := newProductFixture()
	f.products.add(models.Product{Name: "Star", Price: 10, Stock: 1, IsFeatured: true})
	f.products.add(models.Product{Name: "Plain", Price: 10, Stock: 1})
	ctx := context.Background()

	first, err := f.svc.FeaturedProducts(ctx)
	if err != nil || len(first) != 1 || first[0].Name != "Star" {
		t.Fatalf("FeaturedProducts = %+v, %v", first, err)
	}
	second, err := f.svc.FeaturedProducts(ctx)
	if err != nil || len(second) != 1 {
		t.Fatalf("cached FeaturedProducts = %+v, %v", second, err)
	}
	if f.products.featuredCalls != 1 {
		t.Fatalf("repository hit %d times, want 1", f.products.featuredCalls)
	}

	if _, err := f.svc.CreateProduct(adminCtx(), service.ProductInput{Name: "Nova", Price: 5, IsFeatured: true}); err != nil {
		t.Fatalf("CreateProduct error: %v", err)
	}
	third, err := f.svc.FeaturedProducts(ctx)
	if err != nil || len(third) != 2 {
		t.Fatalf("FeaturedProducts after create = %d, %v", len(third), err)
	}
	if f.products.featuredCalls != 2 {
		t.Fatalf("repository hit %d times, want 2", f.products.featuredCalls)
	}
}

func TestProduct_CreateValidation(t *testing.T) {
	f := newProductFixture()

	if _, err := f.svc.CreateProduct(userCtx(primitive.NewObjectID()), service.ProductInput{Name: "X"}); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.svc.CreateProduct(adminCtx(), service.ProductInput{Name: "X", Category: "Weapons"}); !errors.Is(err, service.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if _, err := f.svc.CreateProduct(adminCtx(), service.ProductInput{Name: "X", Price: -1}); !errors.Is(err, service.ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}

	p, err := f.svc.CreateProduct(adminCtx(), service.ProductInput{Name: "  Lamp  ", Price: 12})
	if err != nil {
		t.Fatalf("CreateProduct error: %v", err)
	}
	if p.Name != "Lamp" || p.Category != models.CategoryOther || p.ID.IsZero() {
		t.Fatalf("created = %+v", p)
	}
}

func TestProduct_UpdateAndDelete(t *testing.T) {
	f := newProductFixture()
	pid := f.products.add(models.Product{Name: "Lamp", Price: 12, Stock: 3, Brand: "Lumo"})
	ctx := adminCtx()

	price := 15.5
	stock := 9
	got, err := f.svc.UpdateProduct(ctx, pid, service.ProductPatch{Price: &price, Stock: &stock})
	if err != nil {
		t.Fatalf("UpdateProduct error: %v", err)
	}
	if got.Price != 15.5 || got.Stock != 9 || got.Name != "Lamp" || got.Brand != "Lumo" {
		t.Fatalf("updated = %+v", got)
	}

	bad := models.Category("Weapons")
	if _, err := f.svc.UpdateProduct(ctx, pid, service.ProductPatch{Category: &bad}); !errors.Is(err, service.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	if err := f.svc.DeleteProduct(ctx, pid); err != nil {
		t.Fatalf("DeleteProduct error: %v", err)
	}
	if err := f.svc.DeleteProduct(ctx, pid); !errors.Is(err, service.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProduct_AddReview(t *testing.T) {
	f := newProductFixture()
	pid := f.products.add(models.Product{Name: "Lamp", Price: 12, Stock: 3})
	alice := f.users.add(models.User{Name: "Alice", Email: "alice@example.com"})
	bob := f.users.add(models.User{Name: "Bob", Email: "bob@example.com"})

	if err := f.svc.AddReview(userCtx(alice), pid, 4, " nice "); err != nil {
		t.Fatalf("AddReview error: %v", err)
	}
	if err := f.svc.AddReview(userCtx(bob), pid, 5, ""); err != nil {
		t.Fatalf("AddReview error: %v", err)
	}

	p, _ := f.products.GetByID(context.Background(), pid)
	if p.Ratings.Count != 2 || p.Ratings.Average != 4.5 {
		t.Fatalf("ratings = %+v, want 4.5 over 2", p.Ratings)
	}
	if p.Reviews[0].Name != "Alice" || p.Reviews[0].Comment != "nice" {
		t.Fatalf("review = %+v", p.Reviews[0])
	}

	if err := f.svc.AddReview(userCtx(alice), pid, 1, "changed my mind"); !errors.Is(err, service.ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
	if err := f.svc.AddReview(userCtx(alice), pid, 6, ""); !errors.Is(err, service.ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}
	if err := f.svc.AddReview(context.Background(), pid, 3, ""); !errors.Is(err, service.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProduct_FeaturedCacheDroppedWhenStockMoves(t *testing.T) {
	f := newProductFixture()
	users := newMemUsers()
	carts := newMemCarts()
	uid := users.add(models.User{Name: "Jane", Email: "jane@example.com"})
	pid := f.products.add(models.Product{Name: "Star", Price: 600, Stock: 5, IsFeatured: true})
	carts.put(uid, models.CartItem{Product: pid, Quantity: 2, Price: 600})

	orders := service.NewOrderService(newMemOrders(), carts, service.WithFeaturedInvalidation(f.products, f.cache, zap.NewNop()),
		users, service.NewStandardPricing(), nil, zap.NewNop())
	ctx := context.Background()

	if _, err := f.svc.FeaturedProducts(ctx); err != nil {
		t.Fatalf("FeaturedProducts error: %v", err)
	}
	if _, err := orders.CreateOrder(userCtx(uid), service.CreateOrderInput{ShippingAddress: homeAddress}); err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	list, err := f.svc.FeaturedProducts(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("FeaturedProducts = %+v, %v", list, err)
	}
	if list[0].Stock != 3 {
		t.Fatalf("featured stock = %d, want 3", list[0].Stock)
	}
	if f.products.featuredCalls != 2 {
		t.Fatalf("repository hit %d times, want 2", f.products.featuredCalls)
	}
}

func TestWithFeaturedInvalidation(t *testing.T) {
	products := newMemProducts()
	pid := products.add(models.Product{Name: "Star", Price: 10, Stock: 1})
	if got := service.WithFeaturedInvalidation(products, nil, zap.NewNop()); got != products {
		t.Fatal("nil cache should return the repository unchanged")
	}

	cache := newFakeCache()
	repo := service.WithFeaturedInvalidation(products, cache, zap.NewNop())
	ctx := context.Background()
	seed := func() { _ = cache.Set(ctx, "products:featured", "[]", time.Minute) }

	seed()
	if ok, err := repo.DecrementStock(ctx, pid, 5); err != nil || ok {
		t.Fatalf("DecrementStock beyond stock = %v, %v", ok, err)
	}
	if _, err := cache.Get(ctx, "products:featured"); err != nil {
		t.Fatal("cache dropped although stock did not move")
	}

	if ok, err := repo.DecrementStock(ctx, pid, 1); err != nil || !ok {
		t.Fatalf("DecrementStock = %v, %v", ok, err)
	}
	if _, err := cache.Get(ctx, "products:featured"); err == nil {
		t.Fatal("cache kept after decrement")
	}

	seed()
	if err := repo.IncrementStock(ctx, pid, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Get(ctx, "products:featured"); err == nil {
		t.Fatal("cache kept after increment")
	}
	if products.stock(pid) != 1 {
		t.Fatalf("stock = %d, want 1", products.stock(pid))
	}
}
