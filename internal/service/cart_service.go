package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type cartService struct {
	carts    repository.CartRepo
	products repository.ProductRepo
	users    repository.UserRepo
	log      *zap.Logger
}

func NewCartService(carts repository.CartRepo, products repository.ProductRepo, users repository.UserRepo, log *zap.Logger) CartService {
	return &cartService{carts: carts, products: products, users: users, log: log}
}

// loadOrCreate returns the caller's cart, creating an empty one on first use.
func (s *cartService) loadOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	cart = &models.Cart{User: userID, Items: []models.CartItem{}}
	err = s.carts.Create(ctx, cart)
	if errors.Is(err, repository.ErrDuplicate) {
		// created concurrently by another request of the same user
		return s.carts.GetByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) persist(ctx context.Context, cart *models.Cart) error {
	cart.Recalculate()
	return s.carts.Save(ctx, cart)
}

func (s *cartService) GetCart(ctx context.Context) (*CartDetails, error) {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	cart, err := s.loadOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, cart)
}

func (s *cartService) AddItem(ctx context.Context, productID primitive.ObjectID, quantity int) (*CartDetails, error) {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, ErrQuantityInvalid
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.loadOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}

	idx := cart.ItemByProduct(productID)
	existing := 0
	if idx >= 0 {
		existing = cart.Items[idx].Quantity
	}
	if existing+quantity > product.Stock {
		return nil, fmt.Errorf("%w: only %d of %s available", ErrInsufficientStock, product.Stock, product.Name)
	}

	if idx >= 0 {
		cart.Items[idx].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ID:       primitive.NewObjectID(),
			Product:  productID,
			Quantity: quantity,
			Price:    product.Price,
		})
	}

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	s.log.Debug("cart item added",
		zap.String("user_id", uid.Hex()),
		zap.String("product_id", productID.Hex()),
		zap.Int("quantity", quantity))
	return s.resolve(ctx, cart)
}

func (s *cartService) UpdateItem(ctx context.Context, itemID primitive.ObjectID, quantity int) (*CartDetails, error) {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, ErrQuantityInvalid
	}

	cart, err := s.carts.GetByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	idx := cart.ItemByID(itemID)
	if idx < 0 {
		return nil, ErrCartItemNotFound
	}

	product, err := s.products.GetByID(ctx, cart.Items[idx].Product)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.Stock < quantity {
		return nil, fmt.Errorf("%w: only %d of %s available", ErrInsufficientStock, product.Stock, product.Name)
	}

	cart.Items[idx].Quantity = quantity
	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return s.resolve(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, itemID primitive.ObjectID) (*CartDetails, error) {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	cart, err := s.carts.GetByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	kept := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	cart.Items = kept

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return s.resolve(ctx, cart)
}

func (s *cartService) ClearCart(ctx context.Context) (*CartDetails, error) {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	cart, err := s.carts.GetByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	cart.Items = []models.CartItem{}
	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return s.resolve(ctx, cart)
}

func (s *cartService) ListCarts(ctx context.Context) ([]CartDetails, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	carts, err := s.carts.List(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]primitive.ObjectID, 0, len(carts))
	for _, c := range carts {
		userIDs = append(userIDs, c.User)
	}
	users, err := s.users.BatchGetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	owners := make(map[primitive.ObjectID]*UserSummary, len(users))
	for _, u := range users {
		owners[u.ID] = &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
	}

	out := make([]CartDetails, 0, len(carts))
	for i := range carts {
		d, err := s.resolve(ctx, &carts[i])
		if err != nil {
			return nil, err
		}
		d.Owner = owners[carts[i].User]
		out = append(out, *d)
	}
	return out, nil
}

func (s *cartService) resolve(ctx context.Context, cart *models.Cart) (*CartDetails, error) {
	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.Product)
	}
	products, err := s.products.BatchGetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*ProductSummary, len(products))
	for _, p := range products {
		byID[p.ID] = &ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price, Images: p.Images, Stock: p.Stock}
	}

	items := make([]CartItemDetails, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, CartItemDetails{
			ID:       it.ID,
			Product:  byID[it.Product],
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return &CartDetails{
		ID:         cart.ID,
		User:       cart.User,
		Items:      items,
		TotalPrice: cart.TotalPrice,
		TotalItems: cart.TotalItems,
		UpdatedAt:  cart.UpdatedAt,
	}, nil
}
