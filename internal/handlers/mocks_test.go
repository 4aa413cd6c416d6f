package handlers

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockAuthService struct {
	RegisterFunc       func(ctx context.Context, name, email, password string) (*service.AuthResult, error)
	LoginFunc          func(ctx context.Context, email, password string) (*service.AuthResult, error)
	MeFunc             func(ctx context.Context) (*models.User, error)
	UpdateProfileFunc  func(ctx context.Context, patch service.ProfilePatch) (*models.User, error)
	ToggleWishlistFunc func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	WishlistFunc       func(ctx context.Context) ([]models.Product, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, token, password string) (*service.AuthResult, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string) (*service.AuthResult, error) {
	return m.RegisterFunc(ctx, name, email, password)
}
func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	return m.LoginFunc(ctx, email, password)
}
func (m *mockAuthService) Me(ctx context.Context) (*models.User, error) { return m.MeFunc(ctx) }
func (m *mockAuthService) UpdateProfile(ctx context.Context, patch service.ProfilePatch) (*models.User, error) {
	return m.UpdateProfileFunc(ctx, patch)
}
func (m *mockAuthService) ToggleWishlist(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return m.ToggleWishlistFunc(ctx, id)
}
func (m *mockAuthService) Wishlist(ctx context.Context) ([]models.Product, error) {
	return m.WishlistFunc(ctx)
}
func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.ForgotPasswordFunc(ctx, email)
}
func (m *mockAuthService) ResetPassword(ctx context.Context, token, password string) (*service.AuthResult, error) {
	return m.ResetPasswordFunc(ctx, token, password)
}

type mockProductService struct {
	ListProductsFunc     func(ctx context.Context, q service.ProductQuery) (*service.ProductPage, error)
	GetProductFunc       func(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FeaturedProductsFunc func(ctx context.Context) ([]models.Product, error)
	CreateProductFunc    func(ctx context.Context, in service.ProductInput) (*models.Product, error)
	UpdateProductFunc    func(ctx context.Context, id primitive.ObjectID, patch service.ProductPatch) (*models.Product, error)
	DeleteProductFunc    func(ctx context.Context, id primitive.ObjectID) error
	AddReviewFunc        func(ctx context.Context, id primitive.ObjectID, rating int, comment string) error
}

func (m *mockProductService) ListProducts(ctx context.Context, q service.ProductQuery) (*service.ProductPage, error) {
	return m.ListProductsFunc(ctx, q)
}
func (m *mockProductService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return m.GetProductFunc(ctx, id)
}
func (m *mockProductService) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return m.FeaturedProductsFunc(ctx)
}
func (m *mockProductService) CreateProduct(ctx context.Context, in service.ProductInput) (*models.Product, error) {
	return m.CreateProductFunc(ctx, in)
}
func (m *mockProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, patch service.ProductPatch) (*models.Product, error) {
	return m.UpdateProductFunc(ctx, id, patch)
}
func (m *mockProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return m.DeleteProductFunc(ctx, id)
}
func (m *mockProductService) AddReview(ctx context.Context, id primitive.ObjectID, rating int, comment string) error {
	return m.AddReviewFunc(ctx, id, rating, comment)
}

type mockCartService struct {
	GetCartFunc    func(ctx context.Context) (*service.CartDetails, error)
	AddItemFunc    func(ctx context.Context, productID primitive.ObjectID, quantity int) (*service.CartDetails, error)
	UpdateItemFunc func(ctx context.Context, itemID primitive.ObjectID, quantity int) (*service.CartDetails, error)
	RemoveItemFunc func(ctx context.Context, itemID primitive.ObjectID) (*service.CartDetails, error)
	ClearCartFunc  func(ctx context.Context) (*service.CartDetails, error)
	ListCartsFunc  func(ctx context.Context) ([]service.CartDetails, error)
}

func (m *mockCartService) GetCart(ctx context.Context) (*service.CartDetails, error) {
	return m.GetCartFunc(ctx)
}
func (m *mockCartService) AddItem(ctx context.Context, productID primitive.ObjectID, quantity int) (*service.CartDetails, error) {
	return m.AddItemFunc(ctx, productID, quantity)
}
func (m *mockCartService) UpdateItem(ctx context.Context, itemID primitive.ObjectID, quantity int) (*service.CartDetails, error) {
	return m.UpdateItemFunc(ctx, itemID, quantity)
}
func (m *mockCartService) RemoveItem(ctx context.Context, itemID primitive.ObjectID) (*service.CartDetails, error) {
	return m.RemoveItemFunc(ctx, itemID)
}
func (m *mockCartService) ClearCart(ctx context.Context) (*service.CartDetails, error) {
	return m.ClearCartFunc(ctx)
}
func (m *mockCartService) ListCarts(ctx context.Context) ([]service.CartDetails, error) {
	return m.ListCartsFunc(ctx)
}

type mockOrderService struct {
	CreateOrderFunc         func(ctx context.Context, in service.CreateOrderInput) (*models.Order, error)
	MyOrdersFunc            func(ctx context.Context) ([]models.Order, error)
	GetOrderFunc            func(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	ListOrdersFunc          func(ctx context.Context, f service.ListFilter) ([]models.Order, int64, error)
	UpdateStatusFunc        func(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
	UpdatePaymentStatusFunc func(ctx context.Context, id primitive.ObjectID, status models.PaymentStatus) (*models.Order, error)
	CancelOrderFunc         func(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
}

func (m *mockOrderService) CreateOrder(ctx context.Context, in service.CreateOrderInput) (*models.Order, error) {
	return m.CreateOrderFunc(ctx, in)
}
func (m *mockOrderService) MyOrders(ctx context.Context) ([]models.Order, error) {
	return m.MyOrdersFunc(ctx)
}
func (m *mockOrderService) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return m.GetOrderFunc(ctx, id)
}
func (m *mockOrderService) ListOrders(ctx context.Context, f service.ListFilter) ([]models.Order, int64, error) {
	return m.ListOrdersFunc(ctx, f)
}
func (m *mockOrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	return m.UpdateStatusFunc(ctx, id, status)
}
func (m *mockOrderService) UpdatePaymentStatus(ctx context.Context, id primitive.ObjectID, status models.PaymentStatus) (*models.Order, error) {
	return m.UpdatePaymentStatusFunc(ctx, id, status)
}
func (m *mockOrderService) CancelOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return m.CancelOrderFunc(ctx, id)
}

type mockPaymentService struct {
	CreateCheckoutSessionFunc func(ctx context.Context, in service.CheckoutInput) (*service.CheckoutResult, error)
	CreatePaymentIntentFunc   func(ctx context.Context, amount float64) (string, error)
	HandleWebhookFunc         func(ctx context.Context, payload []byte, signature string) error
	VerifySessionFunc         func(ctx context.Context, sessionID string) (*service.VerifyResult, error)
}

func (m *mockPaymentService) CreateCheckoutSession(ctx context.Context, in service.CheckoutInput) (*service.CheckoutResult, error) {
	return m.CreateCheckoutSessionFunc(ctx, in)
}
func (m *mockPaymentService) CreatePaymentIntent(ctx context.Context, amount float64) (string, error) {
	return m.CreatePaymentIntentFunc(ctx, amount)
}
func (m *mockPaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return m.HandleWebhookFunc(ctx, payload, signature)
}
func (m *mockPaymentService) VerifySession(ctx context.Context, sessionID string) (*service.VerifyResult, error) {
	return m.VerifySessionFunc(ctx, sessionID)
}
