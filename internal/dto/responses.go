package dto

import (
	"storefront/internal/models"
	"storefront/internal/service"
)

type HealthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

func NewAuthResponse(r *service.AuthResult) AuthResponse {
	return AuthResponse{Success: true, Token: r.Token, User: r.User}
}

type UserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

type WishlistResponse struct {
	Success  bool             `json:"success"`
	Wishlist []models.Product `json:"wishlist"`
}

type ProductListResponse struct {
	Success  bool             `json:"success"`
	Count    int              `json:"count"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
	Products []models.Product `json:"products"`
}

func NewProductListResponse(p *service.ProductPage) ProductListResponse {
	return ProductListResponse{
		Success:  true,
		Count:    len(p.Products),
		Total:    p.Total,
		Page:     p.Page,
		Pages:    p.Pages,
		Products: p.Products,
	}
}

type FeaturedProductsResponse struct {
	Success  bool             `json:"success"`
	Count    int              `json:"count"`
	Products []models.Product `json:"products"`
}

type ProductResponse struct {
	Success bool            `json:"success"`
	Product *models.Product `json:"product"`
}

type CartResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Cart    *service.CartDetails `json:"cart"`
}

type CartListResponse struct {
	Success bool                  `json:"success"`
	Count   int                   `json:"count"`
	Carts   []service.CartDetails `json:"carts"`
}

type OrderResponse struct {
	Success bool          `json:"success"`
	Order   *models.Order `json:"order"`
}

type OrdersResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Orders  []models.Order `json:"orders"`
}

type OrderPageResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Total   int64          `json:"total"`
	Orders  []models.Order `json:"orders"`
}

type CheckoutSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type PaymentIntentResponse struct {
	Success      bool   `json:"success"`
	ClientSecret string `json:"clientSecret"`
}

type VerifySessionResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
}

type StatsResponse struct {
	Success bool           `json:"success"`
	Stats   *service.Stats `json:"stats"`
}
