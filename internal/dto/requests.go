package dto

import (
	"strings"

	"storefront/internal/models"
	"storefront/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddressRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zipCode" binding:"required"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

func (a AddressRequest) Model() models.Address {
	return models.Address{
		Name:      a.Name,
		Phone:     a.Phone,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
		IsDefault: a.IsDefault,
	}
}

type UpdateProfileRequest struct {
	Name      *string           `json:"name" binding:"omitempty,max=50"`
	Phone     *string           `json:"phone"`
	Avatar    *string           `json:"avatar"`
	Addresses *[]AddressRequest `json:"addresses" binding:"omitempty,dive"`
}

func (r UpdateProfileRequest) Patch() service.ProfilePatch {
	p := service.ProfilePatch{Name: r.Name, Phone: r.Phone, Avatar: r.Avatar}
	if r.Addresses != nil {
		list := make([]models.Address, 0, len(*r.Addresses))
		for _, a := range *r.Addresses {
			list = append(list, a.Model())
		}
		p.Addresses = &list
	}
	return p
}

type WishlistRequest struct {
	ProductID string `json:"productId" binding:"required,len=24"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

type ProductRequest struct {
	Name           string            `json:"name" binding:"required,max=100"`
	Description    string            `json:"description" binding:"required,max=2000"`
	Price          *float64          `json:"price" binding:"required,gte=0"`
	Category       string            `json:"category" binding:"required"`
	Brand          string            `json:"brand"`
	Stock          *int              `json:"stock" binding:"omitempty,gte=0"`
	Images         []string          `json:"images"`
	IsFeatured     bool              `json:"isFeatured"`
	Specifications map[string]string `json:"specifications"`
}

func (r ProductRequest) Input() service.ProductInput {
	in := service.ProductInput{
		Name:           strings.TrimSpace(r.Name),
		Description:    r.Description,
		Category:       models.Category(r.Category),
		Brand:          r.Brand,
		Images:         r.Images,
		IsFeatured:     r.IsFeatured,
		Specifications: r.Specifications,
	}
	if r.Price != nil {
		in.Price = *r.Price
	}
	if r.Stock != nil {
		in.Stock = *r.Stock
	}
	return in
}

type ProductPatchRequest struct {
	Name           *string            `json:"name" binding:"omitempty,max=100"`
	Description    *string            `json:"description" binding:"omitempty,max=2000"`
	Price          *float64           `json:"price" binding:"omitempty,gte=0"`
	Category       *string            `json:"category"`
	Brand          *string            `json:"brand"`
	Stock          *int               `json:"stock" binding:"omitempty,gte=0"`
	Images         *[]string          `json:"images"`
	IsFeatured     *bool              `json:"isFeatured"`
	Specifications *map[string]string `json:"specifications"`
}

func (r ProductPatchRequest) Patch() service.ProductPatch {
	p := service.ProductPatch{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		Brand:          r.Brand,
		Stock:          r.Stock,
		Images:         r.Images,
		IsFeatured:     r.IsFeatured,
		Specifications: r.Specifications,
	}
	if r.Category != nil {
		c := models.Category(*r.Category)
		p.Category = &c
	}
	return p
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=500"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required,len=24"`
	// Quantity defaults to 1 when omitted.
	Quantity *int `json:"quantity"`
}

func (r AddToCartRequest) Qty() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// ShippingAddress is accepted as-is; completeness is checked by the service.
type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

func (a ShippingAddress) Model() models.ShippingAddress {
	return models.ShippingAddress{
		Name:    strings.TrimSpace(a.Name),
		Phone:   strings.TrimSpace(a.Phone),
		Street:  strings.TrimSpace(a.Street),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		ZipCode: strings.TrimSpace(a.ZipCode),
		Country: strings.TrimSpace(a.Country),
	}
}

type PaymentInfoRequest struct {
	Method string `json:"method"`
}

type CreateOrderRequest struct {
	ShippingAddress ShippingAddress    `json:"shippingAddress"`
	PaymentInfo     PaymentInfoRequest `json:"paymentInfo"`
	PaymentMethod   string             `json:"paymentMethod"`
	SaveAddress     bool               `json:"saveAddress"`
}

func (r CreateOrderRequest) Input() service.CreateOrderInput {
	method := r.PaymentInfo.Method
	if method == "" {
		method = r.PaymentMethod
	}
	return service.CreateOrderInput{
		ShippingAddress: r.ShippingAddress.Model(),
		SaveAddress:     r.SaveAddress,
		PaymentMethod:   method,
	}
}

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CheckoutItemRequest struct {
	ProductID string `json:"productId" binding:"required,len=24"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CheckoutSessionRequest struct {
	Items           []CheckoutItemRequest `json:"items" binding:"dive"`
	ShippingAddress ShippingAddress       `json:"shippingAddress"`
}

// Input converts the request; ids were length checked by binding so a parse
// failure here means non-hex input.
func (r CheckoutSessionRequest) Input() (service.CheckoutInput, error) {
	items := make([]service.CheckoutItem, 0, len(r.Items))
	for _, it := range r.Items {
		id, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return service.CheckoutInput{}, err
		}
		items = append(items, service.CheckoutItem{ProductID: id, Quantity: it.Quantity})
	}
	return service.CheckoutInput{Items: items, ShippingAddress: r.ShippingAddress.Model()}, nil
}

type PaymentIntentRequest struct {
	Amount float64 `json:"amount"`
}
