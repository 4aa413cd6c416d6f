package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

const DefaultAvatar = "https://www.gravatar.com/avatar/?d=mp"

type Address struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Street    string             `bson:"street" json:"street"`
	City      string             `bson:"city" json:"city"`
	State     string             `bson:"state" json:"state"`
	ZipCode   string             `bson:"zipCode" json:"zipCode"`
	Country   string             `bson:"country" json:"country"`
	IsDefault bool               `bson:"isDefault" json:"isDefault"`
}

type User struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name                string               `bson:"name" json:"name"`
	Email               string               `bson:"email" json:"email"`
	Password            string               `bson:"password" json:"-"`
	Role                Role                 `bson:"role" json:"role"`
	Addresses           []Address            `bson:"addresses" json:"addresses"`
	Wishlist            []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	Phone               string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar              string               `bson:"avatar" json:"avatar"`
	ResetPasswordToken  string               `bson:"resetPasswordToken,omitempty" json:"-"`
	ResetPasswordExpire *time.Time           `bson:"resetPasswordExpire,omitempty" json:"-"`
	CreatedAt           time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type Category string

const (
	CategoryElectronics  Category = "Electronics"
	CategoryClothing     Category = "Clothing"
	CategoryHomeGarden   Category = "Home & Garden"
	CategorySports       Category = "Sports & Outdoors"
	CategoryBooks        Category = "Books"
	CategoryToys         Category = "Toys & Games"
	CategoryHealthBeauty Category = "Health & Beauty"
	CategoryAutomotive   Category = "Automotive"
	CategoryFoodGrocery  Category = "Food & Grocery"
	CategoryOther        Category = "Other"
)

var Categories = []Category{
	CategoryElectronics, CategoryClothing, CategoryHomeGarden, CategorySports, CategoryBooks,
	CategoryToys, CategoryHealthBeauty, CategoryAutomotive, CategoryFoodGrocery, CategoryOther,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Ratings struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Name      string             `bson:"name" json:"name"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Price          float64            `bson:"price" json:"price"`
	Category       Category           `bson:"category" json:"category"`
	Brand          string             `bson:"brand" json:"brand"`
	Stock          int                `bson:"stock" json:"stock"`
	Images         []string           `bson:"images" json:"images"`
	Ratings        Ratings            `bson:"ratings" json:"ratings"`
	Reviews        []Review           `bson:"reviews" json:"reviews"`
	IsFeatured     bool               `bson:"isFeatured" json:"isFeatured"`
	Specifications map[string]string  `bson:"specifications,omitempty" json:"specifications,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasReviewBy reports whether the user already left a review on the product.
func (p *Product) HasReviewBy(userID primitive.ObjectID) bool {
	for _, r := range p.Reviews {
		if r.User == userID {
			return true
		}
	}
	return false
}

func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type CartItem struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
}

type Cart struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User       primitive.ObjectID `bson:"user" json:"user"`
	Items      []CartItem         `bson:"items" json:"items"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	TotalItems int                `bson:"totalItems" json:"totalItems"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type OrderStatus string

const (
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusOutForDelivery,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

type CancelActor string

const (
	CancelledByUser  CancelActor = "user"
	CancelledByAdmin CancelActor = "admin"
)

const (
	PaymentMethodCOD    = "COD"
	PaymentMethodStripe = "stripe"
)

type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Name     string             `bson:"name" json:"name"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
	Image    string             `bson:"image" json:"image"`
}

type ShippingAddress struct {
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
	Country string `bson:"country" json:"country"`
}

type PaymentInfo struct {
	Method        string        `bson:"method" json:"method"`
	TransactionID string        `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status        PaymentStatus `bson:"status" json:"status"`
	PaidAt        *time.Time    `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User             primitive.ObjectID `bson:"user" json:"user"`
	Items            []OrderItem        `bson:"items" json:"items"`
	ShippingAddress  ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentInfo      PaymentInfo        `bson:"paymentInfo" json:"paymentInfo"`
	ItemsPrice       float64            `bson:"itemsPrice" json:"itemsPrice"`
	ShippingPrice    float64            `bson:"shippingPrice" json:"shippingPrice"`
	TaxPrice         float64            `bson:"taxPrice" json:"taxPrice"`
	TotalPrice       float64            `bson:"totalPrice" json:"totalPrice"`
	OrderStatus      OrderStatus        `bson:"orderStatus" json:"orderStatus"`
	CancelledBy      CancelActor        `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"`
	ShippedAt        *time.Time         `bson:"shippedAt,omitempty" json:"shippedAt,omitempty"`
	OutForDeliveryAt *time.Time         `bson:"outForDeliveryAt,omitempty" json:"outForDeliveryAt,omitempty"`
	DeliveredAt      *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CancelledAt      *time.Time         `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
