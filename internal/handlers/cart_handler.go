package handlers

import (
	"net/http"

	"storefront/internal/dto"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CartHandler struct {
	svc service.CartService
	log *zap.Logger
}

func NewCartHandler(svc service.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{svc: svc, log: log}
}

func (h *CartHandler) reply(c *gin.Context, cart *service.CartDetails, err error) {
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Success: true, Cart: cart})
}

// Get godoc
// @Summary Current user's cart
// @Description Creates an empty cart on first access
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.svc.GetCart(c.Request.Context())
	h.reply(c, cart, err)
}

// Add godoc
// @Summary Add a product to the cart
// @Description Merges into the existing line for the same product
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AddToCartRequest true "Product and quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Insufficient stock or bad quantity"
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	id, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid id", []dto.FieldError{{Field: "productId", Message: "must be a 24 character hex id"}}))
		return
	}
	cart, err := h.svc.AddItem(c.Request.Context(), id, req.Qty())
	h.reply(c, cart, err)
}

// Update godoc
// @Summary Set a cart line quantity
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Cart line id"
// @Param body body dto.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/cart/{itemId} [put]
func (h *CartHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req dto.UpdateCartItemRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	cart, err := h.svc.UpdateItem(c.Request.Context(), id, req.Quantity)
	h.reply(c, cart, err)
}

// Remove godoc
// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Cart line id"
// @Success 200 {object} dto.CartResponse
// @Router /api/cart/{itemId} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	cart, err := h.svc.RemoveItem(c.Request.Context(), id)
	h.reply(c, cart, err)
}

// Clear godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CartResponse
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	cart, err := h.svc.ClearCart(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Success: true, Message: "Cart cleared", Cart: cart})
}

// All godoc
// @Summary All carts
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CartListResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Router /api/cart/all [get]
func (h *CartHandler) All(c *gin.Context) {
	list, err := h.svc.ListCarts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.CartListResponse{Success: true, Count: len(list), Carts: list})
}
