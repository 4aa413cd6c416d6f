package handlers

import (
	"net/http"

	"storefront/internal/dto"
	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultOrderPageSize = 20

type OrderHandler struct {
	svc service.OrderService
	log *zap.Logger
}

func NewOrderHandler(svc service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

func (h *OrderHandler) reply(c *gin.Context, status int, o *models.Order, err error) {
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(status, dto.OrderResponse{Success: true, Order: o})
}

// Create godoc
// @Summary Place a cash-on-delivery order from the cart
// @Description Card payments go through /api/payment/create-session instead
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body dto.CreateOrderRequest true "Shipping and payment"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Empty cart, insufficient stock or unsupported method"
// @Router /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	o, err := h.svc.CreateOrder(c.Request.Context(), req.Input())
	h.reply(c, http.StatusCreated, o, err)
}

// Mine godoc
// @Summary Current user's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrdersResponse
// @Router /api/orders/my-orders [get]
func (h *OrderHandler) Mine(c *gin.Context) {
	list, err := h.svc.MyOrders(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrdersResponse{Success: true, Count: len(list), Orders: list})
}

// Get godoc
// @Summary Order details
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order id"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := h.svc.GetOrder(c.Request.Context(), id)
	h.reply(c, http.StatusOK, o, err)
}

// List godoc
// @Summary All orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} dto.OrderPageResponse
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	page, limit := queryInt(c, "page"), queryInt(c, "limit")
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultOrderPageSize
	}
	f := service.ListFilter{Limit: limit, Offset: (page - 1) * limit}
	if s := c.Query("status"); s != "" {
		st := models.OrderStatus(s)
		f.Status = &st
	}
	list, total, err := h.svc.ListOrders(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderPageResponse{Success: true, Count: len(list), Total: total, Orders: list})
}

// UpdateStatus godoc
// @Summary Change the fulfilment status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order id"
// @Param body body dto.UpdateOrderStatusRequest true "processing | shipped | out-for-delivery | delivered | cancelled"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	o, err := h.svc.UpdateStatus(c.Request.Context(), id, models.OrderStatus(req.OrderStatus))
	h.reply(c, http.StatusOK, o, err)
}

// UpdatePayment godoc
// @Summary Change the payment status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order id"
// @Param body body dto.UpdatePaymentStatusRequest true "pending | completed | failed"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/orders/{id}/payment [put]
func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePaymentStatusRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	o, err := h.svc.UpdatePaymentStatus(c.Request.Context(), id, models.PaymentStatus(req.Status))
	h.reply(c, http.StatusOK, o, err)
}

// Cancel godoc
// @Summary Cancel own order
// @Description Only while the order is still processing
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order id"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Not cancellable"
// @Failure 403 {object} dto.ForbiddenErrorResponse
// @Failure 404 {object} dto.NotFoundErrorResponse
// @Router /api/orders/{id}/cancel [put]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := h.svc.CancelOrder(c.Request.Context(), id)
	h.reply(c, http.StatusOK, o, err)
}
