package handlers

import (
	"net/http"

	"storefront/internal/dto"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const stripeSignatureHeader = "Stripe-Signature"

type PaymentHandler struct {
	svc service.PaymentService
	log *zap.Logger
}

func NewPaymentHandler(svc service.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, log: log}
}

// CreateSession godoc
// @Summary Start a hosted card checkout
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CheckoutSessionRequest true "Items and shipping address"
// @Success 200 {object} dto.CheckoutSessionResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 502 {object} dto.UpstreamErrorResponse
// @Router /api/payment/create-session [post]
func (h *PaymentHandler) CreateSession(c *gin.Context) {
	var req dto.CheckoutSessionRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	in, err := req.Input()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid id", []dto.FieldError{{Field: "productId", Message: "must be a 24 character hex id"}}))
		return
	}
	res, err := h.svc.CreateCheckoutSession(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutSessionResponse{Success: true, SessionID: res.SessionID, URL: res.URL})
}

// CreateIntent godoc
// @Summary Create a payment intent
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.PaymentIntentRequest true "Amount in major units"
// @Success 200 {object} dto.PaymentIntentResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 502 {object} dto.UpstreamErrorResponse
// @Router /api/payment/create-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.PaymentIntentRequest
	if !bindJSON(c, h.log, &req) {
		return
	}
	secret, err := h.svc.CreatePaymentIntent(c.Request.Context(), req.Amount)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.PaymentIntentResponse{Success: true, ClientSecret: secret})
}

// Webhook godoc
// @Summary Payment provider webhook
// @Description Verifies the Stripe-Signature header against the raw body
// @Tags payment
// @Accept json
// @Produce json
// @Success 200 {object} dto.WebhookAckResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Bad signature"
// @Router /api/payment/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBadRequestError("unreadable body"))
		return
	}
	if err := h.svc.HandleWebhook(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader)); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.WebhookAckResponse{Received: true})
}

// VerifySession godoc
// @Summary Confirm a paid checkout and create its order
// @Description Idempotent: returns 201 when the order was created by this call, 200 when it already existed
// @Tags payment
// @Produce json
// @Security BearerAuth
// @Param session_id query string true "Checkout session id"
// @Success 200 {object} dto.VerifySessionResponse
// @Success 201 {object} dto.VerifySessionResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Missing id or payment not completed"
// @Failure 502 {object} dto.UpstreamErrorResponse
// @Router /api/payment/verify-session [get]
func (h *PaymentHandler) VerifySession(c *gin.Context) {
	res, err := h.svc.VerifySession(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	status, msg := http.StatusOK, "Order already exists"
	if res.Created {
		status, msg = http.StatusCreated, "Order created successfully"
	}
	c.JSON(status, dto.VerifySessionResponse{Success: true, OrderID: res.Order.ID.Hex(), Message: msg})
}
