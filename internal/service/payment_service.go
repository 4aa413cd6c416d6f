package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	metaUserID          = "userId"
	metaItems           = "items"
	metaShippingAddress = "shippingAddress"
	notAvailable        = "N/A"
)

type PaymentConfig struct {
	ClientURL string
	Currency  string
}

type paymentService struct {
	gateway  PaymentGateway
	orders   repository.OrderRepo
	carts    repository.CartRepo
	products repository.ProductRepo
	users    repository.UserRepo
	// verifyPricing prices orders materialized by the client verification
	// path, webhookPricing those materialized by the provider callback.
	verifyPricing  PricingPolicy
	webhookPricing PricingPolicy
	events         EventBus
	cfg            PaymentConfig
	log            *zap.Logger
	now            func() time.Time
}

// NewPaymentService wires the reconciliation service. gateway may be nil when
// no provider is configured; every operation then fails with ErrPaymentsDisabled.
func NewPaymentService(
	gateway PaymentGateway,
	orders repository.OrderRepo,
	carts repository.CartRepo,
	products repository.ProductRepo,
	users repository.UserRepo,
	verifyPricing, webhookPricing PricingPolicy,
	events EventBus,
	cfg PaymentConfig,
	log *zap.Logger,
) PaymentService {
	if cfg.Currency == "" {
		cfg.Currency = "inr"
	}
	return &paymentService{
		gateway:        gateway,
		orders:         orders,
		carts:          carts,
		products:       products,
		users:          users,
		verifyPricing:  verifyPricing,
		webhookPricing: webhookPricing,
		events:         events,
		cfg:            cfg,
		log:            log,
		now:            time.Now,
	}
}

func upstream(err error) error {
	return fmt.Errorf("%w: %s", ErrUpstream, err.Error())
}

func (s *paymentService) CreateCheckoutSession(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if s.gateway == nil {
		return nil, ErrPaymentsDisabled
	}
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	lineItems := make([]CheckoutLineItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, ErrQuantityInvalid
		}
		p, err := s.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, it.ProductID.Hex())
		}
		if p.Stock < it.Quantity {
			return nil, fmt.Errorf("%w for %s", ErrInsufficientStock, p.Name)
		}
		lineItems = append(lineItems, CheckoutLineItem{
			Name:        p.Name,
			Description: truncate(p.Description, 200),
			Image:       p.FirstImage(),
			UnitAmount:  toMinorUnits(p.Price),
			Quantity:    int64(it.Quantity),
		})
	}

	itemsJSON, err := json.Marshal(in.Items)
	if err != nil {
		return nil, err
	}
	addrJSON, err := json.Marshal(in.ShippingAddress)
	if err != nil {
		return nil, err
	}

	req := CheckoutSessionRequest{
		LineItems:         lineItems,
		Currency:          s.cfg.Currency,
		SuccessURL:        s.cfg.ClientURL + "/order-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         s.cfg.ClientURL + "/cart",
		CustomerEmail:     user.Email,
		ClientReferenceID: userID.Hex(),
		Metadata: map[string]string{
			metaUserID:          userID.Hex(),
			metaItems:           string(itemsJSON),
			metaShippingAddress: string(addrJSON),
		},
	}
	if validAddress(in.ShippingAddress) {
		req.Shipping = &CheckoutShipping{
			Name:       firstNonEmpty(in.ShippingAddress.Name, user.Name),
			Phone:      in.ShippingAddress.Phone,
			Line1:      in.ShippingAddress.Street,
			City:       in.ShippingAddress.City,
			State:      in.ShippingAddress.State,
			PostalCode: in.ShippingAddress.ZipCode,
			Country:    in.ShippingAddress.Country,
		}
	}

	sess, err := s.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		s.log.Error("checkout session creation failed", zap.String("user_id", userID.Hex()), zap.Error(err))
		return nil, upstream(err)
	}
	s.log.Info("checkout session created", zap.String("session_id", sess.ID), zap.String("user_id", userID.Hex()))
	return &CheckoutResult{SessionID: sess.ID, URL: sess.URL}, nil
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, amount float64) (string, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return "", err
	}
	if s.gateway == nil {
		return "", ErrPaymentsDisabled
	}
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	secret, err := s.gateway.CreatePaymentIntent(ctx, toMinorUnits(amount), s.cfg.Currency, map[string]string{
		metaUserID: userID.Hex(),
	})
	if err != nil {
		s.log.Error("payment intent creation failed", zap.Error(err))
		return "", upstream(err)
	}
	return secret, nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.gateway == nil {
		return ErrPaymentsDisabled
	}
	ev, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		s.log.Warn("webhook signature verification failed", zap.Error(err))
		return ErrInvalidSignature
	}

	if ev.Type != EventCheckoutSessionCompleted || ev.Session == nil {
		s.log.Info("webhook event ignored", zap.String("event_id", ev.ID), zap.String("type", ev.Type))
		return nil
	}
	if !ev.Session.Paid {
		s.log.Info("checkout completed without payment", zap.String("session_id", ev.Session.ID))
		return nil
	}

	ord, created, err := s.materialize(ctx, ev.Session, s.webhookPricing)
	if errors.Is(err, ErrInvalidSessionMetadata) {
		// redelivery cannot fix the session, so the event is acknowledged
		s.log.Warn("webhook session cannot be fulfilled",
			zap.String("session_id", ev.Session.ID),
			zap.String("event_id", ev.ID),
			zap.Error(err))
		return nil
	}
	if err != nil {
		s.log.Error("webhook order materialization failed", zap.String("session_id", ev.Session.ID), zap.Error(err))
		return err
	}
	s.log.Info("webhook processed",
		zap.String("session_id", ev.Session.ID),
		zap.String("order_id", ord.ID.Hex()),
		zap.Bool("created", created))
	return nil
}

func (s *paymentService) VerifySession(ctx context.Context, sessionID string) (*VerifyResult, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		return nil, ErrSessionIDRequired
	}
	if s.gateway == nil {
		return nil, ErrPaymentsDisabled
	}

	sess, err := s.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, upstream(err)
	}
	if !sess.Paid {
		return nil, ErrPaymentNotCompleted
	}
	owner, err := primitive.ObjectIDFromHex(sess.Metadata[metaUserID])
	if err != nil {
		return nil, ErrInvalidSessionMetadata
	}
	if role != models.RoleAdmin && owner != userID {
		return nil, ErrForbidden
	}

	ord, created, err := s.materialize(ctx, sess, s.verifyPricing)
	if err != nil {
		return nil, err
	}
	return &VerifyResult{Order: ord, Created: created}, nil
}

// materialize turns a paid session into exactly one order. Whichever of the
// webhook and verification paths gets there second sees the existing order,
// either through the lookup or through the unique transaction index.
func (s *paymentService) materialize(ctx context.Context, sess *CheckoutSession, pricing PricingPolicy) (*models.Order, bool, error) {
	txID := sess.PaymentIntentID
	if txID == "" {
		txID = sess.ID
	}

	existing, err := s.orders.GetByTransactionID(ctx, txID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	userID, err := primitive.ObjectIDFromHex(sess.Metadata[metaUserID])
	if err != nil {
		return nil, false, ErrInvalidSessionMetadata
	}
	var items []CheckoutItem
	if err := json.Unmarshal([]byte(sess.Metadata[metaItems]), &items); err != nil || len(items) == 0 {
		return nil, false, ErrInvalidSessionMetadata
	}
	addr := shippingFromMetadata(sess.Metadata[metaShippingAddress])

	orderItems := make([]models.OrderItem, 0, len(items))
	amounts := make([]lineAmount, 0, len(items))
	applied := make([]stockLine, 0, len(items))
	for _, it := range items {
		p, err := s.products.GetByID(ctx, it.ProductID)
		if err != nil {
			restoreStock(ctx, s.products, applied, s.log)
			return nil, false, err
		}
		if p == nil {
			// paid for but gone from the catalog; nothing to ship or price
			s.log.Warn("paid product no longer exists", zap.String("product_id", it.ProductID.Hex()), zap.String("tx", txID))
			continue
		}

		ok, err := s.products.DecrementStock(ctx, p.ID, it.Quantity)
		if err != nil {
			restoreStock(ctx, s.products, applied, s.log)
			return nil, false, err
		}
		if ok {
			applied = append(applied, stockLine{product: p.ID, name: p.Name, qty: it.Quantity})
		} else {
			// payment is already captured; record the shortfall for fulfilment
			s.log.Warn("stock shortfall on paid order",
				zap.String("product_id", p.ID.Hex()),
				zap.Int("requested", it.Quantity),
				zap.Int("available", p.Stock),
				zap.String("tx", txID))
		}

		orderItems = append(orderItems, models.OrderItem{
			Product:  p.ID,
			Name:     p.Name,
			Quantity: it.Quantity,
			Price:    p.Price,
			Image:    p.FirstImage(),
		})
		amounts = append(amounts, lineAmount{price: p.Price, qty: it.Quantity})
	}
	if len(orderItems) == 0 {
		return nil, false, ErrNoFulfillableItems
	}

	quote := pricing.Quote(sumLines(amounts))
	paidAt := s.now().UTC()
	order := &models.Order{
		User:            userID,
		Items:           orderItems,
		ShippingAddress: addr,
		PaymentInfo: models.PaymentInfo{
			Method:        models.PaymentMethodStripe,
			TransactionID: txID,
			Status:        models.PaymentStatusCompleted,
			PaidAt:        &paidAt,
		},
		ItemsPrice:    quote.ItemsPrice,
		ShippingPrice: quote.ShippingPrice,
		TaxPrice:      quote.TaxPrice,
		TotalPrice:    quote.TotalPrice,
		OrderStatus:   models.OrderStatusProcessing,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		restoreStock(ctx, s.products, applied, s.log)
		if errors.Is(err, repository.ErrDuplicate) {
			winner, gerr := s.orders.GetByTransactionID(ctx, txID)
			if gerr != nil {
				return nil, false, gerr
			}
			if winner != nil {
				return winner, false, nil
			}
		}
		return nil, false, err
	}

	if err := s.carts.ClearItems(ctx, userID); err != nil {
		s.log.Error("failed to clear cart after payment", zap.String("order_id", order.ID.Hex()), zap.Error(err))
	}
	s.log.Info("paid order created",
		zap.String("order_id", order.ID.Hex()),
		zap.String("user_id", userID.Hex()),
		zap.String("tx", txID))

	publishOrderCreated(ctx, s.events, s.log, order)
	return order, true, nil
}

func shippingFromMetadata(raw string) models.ShippingAddress {
	var a models.ShippingAddress
	if raw != "" {
		_ = json.Unmarshal([]byte(raw), &a)
	}
	if a.Street == "" {
		a.Street = notAvailable
	}
	if a.City == "" {
		a.City = notAvailable
	}
	if a.State == "" {
		a.State = notAvailable
	}
	if a.ZipCode == "" {
		a.ZipCode = notAvailable
	}
	if a.Country == "" {
		a.Country = notAvailable
	}
	return a
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
