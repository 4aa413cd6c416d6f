package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"

	"github.com/nanorand/nanorand"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type orderService struct {
	orders   repository.OrderRepo
	carts    repository.CartRepo
	products repository.ProductRepo
	users    repository.UserRepo
	pricing  PricingPolicy
	events   EventBus
	log      *zap.Logger
	now      func() time.Time
}

// NewOrderService builds the order service. events may be nil.
func NewOrderService(
	orders repository.OrderRepo,
	carts repository.CartRepo,
	products repository.ProductRepo,
	users repository.UserRepo,
	pricing PricingPolicy,
	events EventBus,
	log *zap.Logger,
) OrderService {
	return &orderService{
		orders:   orders,
		carts:    carts,
		products: products,
		users:    users,
		pricing:  pricing,
		events:   events,
		log:      log,
		now:      time.Now,
	}
}

func validAddress(a models.ShippingAddress) bool {
	return strings.TrimSpace(a.Street) != "" &&
		strings.TrimSpace(a.City) != "" &&
		strings.TrimSpace(a.State) != "" &&
		strings.TrimSpace(a.ZipCode) != ""
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = models.PaymentMethodCOD
	}
	if !strings.EqualFold(method, models.PaymentMethodCOD) {
		return nil, ErrUnsupportedPaymentMethod
	}
	if !validAddress(in.ShippingAddress) {
		return nil, ErrInvalidAddress
	}

	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Every line is checked before any stock is touched.
	items := make([]models.OrderItem, 0, len(cart.Items))
	lines := make([]stockLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		p, err := s.products.GetByID(ctx, it.Product)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, it.Product.Hex())
		}
		if p.Stock < it.Quantity {
			return nil, fmt.Errorf("%w for %s", ErrInsufficientStock, p.Name)
		}
		items = append(items, models.OrderItem{
			Product:  p.ID,
			Name:     p.Name,
			Quantity: it.Quantity,
			Price:    p.Price,
			Image:    p.FirstImage(),
		})
		lines = append(lines, stockLine{product: p.ID, name: p.Name, qty: it.Quantity})
	}

	if err := decrementStock(ctx, s.products, lines, s.log); err != nil {
		return nil, err
	}

	if in.SaveAddress {
		s.saveAddress(ctx, userID, in.ShippingAddress)
	}

	code, err := nanorand.Gen(12)
	if err != nil {
		restoreStock(ctx, s.products, lines, s.log)
		return nil, err
	}

	quote := s.pricing.Quote(cart.TotalPrice)
	order := &models.Order{
		User:            userID,
		Items:           items,
		ShippingAddress: in.ShippingAddress,
		PaymentInfo: models.PaymentInfo{
			Method:        models.PaymentMethodCOD,
			TransactionID: "COD-" + strings.ToUpper(code),
			Status:        models.PaymentStatusPending,
		},
		ItemsPrice:    quote.ItemsPrice,
		ShippingPrice: quote.ShippingPrice,
		TaxPrice:      quote.TaxPrice,
		TotalPrice:    quote.TotalPrice,
		OrderStatus:   models.OrderStatusProcessing,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		restoreStock(ctx, s.products, lines, s.log)
		return nil, err
	}

	if err := s.carts.ClearItems(ctx, userID); err != nil {
		s.log.Error("failed to clear cart after order", zap.String("order_id", order.ID.Hex()), zap.Error(err))
	}

	s.log.Info("order created",
		zap.String("order_id", order.ID.Hex()),
		zap.String("user_id", userID.Hex()),
		zap.Float64("total", order.TotalPrice))
	publishOrderCreated(ctx, s.events, s.log, order)
	return order, nil
}

// saveAddress appends the address to the user's book unless an entry with the
// same street, city and zip code exists. Failures do not fail the order.
func (s *orderService) saveAddress(ctx context.Context, userID primitive.ObjectID, a models.ShippingAddress) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil || u == nil {
		s.log.Warn("address not saved: user lookup failed", zap.String("user_id", userID.Hex()), zap.Error(err))
		return
	}
	for _, existing := range u.Addresses {
		if existing.Street == a.Street && existing.City == a.City && existing.ZipCode == a.ZipCode {
			return
		}
	}
	addr := models.Address{
		ID:        primitive.NewObjectID(),
		Name:      a.Name,
		Phone:     a.Phone,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
		IsDefault: len(u.Addresses) == 0,
	}
	if err := s.users.AddAddress(ctx, userID, addr); err != nil {
		s.log.Warn("address not saved", zap.String("user_id", userID.Hex()), zap.Error(err))
	}
}

func (s *orderService) publishCancelled(ctx context.Context, o *models.Order) {
	if s.events == nil {
		return
	}
	at := s.now().UTC()
	if o.CancelledAt != nil {
		at = *o.CancelledAt
	}
	if err := s.events.PublishOrderCancelled(ctx, OrderCancelledEvent{
		OrderID:     o.ID,
		UserID:      o.User,
		CancelledBy: string(o.CancelledBy),
		CancelledAt: at,
	}); err != nil {
		s.log.Warn("failed to publish order cancelled event", zap.String("order_id", o.ID.Hex()), zap.Error(err))
	}
}

func (s *orderService) MyOrders(ctx context.Context) ([]models.Order, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	return s.orders.ListByUser(ctx, userID)
}

func (s *orderService) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	ord, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	if role != models.RoleAdmin && ord.User != userID {
		return nil, ErrForbidden
	}
	return ord, nil
}

func (s *orderService) ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.orders.List(ctx, repository.OrderListFilter{
		Status: f.Status,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
}

func (s *orderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	now := s.now().UTC()
	fields := map[string]any{"orderStatus": status}
	switch status {
	case models.OrderStatusShipped:
		fields["shippedAt"] = now
	case models.OrderStatusOutForDelivery:
		fields["outForDeliveryAt"] = now
	case models.OrderStatusDelivered:
		fields["deliveredAt"] = now
	case models.OrderStatusCancelled:
		fields["cancelledBy"] = models.CancelledByAdmin
		fields["cancelledAt"] = now
	}

	ord, err := s.orders.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	s.log.Info("order status updated", zap.String("order_id", id.Hex()), zap.String("status", string(status)))
	if status == models.OrderStatusCancelled {
		s.publishCancelled(ctx, ord)
	}
	return ord, nil
}

func (s *orderService) UpdatePaymentStatus(ctx context.Context, id primitive.ObjectID, status models.PaymentStatus) (*models.Order, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	fields := map[string]any{"paymentInfo.status": status}
	if status == models.PaymentStatusCompleted {
		fields["paymentInfo.paidAt"] = s.now().UTC()
	}
	ord, err := s.orders.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func (s *orderService) CancelOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	ord, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	if ord.User != userID {
		return nil, ErrForbidden
	}
	if ord.OrderStatus != models.OrderStatusProcessing {
		return nil, ErrOrderNotCancellable
	}

	ord, err = s.orders.UpdateFieldsIfStatus(ctx, id, models.OrderStatusProcessing, map[string]any{
		"orderStatus": models.OrderStatusCancelled,
		"cancelledBy": models.CancelledByUser,
		"cancelledAt": s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if ord == nil {
		// status moved on between the read and the write
		return nil, ErrOrderNotCancellable
	}
	s.log.Info("order cancelled by user", zap.String("order_id", id.Hex()))
	s.publishCancelled(ctx, ord)
	return ord, nil
}
