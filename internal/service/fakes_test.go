package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func userCtx(id primitive.ObjectID) context.Context {
	return service.WithIdentity(context.Background(), id, models.RoleUser)
}

func adminCtx() context.Context {
	return service.WithIdentity(context.Background(), primitive.NewObjectID(), models.RoleAdmin)
}

// ---- users ----

type memUsers struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[primitive.ObjectID]*models.User{}}
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.Addresses = append([]models.Address(nil), u.Addresses...)
	cp.Wishlist = append([]primitive.ObjectID(nil), u.Wishlist...)
	return &cp
}

// add stores a user directly and returns its id.
func (m *memUsers) add(u models.User) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	m.byID[u.ID] = &u
	return u.ID
}

func (m *memUsers) get(id primitive.ObjectID) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		return copyUser(u)
	}
	return nil
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == strings.ToLower(u.Email) {
			return repository.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.byID[u.ID] = copyUser(u)
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return m.get(id), nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.byID {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (m *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := m.GetByEmail(ctx, email)
	return u != nil, err
}

func (m *memUsers) BatchGetByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, id := range ids {
		if u, ok := m.byID[id]; ok {
			out = append(out, *copyUser(u))
		}
	}
	return out, nil
}

func (m *memUsers) UpdateProfile(_ context.Context, id primitive.ObjectID, fields map[string]any) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "phone":
			u.Phone = v.(string)
		case "avatar":
			u.Avatar = v.(string)
		case "addresses":
			u.Addresses = v.([]models.Address)
		}
	}
	return copyUser(u), nil
}

func (m *memUsers) AddAddress(_ context.Context, id primitive.ObjectID, addr models.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		u.Addresses = append(u.Addresses, addr)
	}
	return nil
}

func (m *memUsers) AddToWishlist(_ context.Context, id, productID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil
	}
	for _, w := range u.Wishlist {
		if w == productID {
			return nil
		}
	}
	u.Wishlist = append(u.Wishlist, productID)
	return nil
}

func (m *memUsers) RemoveFromWishlist(_ context.Context, id, productID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil
	}
	kept := u.Wishlist[:0]
	for _, w := range u.Wishlist {
		if w != productID {
			kept = append(kept, w)
		}
	}
	u.Wishlist = kept
	return nil
}

func (m *memUsers) SetResetToken(_ context.Context, id primitive.ObjectID, hash string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		u.ResetPasswordToken = hash
		u.ResetPasswordExpire = &expiresAt
	}
	return nil
}

func (m *memUsers) ClearResetToken(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		u.ResetPasswordToken = ""
		u.ResetPasswordExpire = nil
	}
	return nil
}

func (m *memUsers) GetByResetToken(_ context.Context, hash string, now time.Time) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.ResetPasswordToken == hash && u.ResetPasswordExpire != nil && u.ResetPasswordExpire.After(now) {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (m *memUsers) UpdatePassword(_ context.Context, id primitive.ObjectID, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		u.Password = hash
		u.ResetPasswordToken = ""
		u.ResetPasswordExpire = nil
	}
	return nil
}

func (m *memUsers) PurgeExpiredResetTokens(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, u := range m.byID {
		if u.ResetPasswordExpire != nil && !u.ResetPasswordExpire.After(now) {
			u.ResetPasswordToken = ""
			u.ResetPasswordExpire = nil
			n++
		}
	}
	return n, nil
}

// ---- products ----

type memProducts struct {
	mu            sync.Mutex
	byID          map[primitive.ObjectID]*models.Product
	featuredCalls int
	// refuse makes the guarded decrement report no match for the product,
	// as if a concurrent order took the stock first.
	refuse map[primitive.ObjectID]bool
}

func newMemProducts() *memProducts {
	return &memProducts{
		byID:   map[primitive.ObjectID]*models.Product{},
		refuse: map[primitive.ObjectID]bool{},
	}
}

func copyProduct(p *models.Product) *models.Product {
	cp := *p
	cp.Reviews = append([]models.Review(nil), p.Reviews...)
	return &cp
}

func (m *memProducts) add(p models.Product) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Category == "" {
		p.Category = models.CategoryOther
	}
	m.byID[p.ID] = &p
	return p.ID
}

func (m *memProducts) stock(id primitive.ObjectID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[id].Stock
}

func (m *memProducts) Create(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	m.byID[p.ID] = copyProduct(p)
	return nil
}

func (m *memProducts) InsertMany(ctx context.Context, ps []models.Product) error {
	for i := range ps {
		if err := m.Create(ctx, &ps[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.byID[id]; ok {
		return copyProduct(p), nil
	}
	return nil, nil
}

func (m *memProducts) BatchGetByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Product{}
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			out = append(out, *copyProduct(p))
		}
	}
	return out, nil
}

func (m *memProducts) List(_ context.Context, f repository.ProductListFilter) ([]models.Product, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []models.Product
	for _, p := range m.byID {
		if f.Category != "" && string(p.Category) != f.Category {
			continue
		}
		all = append(all, *copyProduct(p))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID.Hex() < all[j].ID.Hex() })
	total := int64(len(all))
	if f.Offset >= len(all) {
		return []models.Product{}, total, nil
	}
	all = all[f.Offset:]
	if f.Limit > 0 && f.Limit < len(all) {
		all = all[:f.Limit]
	}
	return all, total, nil
}

func (m *memProducts) Featured(_ context.Context, limit int) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.featuredCalls++
	out := []models.Product{}
	for _, p := range m.byID {
		if p.IsFeatured && len(out) < limit {
			out = append(out, *copyProduct(p))
		}
	}
	return out, nil
}

func (m *memProducts) UpdateFields(_ context.Context, id primitive.ObjectID, fields map[string]any) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "description":
			p.Description = v.(string)
		case "price":
			p.Price = v.(float64)
		case "category":
			p.Category = v.(models.Category)
		case "brand":
			p.Brand = v.(string)
		case "stock":
			p.Stock = v.(int)
		case "images":
			p.Images = v.([]string)
		case "isFeatured":
			p.IsFeatured = v.(bool)
		case "specifications":
			p.Specifications = v.(map[string]string)
		}
	}
	return copyProduct(p), nil
}

func (m *memProducts) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

func (m *memProducts) DecrementStock(_ context.Context, id primitive.ObjectID, qty int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok || m.refuse[id] || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (m *memProducts) IncrementStock(_ context.Context, id primitive.ObjectID, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.byID[id]; ok {
		p.Stock += qty
	}
	return nil
}

func (m *memProducts) PushReview(_ context.Context, id primitive.ObjectID, review models.Review) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok || p.HasReviewBy(review.User) {
		return false, nil
	}
	p.Reviews = append(p.Reviews, review)
	sum := 0
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	p.Ratings = models.Ratings{Average: float64(sum) / float64(len(p.Reviews)), Count: len(p.Reviews)}
	return true, nil
}

func (m *memProducts) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byID)), nil
}

// ---- carts ----

type memCarts struct {
	mu     sync.Mutex
	byUser map[primitive.ObjectID]*models.Cart
}

func newMemCarts() *memCarts {
	return &memCarts{byUser: map[primitive.ObjectID]*models.Cart{}}
}

func copyCart(c *models.Cart) *models.Cart {
	cp := *c
	cp.Items = append([]models.CartItem{}, c.Items...)
	return &cp
}

// put stores a cart for the user with derived totals.
func (m *memCarts) put(userID primitive.ObjectID, items ...models.CartItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := &models.Cart{ID: primitive.NewObjectID(), User: userID, Items: items, UpdatedAt: time.Now()}
	for i := range c.Items {
		if c.Items[i].ID.IsZero() {
			c.Items[i].ID = primitive.NewObjectID()
		}
	}
	c.Recalculate()
	m.byUser[userID] = c
}

func (m *memCarts) get(userID primitive.ObjectID) *models.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.byUser[userID]; ok {
		return copyCart(c)
	}
	return nil
}

func (m *memCarts) GetByUser(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	return m.get(userID), nil
}

func (m *memCarts) Create(_ context.Context, c *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byUser[c.User]; ok {
		return repository.ErrDuplicate
	}
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.byUser[c.User] = copyCart(c)
	return nil
}

func (m *memCarts) Save(_ context.Context, c *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.UpdatedAt = time.Now()
	m.byUser[c.User] = copyCart(c)
	return nil
}

func (m *memCarts) ClearItems(_ context.Context, userID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.byUser[userID]; ok {
		c.Items = []models.CartItem{}
		c.TotalPrice = 0
		c.TotalItems = 0
	}
	return nil
}

func (m *memCarts) List(_ context.Context) ([]models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Cart{}
	for _, c := range m.byUser {
		out = append(out, *copyCart(c))
	}
	return out, nil
}

func (m *memCarts) CountNonEmpty(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, c := range m.byUser {
		if len(c.Items) > 0 {
			n++
		}
	}
	return n, nil
}

func (m *memCarts) DeleteEmptyBefore(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for uid, c := range m.byUser {
		if len(c.Items) == 0 && c.UpdatedAt.Before(cutoff) {
			delete(m.byUser, uid)
			n++
		}
	}
	return n, nil
}

// ---- orders ----

type memOrders struct {
	mu    sync.Mutex
	byID  map[primitive.ObjectID]*models.Order
	order []primitive.ObjectID
	// beforeCreate runs once, ahead of the next Create, outside the lock.
	beforeCreate func()
}

func newMemOrders() *memOrders {
	return &memOrders{byID: map[primitive.ObjectID]*models.Order{}}
}

func copyOrder(o *models.Order) *models.Order {
	cp := *o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	return &cp
}

func (m *memOrders) all() []models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *copyOrder(m.byID[id]))
	}
	return out
}

func (m *memOrders) Create(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	hook := m.beforeCreate
	m.beforeCreate = nil
	m.mu.Unlock()
	if hook != nil {
		hook()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if tx := o.PaymentInfo.TransactionID; tx != "" {
		for _, existing := range m.byID {
			if existing.PaymentInfo.TransactionID == tx {
				return repository.ErrDuplicate
			}
		}
	}
	o.ID = primitive.NewObjectID()
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	m.byID[o.ID] = copyOrder(o)
	m.order = append(m.order, o.ID)
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.byID[id]; ok {
		return copyOrder(o), nil
	}
	return nil, nil
}

func (m *memOrders) GetByTransactionID(_ context.Context, txID string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.byID {
		if o.PaymentInfo.TransactionID == txID {
			return copyOrder(o), nil
		}
	}
	return nil, nil
}

func (m *memOrders) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	out := []models.Order{}
	all := m.all()
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].User == userID {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (m *memOrders) List(_ context.Context, f repository.OrderListFilter) ([]models.Order, int64, error) {
	var matched []models.Order
	all := m.all()
	for i := len(all) - 1; i >= 0; i-- {
		o := all[i]
		if f.Status != nil && o.OrderStatus != *f.Status {
			continue
		}
		if f.UserID != nil && o.User != *f.UserID {
			continue
		}
		matched = append(matched, o)
	}
	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []models.Order{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

func applyOrderFields(o *models.Order, fields map[string]any) {
	at := func(v any) *time.Time {
		t := v.(time.Time)
		return &t
	}
	for k, v := range fields {
		switch k {
		case "orderStatus":
			o.OrderStatus = v.(models.OrderStatus)
		case "cancelledBy":
			o.CancelledBy = v.(models.CancelActor)
		case "shippedAt":
			o.ShippedAt = at(v)
		case "outForDeliveryAt":
			o.OutForDeliveryAt = at(v)
		case "deliveredAt":
			o.DeliveredAt = at(v)
		case "cancelledAt":
			o.CancelledAt = at(v)
		case "paymentInfo.status":
			o.PaymentInfo.Status = v.(models.PaymentStatus)
		case "paymentInfo.paidAt":
			o.PaymentInfo.PaidAt = at(v)
		default:
			panic(fmt.Sprintf("unexpected order field %q", k))
		}
	}
}

func (m *memOrders) UpdateFields(_ context.Context, id primitive.ObjectID, fields map[string]any) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	applyOrderFields(o, fields)
	return copyOrder(o), nil
}

func (m *memOrders) UpdateFieldsIfStatus(_ context.Context, id primitive.ObjectID, from models.OrderStatus, fields map[string]any) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.byID[id]
	if !ok || o.OrderStatus != from {
		return nil, nil
	}
	applyOrderFields(o, fields)
	return copyOrder(o), nil
}

func (m *memOrders) Count(_ context.Context) (int64, error) {
	return int64(len(m.all())), nil
}

func (m *memOrders) Revenue(_ context.Context) (float64, error) {
	var sum float64
	for _, o := range m.all() {
		if o.OrderStatus != models.OrderStatusCancelled {
			sum += o.TotalPrice
		}
	}
	return sum, nil
}

// ---- side channels ----

type fakeGateway struct {
	mu        sync.Mutex
	sessions  map[string]*service.CheckoutSession
	requests  []service.CheckoutSessionRequest
	createErr error

	intentAmounts []int64

	event      *service.WebhookEvent
	webhookErr error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: map[string]*service.CheckoutSession{}}
}

// paid registers a completed session as the provider would report it.
func (g *fakeGateway) paid(id, intent string, meta map[string]string) *service.CheckoutSession {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := &service.CheckoutSession{ID: id, Paid: true, PaymentIntentID: intent, Metadata: meta}
	g.sessions[id] = s
	return s
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, req service.CheckoutSessionRequest) (*service.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.requests = append(g.requests, req)
	id := fmt.Sprintf("cs_test_%d", len(g.requests))
	s := &service.CheckoutSession{ID: id, URL: "https://checkout.test/" + id, Metadata: req.Metadata}
	g.sessions[id] = s
	return s, nil
}

func (g *fakeGateway) GetCheckoutSession(_ context.Context, id string) (*service.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[id]
	if !ok {
		return nil, errors.New("No such checkout.session: " + id)
	}
	cp := *s
	return &cp, nil
}

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, amount int64, _ string, _ map[string]string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.intentAmounts = append(g.intentAmounts, amount)
	return "pi_secret_test", nil
}

func (g *fakeGateway) ParseWebhook(_ []byte, _ string) (*service.WebhookEvent, error) {
	if g.webhookErr != nil {
		return nil, g.webhookErr
	}
	return g.event, nil
}

type fakeEvents struct {
	mu        sync.Mutex
	created   []service.OrderCreatedEvent
	cancelled []service.OrderCancelledEvent
}

func (e *fakeEvents) PublishOrderCreated(_ context.Context, ev service.OrderCreatedEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.created = append(e.created, ev)
	return nil
}

func (e *fakeEvents) PublishOrderCancelled(_ context.Context, ev service.OrderCancelledEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelled = append(e.cancelled, ev)
	return nil
}

type fakeCache struct {
	mu     sync.Mutex
	data   map[string]string
	limits map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}, limits: map[string]bool{}}
}

func (c *fakeCache) SetRateLimit(_ context.Context, key string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.limits[key] = true
	return nil
}

func (c *fakeCache) CheckRateLimit(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.limits[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	default:
		c.data[key] = fmt.Sprint(v)
	}
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return v, nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

type fakeEmail struct {
	sent []service.EmailMessage
	err  error
}

func (e *fakeEmail) SendEmail(_ context.Context, _ string, msg service.EmailMessage) error {
	if e.err != nil {
		return e.err
	}
	e.sent = append(e.sent, msg)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) bool { return hash == "hashed:"+password }

type fakeTokens struct{}

func (fakeTokens) SignAccess(_ context.Context, sub primitive.ObjectID, role models.Role, ttl time.Duration) (string, time.Time, error) {
	return "token-" + sub.Hex() + "-" + string(role), time.Now().Add(ttl), nil
}

func (fakeTokens) ParseAndValidateAccess(_ context.Context, _ string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}
