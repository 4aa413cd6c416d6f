package payment

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"storefront/internal/service"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// stripeBackend records the form of every request and answers with a canned body per path.
type stripeBackend struct {
	mu        sync.Mutex
	forms     map[string]url.Values
	responses map[string]string
}

func (b *stripeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	form, _ := url.ParseQuery(string(body))
	key := r.Method + " " + r.URL.Path
	b.mu.Lock()
	b.forms[key] = form
	resp, ok := b.responses[key]
	b.mu.Unlock()
	if !ok {
		http.Error(w, `{"error":{"type":"invalid_request_error","message":"unexpected path"}}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, resp)
}

func (b *stripeBackend) form(t *testing.T, key string) url.Values {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	f, ok := b.forms[key]
	if !ok {
		t.Fatalf("no request to %s", key)
	}
	return f
}

func newTestGateway(t *testing.T, responses map[string]string) (*StripeGateway, *stripeBackend) {
	t.Helper()
	backend := &stripeBackend{forms: map[string]url.Values{}, responses: responses}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	api := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient:        srv.Client(),
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	sc := client.New("sk_test_123", &stripe.Backends{API: api, Connect: api, Uploads: api})
	return newStripeGateway(sc, "whsec_test", zap.NewNop()), backend
}

func expectForm(t *testing.T, form url.Values, want map[string]string) {
	t.Helper()
	for k, v := range want {
		if got := form.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	g, backend := newTestGateway(t, map[string]string{
		"POST /v1/checkout/sessions": `{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.test/cs_test_1","payment_status":"unpaid"}`,
	})

	sess, err := g.CreateCheckoutSession(context.Background(), service.CheckoutSessionRequest{
		LineItems: []service.CheckoutLineItem{
			{Name: "Desk", Description: "Oak desk", Image: "https://img.test/desk.png", UnitAmount: 25000, Quantity: 2},
			{Name: "Pen", UnitAmount: 199, Quantity: 1},
		},
		Currency:          "inr",
		SuccessURL:        "http://shop.test/order-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         "http://shop.test/cart",
		CustomerEmail:     "jane@example.com",
		ClientReferenceID: "64b7f0c2a1b2c3d4e5f60718",
		Metadata:          map[string]string{"userId": "64b7f0c2a1b2c3d4e5f60718", "items": "[]"},
		Shipping: &service.CheckoutShipping{
			Name:       "Jane",
			Phone:      "555-0100",
			Line1:      "1 Main St",
			City:       "Pune",
			State:      "MH",
			PostalCode: "411001",
			Country:    "India",
		},
	})
	if err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if sess.ID != "cs_test_1" || sess.URL != "https://checkout.stripe.test/cs_test_1" || sess.Paid {
		t.Fatalf("session = %+v", sess)
	}

	expectForm(t, backend.form(t, "POST /v1/checkout/sessions"), map[string]string{
		"mode":                    "payment",
		"payment_method_types[0]": "card",
		"success_url":             "http://shop.test/order-success?session_id={CHECKOUT_SESSION_ID}",
		"cancel_url":              "http://shop.test/cart",
		"customer_email":          "jane@example.com",
		"client_reference_id":     "64b7f0c2a1b2c3d4e5f60718",

		"line_items[0][quantity]":                              "2",
		"line_items[0][price_data][currency]":                  "inr",
		"line_items[0][price_data][unit_amount]":               "25000",
		"line_items[0][price_data][product_data][name]":        "Desk",
		"line_items[0][price_data][product_data][description]": "Oak desk",
		"line_items[0][price_data][product_data][images][0]":   "https://img.test/desk.png",
		"line_items[1][quantity]":                              "1",
		"line_items[1][price_data][unit_amount]":               "199",
		"line_items[1][price_data][product_data][name]":        "Pen",

		"metadata[userId]":                      "64b7f0c2a1b2c3d4e5f60718",
		"metadata[items]":                       "[]",
		"payment_intent_data[metadata][userId]": "64b7f0c2a1b2c3d4e5f60718",

		"payment_intent_data[shipping][name]":                 "Jane",
		"payment_intent_data[shipping][phone]":                "555-0100",
		"payment_intent_data[shipping][address][line1]":       "1 Main St",
		"payment_intent_data[shipping][address][city]":        "Pune",
		"payment_intent_data[shipping][address][state]":       "MH",
		"payment_intent_data[shipping][address][postal_code]": "411001",
		"payment_intent_data[shipping][address][country]":     "IN",
	})
}

func TestStripeGateway_CheckoutWithoutShipping(t *testing.T) {
	g, backend := newTestGateway(t, map[string]string{
		"POST /v1/checkout/sessions": `{"id":"cs_test_2","object":"checkout.session","url":"https://checkout.stripe.test/cs_test_2"}`,
	})
	if _, err := g.CreateCheckoutSession(context.Background(), service.CheckoutSessionRequest{
		LineItems: []service.CheckoutLineItem{{Name: "Pen", UnitAmount: 199, Quantity: 1}},
		Currency:  "inr",
	}); err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	form := backend.form(t, "POST /v1/checkout/sessions")
	for _, k := range []string{"payment_intent_data[shipping][name]", "customer_email", "line_items[0][price_data][product_data][images][0]"} {
		if form.Has(k) {
			t.Errorf("unexpected field %s=%q", k, form.Get(k))
		}
	}
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	g, backend := newTestGateway(t, map[string]string{
		"POST /v1/payment_intents": `{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret_abc"}`,
	})
	secret, err := g.CreatePaymentIntent(context.Background(), 1234, "inr", map[string]string{"userId": "u1"})
	if err != nil {
		t.Fatalf("CreatePaymentIntent: %v", err)
	}
	if secret != "pi_1_secret_abc" {
		t.Fatalf("secret = %q", secret)
	}
	expectForm(t, backend.form(t, "POST /v1/payment_intents"), map[string]string{
		"amount":                             "1234",
		"currency":                           "inr",
		"automatic_payment_methods[enabled]": "true",
		"metadata[userId]":                   "u1",
	})
}

func TestStripeGateway_GetCheckoutSession(t *testing.T) {
	g, _ := newTestGateway(t, map[string]string{
		"GET /v1/checkout/sessions/cs_test_9": `{"id":"cs_test_9","object":"checkout.session","payment_status":"paid","payment_intent":"pi_9","metadata":{"userId":"u9"}}`,
	})
	sess, err := g.GetCheckoutSession(context.Background(), "cs_test_9")
	if err != nil {
		t.Fatalf("GetCheckoutSession: %v", err)
	}
	if !sess.Paid || sess.PaymentIntentID != "pi_9" || sess.Metadata["userId"] != "u9" {
		t.Fatalf("session = %+v", sess)
	}
}

func TestStripeGateway_UpstreamError(t *testing.T) {
	g, _ := newTestGateway(t, map[string]string{})
	if _, err := g.CreatePaymentIntent(context.Background(), 100, "inr", nil); err == nil {
		t.Fatal("expected error from provider")
	}
}

func TestCountryCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"India", "IN"},
		{" india ", "IN"},
		{"USA", "US"},
		{"United States", "US"},
		{"United Kingdom", "GB"},
		{"in", "IN"},
		{"DE", "DE"},
		{"", "IN"},
		{"N/A", "IN"},
		{"Atlantis", "IN"},
		{"1A", "IN"},
	}
	for _, tt := range tests {
		if got := countryCode(tt.in); got != tt.want {
			t.Errorf("countryCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
