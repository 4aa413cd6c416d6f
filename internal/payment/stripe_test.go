package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"storefront/internal/service"
)

func sign(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

const completedEvent = `{
  "id": "evt_1",
  "object": "event",
  "type": "checkout.session.completed",
  "data": {
    "object": {
      "id": "cs_test_1",
      "object": "checkout.session",
      "payment_status": "paid",
      "payment_intent": "pi_123",
      "url": null,
      "metadata": {"userId": "64b7f0c2a1b2c3d4e5f60718", "items": "[]"}
    }
  }
}`

func TestParseWebhook_CheckoutCompleted(t *testing.T) {
	payload := []byte(completedEvent)
	ev, err := parseWebhook(payload, sign(payload, "whsec_test", time.Now()), "whsec_test")
	if err != nil {
		t.Fatalf("parseWebhook: %v", err)
	}
	if ev.Type != service.EventCheckoutSessionCompleted || ev.Session == nil {
		t.Fatalf("event = %+v", ev)
	}
	if !ev.Session.Paid || ev.Session.PaymentIntentID != "pi_123" || ev.Session.ID != "cs_test_1" {
		t.Fatalf("session = %+v", ev.Session)
	}
	if ev.Session.Metadata["userId"] != "64b7f0c2a1b2c3d4e5f60718" {
		t.Fatalf("metadata = %v", ev.Session.Metadata)
	}
}

func TestParseWebhook_BadSignature(t *testing.T) {
	payload := []byte(completedEvent)
	if _, err := parseWebhook(payload, sign(payload, "wrong", time.Now()), "whsec_test"); err == nil {
		t.Fatal("expected signature error")
	}
	if _, err := parseWebhook(payload, "", "whsec_test"); err == nil {
		t.Fatal("expected error for missing signature")
	}
}

func TestParseWebhook_OtherEventHasNoSession(t *testing.T) {
	payload := []byte(`{"id":"evt_2","object":"event","type":"payment_intent.created","data":{"object":{"id":"pi_1","object":"payment_intent"}}}`)
	ev, err := parseWebhook(payload, sign(payload, "whsec_test", time.Now()), "whsec_test")
	if err != nil {
		t.Fatalf("parseWebhook: %v", err)
	}
	if ev.Session != nil || ev.Type != "payment_intent.created" {
		t.Fatalf("event = %+v", ev)
	}
}
