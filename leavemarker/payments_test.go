package leavemarker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
)

type fakeCheckout struct {
	result *CheckoutResult
	err    error
	orders []PaymentOrder
}

func (f *fakeCheckout) Checkout(_ context.Context, order PaymentOrder) (*CheckoutResult, error) {
	f.orders = append(f.orders, order)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestPurchaseFlow(t *testing.T) {
	var verifyBody map[string]string
	featuresCalls := 0
	mux := authedMux(proEntitlement())
	mux.HandleFunc("POST /payments/initiate", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, true, "", map[string]any{
			"orderId": "order_abc", "amount": "999.00", "currency": "INR", "keyId": "rzp_test_key",
		})
	})
	mux.HandleFunc("POST /payments/verify", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &verifyBody); err != nil {
			t.Errorf("verify body not JSON: %v", err)
		}
		respond(w, http.StatusOK, true, "Payment verified", map[string]any{
			"id": 5, "transactionId": "order_abc", "status": "SUCCESS",
		})
	})
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/subscriptions/features" {
			featuresCalls++
		}
		mux.ServeHTTP(w, r)
	})
	c, _ := newTestClient(t, wrapped)
	session := NewSessionStore(c)
	entitlements := NewEntitlementStore(c, session)
	if err := session.Login(context.Background(), "amit@acme.example", "secret"); err != nil {
		t.Fatal(err)
	}
	featuresBefore := featuresCalls

	provider := &fakeCheckout{result: &CheckoutResult{
		OrderID: "order_abc", PaymentID: "pay_123", Signature: "sig_456",
	}}
	flow := NewPurchaseFlow(c, provider, entitlements)

	payment, err := flow.Purchase(context.Background(), 2, BillingCycleMonthly)
	if err != nil {
		t.Fatal(err)
	}
	if payment.Status != PaymentStatusSuccess {
		t.Fatalf("status = %s", payment.Status)
	}
	if len(provider.orders) != 1 || provider.orders[0].OrderID != "order_abc" {
		t.Fatalf("checkout received %+v", provider.orders)
	}
	if verifyBody["razorpayOrderId"] != "order_abc" ||
		verifyBody["razorpayPaymentId"] != "pay_123" ||
		verifyBody["razorpaySignature"] != "sig_456" {
		t.Fatalf("verify payload = %v", verifyBody)
	}
	if featuresCalls != featuresBefore+1 {
		t.Fatalf("purchase must refresh entitlements once, fetches %d -> %d", featuresBefore, featuresCalls)
	}
}

func TestPurchaseAbortsWhenCheckoutDismissed(t *testing.T) {
	verified := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /payments/initiate", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, true, "", map[string]any{"orderId": "order_abc", "amount": "999.00", "currency": "INR"})
	})
	mux.HandleFunc("POST /payments/verify", func(w http.ResponseWriter, r *http.Request) {
		verified = true
		respond(w, http.StatusOK, true, "", nil)
	})
	c, _ := newTestClient(t, mux)

	provider := &fakeCheckout{err: errors.New("checkout dismissed")}
	flow := NewPurchaseFlow(c, provider, nil)

	_, err := flow.Purchase(context.Background(), 2, BillingCycleMonthly)
	if err == nil {
		t.Fatal("expected error")
	}
	if verified {
		t.Fatal("verify must not run when checkout never completed")
	}
}

func TestPurchaseSurfacesVerificationFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /payments/initiate", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, true, "", map[string]any{"orderId": "order_abc", "amount": "999.00", "currency": "INR"})
	})
	mux.HandleFunc("POST /payments/verify", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusBadRequest, false, "Invalid payment signature", nil)
	})
	c, _ := newTestClient(t, mux)

	provider := &fakeCheckout{result: &CheckoutResult{OrderID: "order_abc", PaymentID: "p", Signature: "bad"}}
	flow := NewPurchaseFlow(c, provider, nil)

	_, err := flow.Purchase(context.Background(), 2, BillingCycleMonthly)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := ErrorMessage(err, ""); got != "Invalid payment signature" {
		t.Fatalf("message = %q", got)
	}
}
