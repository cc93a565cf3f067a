package leavemarker

import (
	"context"
	"fmt"
	"net/http"
)

// PaymentService covers the payment endpoints. Card collection itself is
// delegated to the provider's checkout; the client only supplies order
// parameters and relays the provider callback for server-side signature
// verification.
type PaymentService struct {
	client *Client
}

func (s *PaymentService) List(ctx context.Context) ([]Payment, error) {
	var out []Payment
	if err := s.client.do(ctx, http.MethodGet, "/payments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PaymentService) Get(ctx context.Context, id uint) (*Payment, error) {
	var out Payment
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/payments/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Initiate opens a provider order for the plan purchase.
func (s *PaymentService) Initiate(ctx context.Context, req PaymentInitiateRequest) (*PaymentOrder, error) {
	var out PaymentOrder
	if err := s.client.do(ctx, http.MethodPost, "/payments/initiate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Verify relays the provider callback payload; the signature check happens
// server-side.
func (s *PaymentService) Verify(ctx context.Context, req PaymentVerifyRequest) (*Payment, error) {
	var out Payment
	if err := s.client.do(ctx, http.MethodPost, "/payments/verify", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PaymentService) Retry(ctx context.Context, id uint) (*PaymentOrder, error) {
	var out PaymentOrder
	if err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("/payments/%d/retry", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckoutResult is what the provider hands back after the user completes
// checkout.
type CheckoutResult struct {
	OrderID   string
	PaymentID string
	Signature string
}

// CheckoutProvider stands in for the provider's script-injected widget. The
// purchase flow depends only on this interface, never on the widget's
// concrete global object, so tests can substitute a fake.
type CheckoutProvider interface {
	Checkout(ctx context.Context, order PaymentOrder) (*CheckoutResult, error)
}

// PurchaseFlow orchestrates a plan purchase end to end: initiate a provider
// order, run the provider checkout, relay the callback to verify, then
// refresh entitlements so the new tier takes effect immediately.
type PurchaseFlow struct {
	payments     *PaymentService
	provider     CheckoutProvider
	entitlements *EntitlementStore
}

func NewPurchaseFlow(client *Client, provider CheckoutProvider, entitlements *EntitlementStore) *PurchaseFlow {
	return &PurchaseFlow{payments: client.Payments(), provider: provider, entitlements: entitlements}
}

// Purchase buys a plan on the given billing cycle and returns the verified
// payment.
func (f *PurchaseFlow) Purchase(ctx context.Context, planID uint, cycle BillingCycle) (*Payment, error) {
	order, err := f.payments.Initiate(ctx, PaymentInitiateRequest{PlanID: planID, BillingCycle: cycle})
	if err != nil {
		return nil, err
	}
	res, err := f.provider.Checkout(ctx, *order)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	payment, err := f.payments.Verify(ctx, PaymentVerifyRequest{
		RazorpayOrderID:   res.OrderID,
		RazorpayPaymentID: res.PaymentID,
		RazorpaySignature: res.Signature,
	})
	if err != nil {
		return nil, err
	}
	if f.entitlements != nil {
		f.entitlements.Refresh(ctx)
	}
	return payment, nil
}
