package leavemarker

import (
	"context"
	"fmt"
	"net/http"
)

// SubscriptionService covers the subscription endpoints, including the
// features lookup the entitlement store feeds on.
type SubscriptionService struct {
	client *Client
}

func (s *SubscriptionService) Active(ctx context.Context) (*Subscription, error) {
	var out Subscription
	if err := s.client.do(ctx, http.MethodGet, "/subscriptions/active", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SubscriptionService) List(ctx context.Context) ([]Subscription, error) {
	var out []Subscription
	if err := s.client.do(ctx, http.MethodGet, "/subscriptions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Features returns the entitlement snapshot for the caller's company.
func (s *SubscriptionService) Features(ctx context.Context) (*Entitlement, error) {
	var out Entitlement
	if err := s.client.do(ctx, http.MethodGet, "/subscriptions/features", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SubscriptionService) Create(ctx context.Context, req SubscriptionRequest) (*Subscription, error) {
	var out Subscription
	if err := s.client.do(ctx, http.MethodPost, "/subscriptions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SubscriptionService) Update(ctx context.Context, id uint, req SubscriptionRequest) (*Subscription, error) {
	var out Subscription
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/subscriptions/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SubscriptionService) Cancel(ctx context.Context, id uint, reason string) error {
	body := map[string]string{"reason": reason}
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/subscriptions/%d/cancel", id), body, nil)
}
