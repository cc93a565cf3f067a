package leavemarker

import (
	"context"
	"fmt"
	"net/http"
)

// LeavePolicyService covers the leave-policy endpoints.
type LeavePolicyService struct {
	client *Client
}

func (s *LeavePolicyService) List(ctx context.Context) ([]LeavePolicy, error) {
	var out []LeavePolicy
	if err := s.client.do(ctx, http.MethodGet, "/leave-policies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LeavePolicyService) ListActive(ctx context.Context) ([]LeavePolicy, error) {
	var out []LeavePolicy
	if err := s.client.do(ctx, http.MethodGet, "/leave-policies/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LeavePolicyService) Get(ctx context.Context, id uint) (*LeavePolicy, error) {
	var out LeavePolicy
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/leave-policies/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LeavePolicyService) Create(ctx context.Context, req LeavePolicyRequest) (*LeavePolicy, error) {
	var out LeavePolicy
	if err := s.client.do(ctx, http.MethodPost, "/leave-policies", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LeavePolicyService) Update(ctx context.Context, id uint, req LeavePolicyRequest) (*LeavePolicy, error) {
	var out LeavePolicy
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/leave-policies/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LeavePolicyService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/leave-policies/%d", id), nil, nil)
}
