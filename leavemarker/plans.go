package leavemarker

import (
	"context"
	"fmt"
	"net/http"
)

// PlanService covers the plan catalog endpoints. Plan CRUD is super-admin
// only server-side.
type PlanService struct {
	client *Client
}

func (s *PlanService) List(ctx context.Context) ([]Plan, error) {
	var out []Plan
	if err := s.client.do(ctx, http.MethodGet, "/plans", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PlanService) ListActive(ctx context.Context) ([]Plan, error) {
	var out []Plan
	if err := s.client.do(ctx, http.MethodGet, "/plans/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PlanService) Get(ctx context.Context, id uint) (*Plan, error) {
	var out Plan
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/plans/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PlanService) Create(ctx context.Context, req PlanRequest) (*Plan, error) {
	var out Plan
	if err := s.client.do(ctx, http.MethodPost, "/plans", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PlanService) Update(ctx context.Context, id uint, req PlanRequest) (*Plan, error) {
	var out Plan
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/plans/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PlanService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/plans/%d", id), nil, nil)
}
