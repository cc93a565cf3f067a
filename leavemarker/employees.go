package leavemarker

import (
	"context"
	"fmt"
	"net/http"
)

// EmployeeService covers the employee endpoints. Mutations are role-gated
// server-side to admin roles; the client surfaces the server's refusal as a
// normal error.
type EmployeeService struct {
	client *Client
}

func (s *EmployeeService) List(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := s.client.do(ctx, http.MethodGet, "/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EmployeeService) ListActive(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := s.client.do(ctx, http.MethodGet, "/employees/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EmployeeService) ActiveCount(ctx context.Context) (int64, error) {
	var out countPayload
	if err := s.client.do(ctx, http.MethodGet, "/employees/active/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*Employee, error) {
	var out Employee
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/employees/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EmployeeService) Create(ctx context.Context, req EmployeeRequest) (*Employee, error) {
	var out Employee
	if err := s.client.do(ctx, http.MethodPost, "/employees", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uint, req EmployeeRequest) (*Employee, error) {
	var out Employee
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/employees/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Deactivate soft-deletes; the record survives and can be reactivated.
func (s *EmployeeService) Deactivate(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d", id), nil, nil)
}

func (s *EmployeeService) Reactivate(ctx context.Context, id uint) (*Employee, error) {
	var out Employee
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/employees/%d/reactivate", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
