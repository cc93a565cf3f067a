package leavemarker

import (
	"context"
	"fmt"
	"net/http"
)

// LeaveBalanceService covers the per-year leave balance endpoints. Balances
// are computed server-side; the client never accrues locally.
type LeaveBalanceService struct {
	client *Client
}

// MyBalance returns balances for the given year, or the server's current
// year when year is zero.
func (s *LeaveBalanceService) MyBalance(ctx context.Context, year int) ([]LeaveBalance, error) {
	path := "/leave-balance/my-balance"
	if year > 0 {
		path = fmt.Sprintf("%s?year=%d", path, year)
	}
	var out []LeaveBalance
	if err := s.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Initialize seeds balances for all employees for the year (admin only
// server-side).
func (s *LeaveBalanceService) Initialize(ctx context.Context, year int) error {
	path := "/leave-balance/initialize"
	if year > 0 {
		path = fmt.Sprintf("%s?year=%d", path, year)
	}
	return s.client.do(ctx, http.MethodPost, path, nil, nil)
}
