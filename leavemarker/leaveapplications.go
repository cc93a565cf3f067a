package leavemarker

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// LeaveApplicationService covers the leave application and two-step
// (manager then HR) approval endpoints.
type LeaveApplicationService struct {
	client *Client
}

func (s *LeaveApplicationService) Apply(ctx context.Context, req LeaveApplicationRequest) (*LeaveApplication, error) {
	var out LeaveApplication
	if err := s.client.do(ctx, http.MethodPost, "/leave-applications", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LeaveApplicationService) MyLeaves(ctx context.Context) ([]LeaveApplication, error) {
	var out []LeaveApplication
	if err := s.client.do(ctx, http.MethodGet, "/leave-applications/my-leaves", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LeaveApplicationService) MyPendingCount(ctx context.Context) (int64, error) {
	var out countPayload
	if err := s.client.do(ctx, http.MethodGet, "/leave-applications/my-leaves/pending/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (s *LeaveApplicationService) Get(ctx context.Context, id uint) (*LeaveApplication, error) {
	var out LeaveApplication
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/leave-applications/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LeaveApplicationService) PendingManagerApprovals(ctx context.Context) ([]LeaveApplication, error) {
	var out []LeaveApplication
	if err := s.client.do(ctx, http.MethodGet, "/leave-applications/pending-approvals/manager", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LeaveApplicationService) PendingHRApprovals(ctx context.Context) ([]LeaveApplication, error) {
	var out []LeaveApplication
	if err := s.client.do(ctx, http.MethodGet, "/leave-applications/pending-approvals/hr", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LeaveApplicationService) DateRange(ctx context.Context, start, end time.Time) ([]LeaveApplication, error) {
	var out []LeaveApplication
	path := fmt.Sprintf("/leave-applications/date-range?startDate=%s&endDate=%s",
		start.Format(dateLayout), end.Format(dateLayout))
	if err := s.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ManagerApprove approves as manager; reason rides as null.
func (s *LeaveApplicationService) ManagerApprove(ctx context.Context, id uint) (*LeaveApplication, error) {
	return s.approve(ctx, id, "manager", approvalRequest{Approved: true})
}

// ManagerReject rejects as manager with a comment.
func (s *LeaveApplicationService) ManagerReject(ctx context.Context, id uint, reason string) (*LeaveApplication, error) {
	return s.approve(ctx, id, "manager", approvalRequest{Approved: false, Reason: &reason})
}

// HRApprove approves as HR, the second approval step.
func (s *LeaveApplicationService) HRApprove(ctx context.Context, id uint) (*LeaveApplication, error) {
	return s.approve(ctx, id, "hr", approvalRequest{Approved: true})
}

// HRReject rejects as HR with a comment.
func (s *LeaveApplicationService) HRReject(ctx context.Context, id uint, reason string) (*LeaveApplication, error) {
	return s.approve(ctx, id, "hr", approvalRequest{Approved: false, Reason: &reason})
}

func (s *LeaveApplicationService) approve(ctx context.Context, id uint, step string, req approvalRequest) (*LeaveApplication, error) {
	var out LeaveApplication
	path := fmt.Sprintf("/leave-applications/%d/approve/%s", id, step)
	if err := s.client.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *LeaveApplicationService) Cancel(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/leave-applications/%d/cancel", id), nil, nil)
}
