package leavemarker

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const dateLayout = "2006-01-02"

// HolidayService covers the holiday-calendar endpoints.
type HolidayService struct {
	client *Client
}

func (s *HolidayService) List(ctx context.Context) ([]Holiday, error) {
	var out []Holiday
	if err := s.client.do(ctx, http.MethodGet, "/holidays", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HolidayService) ListActive(ctx context.Context) ([]Holiday, error) {
	var out []Holiday
	if err := s.client.do(ctx, http.MethodGet, "/holidays/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HolidayService) DateRange(ctx context.Context, start, end time.Time) ([]Holiday, error) {
	var out []Holiday
	path := fmt.Sprintf("/holidays/date-range?startDate=%s&endDate=%s",
		start.Format(dateLayout), end.Format(dateLayout))
	if err := s.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HolidayService) Create(ctx context.Context, req HolidayRequest) (*Holiday, error) {
	var out Holiday
	if err := s.client.do(ctx, http.MethodPost, "/holidays", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *HolidayService) Update(ctx context.Context, id uint, req HolidayRequest) (*Holiday, error) {
	var out Holiday
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/holidays/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *HolidayService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/holidays/%d", id), nil, nil)
}
