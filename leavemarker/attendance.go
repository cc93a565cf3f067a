package leavemarker

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const punchTimeLayout = "15:04:05"

// AttendanceService covers the punch, correction and analytics endpoints.
// Punch-in and punch-out share one endpoint, differing only in the IsPunchIn
// flag and the work type.
type AttendanceService struct {
	client *Client
	now    func() time.Time
}

// PunchIn records a clock-in for today at the given work type.
func (s *AttendanceService) PunchIn(ctx context.Context, workType WorkType) (*Attendance, error) {
	return s.punch(ctx, true, &workType)
}

// PunchOut records a clock-out for today; the work type rides as null.
func (s *AttendanceService) PunchOut(ctx context.Context) (*Attendance, error) {
	return s.punch(ctx, false, nil)
}

func (s *AttendanceService) punch(ctx context.Context, in bool, workType *WorkType) (*Attendance, error) {
	now := s.now()
	req := punchRequest{
		Date:      now.Format(dateLayout),
		PunchTime: now.Format(punchTimeLayout),
		IsPunchIn: in,
		WorkType:  workType,
	}
	var out Attendance
	if err := s.client.do(ctx, http.MethodPost, "/attendance/punch", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AttendanceService) Today(ctx context.Context) (*Attendance, error) {
	var out Attendance
	if err := s.client.do(ctx, http.MethodGet, "/attendance/today", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AttendanceService) MyAttendance(ctx context.Context) ([]Attendance, error) {
	var out []Attendance
	if err := s.client.do(ctx, http.MethodGet, "/attendance/my-attendance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AttendanceService) MyAttendanceRange(ctx context.Context, start, end time.Time) ([]Attendance, error) {
	var out []Attendance
	path := fmt.Sprintf("/attendance/my-attendance/date-range?startDate=%s&endDate=%s",
		start.Format(dateLayout), end.Format(dateLayout))
	if err := s.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyAttendanceRate returns the server-computed rate; year and month are
// optional (zero means the server default).
func (s *AttendanceService) MyAttendanceRate(ctx context.Context, year, month int) (*AttendanceRate, error) {
	q := url.Values{}
	if year > 0 {
		q.Set("year", fmt.Sprintf("%d", year))
	}
	if month > 0 {
		q.Set("month", fmt.Sprintf("%d", month))
	}
	path := "/attendance/my-attendance/rate"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	var out AttendanceRate
	if err := s.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompanyRange lists company-wide attendance (admin views).
func (s *AttendanceService) CompanyRange(ctx context.Context, start, end time.Time) ([]Attendance, error) {
	var out []Attendance
	path := fmt.Sprintf("/attendance/date-range?startDate=%s&endDate=%s",
		start.Format(dateLayout), end.Format(dateLayout))
	if err := s.client.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RequestCorrection files an amendment against a recorded punch.
func (s *AttendanceService) RequestCorrection(ctx context.Context, attendanceID uint, req AttendanceCorrectionRequest) (*Attendance, error) {
	var out Attendance
	path := fmt.Sprintf("/attendance/%d/request-correction", attendanceID)
	if err := s.client.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AttendanceService) ApproveCorrection(ctx context.Context, correctionID uint) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/attendance/corrections/%d/approve", correctionID), nil, nil)
}

func (s *AttendanceService) RejectCorrection(ctx context.Context, correctionID uint) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/attendance/corrections/%d/reject", correctionID), nil, nil)
}

func (s *AttendanceService) PendingCorrections(ctx context.Context) ([]Attendance, error) {
	var out []Attendance
	if err := s.client.do(ctx, http.MethodGet, "/attendance/corrections/pending", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Mark records attendance on an employee's behalf (HR only server-side).
func (s *AttendanceService) Mark(ctx context.Context, req AttendanceMarkRequest) (*Attendance, error) {
	var out Attendance
	if err := s.client.do(ctx, http.MethodPost, "/attendance/mark", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
