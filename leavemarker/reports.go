package leavemarker

import (
	"context"
	"fmt"
	"time"
)

// ReportFile is a downloaded report ready to hand to the user: the bytes
// plus a suggested filename synthesized from the report type and the day of
// download.
type ReportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportsService downloads binary reports. Access is gated by entitlement
// server-side; the gate on the client is the caller's responsibility.
type ReportsService struct {
	client *Client
	now    func() time.Time
}

func extension(format ReportFormat) string {
	if format == ReportFormatExcel {
		return "xlsx"
	}
	return "csv"
}

// Filename builds `{report-type}-report-{ISO date}.{ext}` for a download
// happening at t.
func Filename(report ReportType, format ReportFormat, t time.Time) string {
	return fmt.Sprintf("%s-report-%s.%s", report, t.Format(dateLayout), extension(format))
}

// LeaveBalance downloads the leave-balance report.
func (s *ReportsService) LeaveBalance(ctx context.Context, format ReportFormat) (*ReportFile, error) {
	path := fmt.Sprintf("/reports/leave-balance/%s", format)
	return s.download(ctx, ReportLeaveBalance, format, path)
}

// Attendance downloads the attendance report for a date range.
func (s *ReportsService) Attendance(ctx context.Context, format ReportFormat, start, end time.Time) (*ReportFile, error) {
	path := fmt.Sprintf("/reports/attendance/%s?startDate=%s&endDate=%s",
		format, start.Format(dateLayout), end.Format(dateLayout))
	return s.download(ctx, ReportAttendance, format, path)
}

// LeaveUsage downloads the leave-usage report for a date range.
func (s *ReportsService) LeaveUsage(ctx context.Context, format ReportFormat, start, end time.Time) (*ReportFile, error) {
	path := fmt.Sprintf("/reports/leave-usage/%s?startDate=%s&endDate=%s",
		format, start.Format(dateLayout), end.Format(dateLayout))
	return s.download(ctx, ReportLeaveUsage, format, path)
}

func (s *ReportsService) download(ctx context.Context, report ReportType, format ReportFormat, path string) (*ReportFile, error) {
	data, contentType, err := s.client.raw(ctx, path)
	if err != nil {
		return nil, err
	}
	return &ReportFile{
		Filename:    Filename(report, format, s.now()),
		ContentType: contentType,
		Data:        data,
	}, nil
}
