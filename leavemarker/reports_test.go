package leavemarker

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"
)

func TestReportFilenameSynthesis(t *testing.T) {
	day := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	cases := []struct {
		report ReportType
		format ReportFormat
		want   string
	}{
		{ReportAttendance, ReportFormatExcel, "attendance-report-2026-03-01.xlsx"},
		{ReportAttendance, ReportFormatCSV, "attendance-report-2026-03-01.csv"},
		{ReportLeaveBalance, ReportFormatExcel, "leave-balance-report-2026-03-01.xlsx"},
		{ReportLeaveUsage, ReportFormatCSV, "leave-usage-report-2026-03-01.csv"},
	}
	for _, tc := range cases {
		if got := Filename(tc.report, tc.format, day); got != tc.want {
			t.Fatalf("Filename(%s, %s) = %q, want %q", tc.report, tc.format, got, tc.want)
		}
	}
}

func TestReportDownload(t *testing.T) {
	payload := []byte("PK\x03\x04 fake workbook")
	var gotPath, gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /reports/attendance/excel", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = w.Write(payload)
	})
	c, _ := newTestClient(t, mux)
	c.Reports().now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	file, err := c.Reports().Attendance(context.Background(), ReportFormatExcel, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/reports/attendance/excel" {
		t.Fatalf("path = %s", gotPath)
	}
	if gotQuery != "startDate=2026-02-01&endDate=2026-02-28" {
		t.Fatalf("query = %s", gotQuery)
	}
	if file.Filename != "attendance-report-2026-03-01.xlsx" {
		t.Fatalf("filename = %s", file.Filename)
	}
	if !bytes.Equal(file.Data, payload) {
		t.Fatal("body bytes mangled in transit")
	}
	if file.ContentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("content type = %s", file.ContentType)
	}
}

func TestReportDownloadForbiddenSurfacesError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusForbidden, false, "Advanced reports require an upgraded plan", nil)
	}))

	_, err := c.Reports().LeaveBalance(context.Background(), ReportFormatCSV)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := ErrorMessage(err, ""); got != "Advanced reports require an upgraded plan" {
		t.Fatalf("message = %q", got)
	}
}
