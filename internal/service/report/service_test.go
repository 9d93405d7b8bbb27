package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCalendarProvider struct {
	gotFilter attendance.CalendarFilter
	response  attendance.CalendarResponse
	err       error
}

func (s *stubCalendarProvider) GetCalendar(_ context.Context, filter attendance.CalendarFilter) (attendance.CalendarResponse, error) {
	s.gotFilter = filter
	return s.response, s.err
}

func juneCalendar() attendance.CalendarResponse {
	return attendance.CalendarResponse{
		EmployeeID:   "emp-1",
		EmployeeName: "Priya Sharma",
		StartDate:    "2025-06-02",
		EndDate:      "2025-06-08",
		Days: []attendance.CalendarDay{
			day(2025, time.June, 2, attendance.StatusPresent),
			day(2025, time.June, 3, attendance.StatusPresent),
			day(2025, time.June, 4, attendance.StatusLate),
			day(2025, time.June, 5, attendance.StatusAbsent),
			day(2025, time.June, 6, attendance.StatusPresent),
			day(2025, time.June, 7, attendance.StatusLeave),
			day(2025, time.June, 8, attendance.StatusOff),
		},
	}
}

func juneFilter() attendance.CalendarFilter {
	return attendance.CalendarFilter{
		EmployeeID: "emp-1",
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-08",
	}
}

func TestReportService_GetStatistics(t *testing.T) {
	t.Parallel()

	provider := &stubCalendarProvider{response: juneCalendar()}
	svc := NewReportService(provider)

	stats, err := svc.GetStatistics(context.Background(), juneFilter())
	require.NoError(t, err)

	assert.Equal(t, "asc", provider.gotFilter.SortOrder)
	assert.Equal(t, "emp-1", stats.EmployeeID)
	assert.Equal(t, "Priya Sharma", stats.EmployeeName)

	assert.Equal(t, 7, stats.Summary.Total)
	assert.Equal(t, 3, stats.Summary.Present)
	assert.Equal(t, 1, stats.Summary.Late)
	assert.Equal(t, 1, stats.Summary.Leave)
	assert.Equal(t, 1, stats.Summary.Off)
	assert.Equal(t, 42.86, stats.Summary.AttendanceRate)

	// Sunday is off, so six weekday buckets and one June bucket
	assert.Len(t, stats.WeeklyPattern, 6)
	require.Len(t, stats.MonthlyTrend, 1)
	assert.Equal(t, "Jun 2025", stats.MonthlyTrend[0].Month)
	assert.Equal(t, 6, stats.MonthlyTrend[0].Total)
}

func TestReportService_ExportCSV(t *testing.T) {
	t.Parallel()

	provider := &stubCalendarProvider{response: juneCalendar()}
	svc := NewReportService(provider)

	file, err := svc.ExportCSV(context.Background(), report.ExportRequest{Filter: juneFilter()})
	require.NoError(t, err)

	assert.Equal(t, "attendance_priya_sharma_2025-06-02_2025-06-08.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	lines := strings.Split(strings.TrimRight(string(file.Content), "\n"), "\n")
	assert.Len(t, lines, 8) // header + 7 days
	assert.True(t, strings.HasPrefix(lines[0], "Date,Day,Status"))
}

func TestReportService_ExportCSV_InvalidFilter(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&stubCalendarProvider{})

	_, err := svc.ExportCSV(context.Background(), report.ExportRequest{})
	assert.Error(t, err)
}

func TestReportService_ExportPDF(t *testing.T) {
	t.Parallel()

	provider := &stubCalendarProvider{response: juneCalendar()}
	svc := NewReportService(provider)

	file, err := svc.ExportPDF(context.Background(), report.ExportRequest{Filter: juneFilter()})
	require.NoError(t, err)

	assert.Equal(t, "priya_sharma_attendance_complete.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)

	body := string(file.Content)
	assert.Contains(t, body, "Attendance Report - Priya Sharma")
	assert.Contains(t, body, "Page 1 of 1")
	assert.Contains(t, body, "2025-06-05")
}
