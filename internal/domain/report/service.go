package report

import (
	"context"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
)

// ReportService derives statistics and file exports from reconciled calendars
type ReportService interface {
	// GetStatistics returns the summary, weekly pattern and monthly trend for a range
	GetStatistics(ctx context.Context, filter attendance.CalendarFilter) (StatisticsResponse, error)

	// ExportCSV renders the reconciled range as an RFC 4180 CSV file
	ExportCSV(ctx context.Context, req ExportRequest) (ExportFile, error)

	// ExportPDF renders the reconciled range as a paginated text report
	ExportPDF(ctx context.Context, req ExportRequest) (ExportFile, error)
}
