package report

import (
	"context"
	"fmt"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/report"
	"github.com/Vanshahuja1/shrm-backend-go/internal/pkg/export"
)

// CalendarProvider is the slice of the attendance service the report side
// needs: a reconciled range plus the employee it belongs to.
type CalendarProvider interface {
	GetCalendar(ctx context.Context, filter attendance.CalendarFilter) (attendance.CalendarResponse, error)
}

type ReportServiceImpl struct {
	calendars CalendarProvider
}

func NewReportService(calendars CalendarProvider) report.ReportService {
	return &ReportServiceImpl{
		calendars: calendars,
	}
}

// GetStatistics implements report.ReportService.
func (s *ReportServiceImpl) GetStatistics(ctx context.Context, filter attendance.CalendarFilter) (report.StatisticsResponse, error) {
	// Statistics are order-independent; fetch ascending regardless of caller sort.
	filter.SortOrder = "asc"

	cal, err := s.calendars.GetCalendar(ctx, filter)
	if err != nil {
		return report.StatisticsResponse{}, err
	}

	return report.StatisticsResponse{
		EmployeeID:    cal.EmployeeID,
		EmployeeName:  cal.EmployeeName,
		StartDate:     cal.StartDate,
		EndDate:       cal.EndDate,
		Summary:       Aggregate(cal.Days),
		WeeklyPattern: WeeklyPattern(cal.Days),
		MonthlyTrend:  MonthlyTrend(cal.Days),
	}, nil
}

// ExportCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, req report.ExportRequest) (report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	cal, err := s.calendars.GetCalendar(ctx, req.Filter)
	if err != nil {
		return report.ExportFile{}, err
	}

	meta := export.Meta{
		EmployeeName: cal.EmployeeName,
		StartDate:    cal.StartDate,
		EndDate:      cal.EndDate,
		IncludeNotes: req.IncludeNotes,
	}

	content, err := export.WriteCSV(cal.Days, meta)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	return report.ExportFile{
		Filename:    export.CSVFilename(meta),
		ContentType: "text/csv; charset=utf-8",
		Content:     content,
	}, nil
}

// ExportPDF implements report.ReportService.
func (s *ReportServiceImpl) ExportPDF(ctx context.Context, req report.ExportRequest) (report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	cal, err := s.calendars.GetCalendar(ctx, req.Filter)
	if err != nil {
		return report.ExportFile{}, err
	}

	meta := export.Meta{
		EmployeeName: cal.EmployeeName,
		StartDate:    cal.StartDate,
		EndDate:      cal.EndDate,
	}

	return report.ExportFile{
		Filename:    export.PDFFilename(meta),
		ContentType: "application/pdf",
		Content:     export.RenderTextReport(cal.Days, meta),
	}, nil
}
