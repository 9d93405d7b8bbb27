package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/report"
	"github.com/Vanshahuja1/shrm-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetStatistics(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetStatistics implements ReportHandler.
func (h *reportHandlerImpl) GetStatistics(w http.ResponseWriter, r *http.Request) {
	filter := calendarFilterFromQuery(r)

	stats, err := h.reportService.GetStatistics(r.Context(), filter)
	if err != nil {
		slog.Error("GetStatistics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// ExportCSV implements ReportHandler.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req := exportRequestFromQuery(r)

	file, err := h.reportService.ExportCSV(r.Context(), req)
	if err != nil {
		slog.Error("ExportCSV service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeDownload(w, file)
}

// ExportPDF implements ReportHandler.
func (h *reportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	req := exportRequestFromQuery(r)

	file, err := h.reportService.ExportPDF(r.Context(), req)
	if err != nil {
		slog.Error("ExportPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeDownload(w, file)
}

func exportRequestFromQuery(r *http.Request) report.ExportRequest {
	return report.ExportRequest{
		Filter:       calendarFilterFromQuery(r),
		IncludeNotes: r.URL.Query().Get("include_notes") == "true",
	}
}

func writeDownload(w http.ResponseWriter, file report.ExportFile) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(file.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}
