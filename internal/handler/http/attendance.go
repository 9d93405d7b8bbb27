package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
	"github.com/Vanshahuja1/shrm-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	GetCalendar(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// PunchIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PunchIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.PunchIn(r.Context(), req)
	if err != nil {
		slog.Error("PunchIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in successfully", record)
}

// PunchOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PunchOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.PunchOut(r.Context(), req)
	if err != nil {
		slog.Error("PunchOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out successfully", record)
}

// GetCalendar implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	filter := calendarFilterFromQuery(r)

	calendar, err := h.attendanceService.GetCalendar(r.Context(), filter)
	if err != nil {
		slog.Error("GetCalendar service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar)
}

// ListRecords implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	var filter attendance.RecordFilter

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if page, err := strconv.Atoi(p); err == nil {
			filter.Page = page
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil {
			filter.Limit = limit
		}
	}
	if sortBy := r.URL.Query().Get("sort_by"); sortBy != "" {
		filter.SortBy = sortBy
	}
	if sortOrder := r.URL.Query().Get("sort_order"); sortOrder != "" {
		filter.SortOrder = sortOrder
	}

	records, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		slog.Error("ListRecords service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// DeleteRecord implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record id is required", nil)
		return
	}

	if err := h.attendanceService.DeleteRecord(r.Context(), id); err != nil {
		slog.Error("DeleteRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// calendarFilterFromQuery reads the shared calendar query parameters. The
// filter's own Validate supplies defaults and field errors.
func calendarFilterFromQuery(r *http.Request) attendance.CalendarFilter {
	return attendance.CalendarFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
		SortOrder:  r.URL.Query().Get("sort_order"),
	}
}
