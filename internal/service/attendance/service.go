package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/employee"
	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/user"
	"github.com/Vanshahuja1/shrm-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

// WorkdaySettings are the attendance business rules injected from config.
type WorkdaySettings struct {
	Policy             attendance.WorkdayPolicy
	StartHour          int
	StartMinute        int
	GracePeriodMinutes int
	Location           *time.Location
}

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.PunchRecordRepository
	employee.EmployeeRepository
	workday WorkdaySettings
	now     func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	recordRepo attendance.PunchRecordRepository,
	employeeRepo employee.EmployeeRepository,
	workday WorkdaySettings,
) attendance.AttendanceService {
	if workday.Policy == nil {
		workday.Policy = attendance.DefaultWorkdayPolicy
	}
	if workday.Location == nil {
		workday.Location = time.UTC
	}
	return &AttendanceServiceImpl{
		db:                    db,
		PunchRecordRepository: recordRepo,
		EmployeeRepository:    employeeRepo,
		workday:               workday,
		now:                   time.Now,
	}
}

func claimsFromContext(ctx context.Context) (companyID, employeeID string, isAdmin bool, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", false, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", false, fmt.Errorf("company_id claim is missing or invalid")
	}

	// employee_id is absent for admin accounts without an employee profile
	employeeID, _ = claims["employee_id"].(string)

	role, _ := claims["role"].(string)
	isAdmin = role == "admin" || role == "manager"

	return companyID, employeeID, isAdmin, nil
}

// PunchIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchInRequest) (attendance.PunchRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchRecordResponse{}, err
	}

	companyID, employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.PunchRecordResponse{}, err
	}
	if employeeID == "" {
		employeeID = req.EmployeeID
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PunchRecordResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.PunchRecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive {
		return attendance.PunchRecordResponse{}, employee.ErrEmployeeInactive
	}

	nowUTC := a.now().UTC()
	nowLocal := nowUTC.In(a.workday.Location)
	dateLocal := nowLocal.Format("2006-01-02")

	hasPunchedIn, err := a.PunchRecordRepository.HasPunchedInOn(ctx, employeeID, dateLocal, companyID)
	if err != nil {
		return attendance.PunchRecordResponse{}, fmt.Errorf("failed to check existing punch-in: %w", err)
	}
	if hasPunchedIn {
		return attendance.PunchRecordResponse{}, attendance.ErrAlreadyPunchedIn
	}

	scheduledIn := time.Date(
		nowLocal.Year(), nowLocal.Month(), nowLocal.Day(),
		a.workday.StartHour, a.workday.StartMinute, 0, 0,
		a.workday.Location,
	)
	graceLimit := scheduledIn.Add(time.Duration(a.workday.GracePeriodMinutes) * time.Minute)

	status := "present"
	if nowLocal.After(graceLimit) {
		status = "late"
	}

	data := attendance.PunchRecord{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Date:       time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC),
		PunchIn:    &nowUTC,
		Status:     status,
		Notes:      req.Notes,
	}

	created, err := a.PunchRecordRepository.Create(ctx, data)
	if err != nil {
		return attendance.PunchRecordResponse{}, fmt.Errorf("failed to create punch record: %w", err)
	}

	return mapRecordToResponse(created, a.workday.Location), nil
}

// PunchOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchOutRequest) (attendance.PunchRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchRecordResponse{}, err
	}

	companyID, employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.PunchRecordResponse{}, err
	}
	if employeeID == "" {
		employeeID = req.EmployeeID
	}

	record, err := a.PunchRecordRepository.GetOpenSession(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PunchRecordResponse{}, attendance.ErrNotPunchedIn
		}
		return attendance.PunchRecordResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}
	if record.PunchOut != nil {
		return attendance.PunchRecordResponse{}, attendance.ErrAlreadyPunchedOut
	}

	nowUTC := a.now().UTC()

	worked := nowUTC.Sub(*record.PunchIn) - time.Duration(req.BreakTimeMinutes)*time.Minute
	if worked < 0 {
		worked = 0
	}

	record.PunchOut = &nowUTC
	record.BreakTimeMinutes = req.BreakTimeMinutes
	record.TotalHours = math.Round(worked.Hours()*100) / 100
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if err := a.PunchRecordRepository.Update(ctx, record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PunchRecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.PunchRecordResponse{}, fmt.Errorf("failed to update punch record: %w", err)
	}

	return mapRecordToResponse(record, a.workday.Location), nil
}

// GetCalendar implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetCalendar(ctx context.Context, filter attendance.CalendarFilter) (attendance.CalendarResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.CalendarResponse{}, err
	}

	companyID, selfEmployeeID, isAdmin, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.CalendarResponse{}, err
	}
	// Non-admins can only read their own calendar. A non-admin token without
	// an employee profile has no calendar to read, so it is rejected rather
	// than trusted with the caller-supplied employee id.
	if !isAdmin {
		if selfEmployeeID == "" {
			return attendance.CalendarResponse{}, user.ErrAdminPrivilegeRequired
		}
		filter.EmployeeID = selfEmployeeID
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, filter.EmployeeID, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.CalendarResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.CalendarResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := a.PunchRecordRepository.ListByEmployeeAndRange(ctx, filter.EmployeeID, filter.Start(), filter.End(), companyID)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to list punch records: %w", err)
	}

	// Punch instants are stored UTC; the calendar shows local wall-clock times.
	for i := range records {
		if records[i].PunchIn != nil {
			t := records[i].PunchIn.In(a.workday.Location)
			records[i].PunchIn = &t
		}
		if records[i].PunchOut != nil {
			t := records[i].PunchOut.In(a.workday.Location)
			records[i].PunchOut = &t
		}
	}

	today := a.now().In(a.workday.Location)
	days := Reconcile(records, filter.Start(), filter.End(), today, a.workday.Policy)
	if filter.SortOrder == "desc" {
		ReverseDays(days)
	}

	return attendance.CalendarResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
		Days:         days,
	}, nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	companyID, _, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, total, err := a.PunchRecordRepository.List(ctx, filter, companyID)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list punch records: %w", err)
	}

	responses := make([]attendance.PunchRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec, a.workday.Location))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Records:    responses,
	}, nil
}

// DeleteRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	companyID, _, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	if err := a.PunchRecordRepository.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete punch record: %w", err)
	}

	return nil
}

// mapRecordToResponse converts a PunchRecord entity to PunchRecordResponse
func mapRecordToResponse(rec attendance.PunchRecord, loc *time.Location) attendance.PunchRecordResponse {
	var employeeName string
	if rec.EmployeeName != nil {
		employeeName = *rec.EmployeeName
	}

	localClock := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.In(loc).Format("15:04:05")
		return &s
	}

	return attendance.PunchRecordResponse{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		EmployeeName:     employeeName,
		Date:             rec.Date.Format("2006-01-02"),
		PunchIn:          localClock(rec.PunchIn),
		PunchOut:         localClock(rec.PunchOut),
		TotalHours:       rec.TotalHours,
		BreakTimeMinutes: rec.BreakTimeMinutes,
		Status:           rec.Status,
		Notes:            rec.Notes,
		CreatedAt:        rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
