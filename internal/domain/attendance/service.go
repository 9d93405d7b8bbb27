package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// PunchIn records the start of a work session for today
	PunchIn(ctx context.Context, req PunchInRequest) (PunchRecordResponse, error)

	// PunchOut closes the open work session
	PunchOut(ctx context.Context, req PunchOutRequest) (PunchRecordResponse, error)

	// GetCalendar returns the dense, gap-filled calendar for a date range
	GetCalendar(ctx context.Context, filter CalendarFilter) (CalendarResponse, error)

	// ListRecords retrieves raw punch records with filters (admin)
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)

	// DeleteRecord removes a punch record (admin)
	DeleteRecord(ctx context.Context, id string) error
}
