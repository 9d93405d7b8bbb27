package attendance

import (
	"context"
	"time"
)

// PunchRecordRepository defines data access methods for punch records.
// All methods include companyID to prevent cross-company data access.
type PunchRecordRepository interface {
	// Create inserts a new punch-in record
	Create(ctx context.Context, record PunchRecord) (PunchRecord, error)

	// GetByID retrieves a record by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (PunchRecord, error)

	// Update rewrites the mutable fields of an existing record
	Update(ctx context.Context, record PunchRecord) error

	// GetOpenSession returns the record the employee punched in on but has not
	// punched out of yet
	GetOpenSession(ctx context.Context, employeeID string, companyID string) (PunchRecord, error)

	// HasPunchedInOn reports whether a record exists for the employee on the
	// given local date (YYYY-MM-DD)
	HasPunchedInOn(ctx context.Context, employeeID string, dateLocal string, companyID string) (bool, error)

	// ListByEmployeeAndRange returns the sparse record list for a date range,
	// ascending by date. Input to the calendar reconciler.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]PunchRecord, error)

	// List retrieves records with filters and pagination (admin)
	List(ctx context.Context, filter RecordFilter, companyID string) ([]PunchRecord, int64, error)

	// Delete removes a record
	Delete(ctx context.Context, id string, companyID string) error
}
