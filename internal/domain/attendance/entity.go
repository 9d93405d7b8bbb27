package attendance

import (
	"time"
)

// PunchRecord is a single stored attendance row for one employee on one day.
// The set of records for a range is sparse: days without a punch have no row.
type PunchRecord struct {
	ID               string
	EmployeeID       string
	CompanyID        string
	Date             time.Time
	PunchIn          *time.Time
	PunchOut         *time.Time
	TotalHours       float64
	BreakTimeMinutes int
	Status           string // present, absent, late, leave
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	EmployeeName *string
}

// DayStatus is the reconciled status of a calendar day.
type DayStatus string

const (
	StatusPresent DayStatus = "Present"
	StatusAbsent  DayStatus = "Absent"
	StatusLate    DayStatus = "Late"
	StatusLeave   DayStatus = "Leave"
	StatusOff     DayStatus = "Off"
	// StatusUnknown marks dates after today; no judgement is made about them.
	StatusUnknown DayStatus = ""
)

// CalendarDay is one entry of the dense, gap-filled calendar. A reconciled
// range has exactly one CalendarDay per calendar date, in date order.
type CalendarDay struct {
	Date             time.Time `json:"-"`
	DateLabel        string    `json:"date"` // YYYY-MM-DD
	Weekday          string    `json:"day"`
	Status           DayStatus `json:"status"`
	PunchIn          *string   `json:"punch_in,omitempty"`  // HH:MM:SS
	PunchOut         *string   `json:"punch_out,omitempty"` // HH:MM:SS
	TotalHours       float64   `json:"total_hours"`
	BreakTimeMinutes int       `json:"break_time_minutes"`
	Notes            *string   `json:"notes,omitempty"`
}

// WorkdayPolicy reports whether attendance is expected on the given date.
// Injected so regional calendars can differ without touching the reconciler.
type WorkdayPolicy func(date time.Time) bool

// DefaultWorkdayPolicy treats Monday-Saturday as working days and Sunday as off.
func DefaultWorkdayPolicy(date time.Time) bool {
	return date.Weekday() != time.Sunday
}

// WorkdayPolicyFromOffDays builds a policy from weekday numbers (0=Sunday).
func WorkdayPolicyFromOffDays(offDays []int) WorkdayPolicy {
	off := make(map[time.Weekday]bool, len(offDays))
	for _, d := range offDays {
		off[time.Weekday(d)] = true
	}
	return func(date time.Time) bool {
		return !off[date.Weekday()]
	}
}
