package report

import (
	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
)

// ========================================
// ATTENDANCE STATISTICS
// ========================================

// Statistics is an immutable snapshot derived from one reconciled day range.
type Statistics struct {
	Total          int     `json:"total"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	Leave          int     `json:"leave"`
	Off            int     `json:"off"`
	AttendanceRate float64 `json:"attendance_rate"` // present/total*100, 0 when total is 0
}

// WeekdayStat is one bucket of the day-of-week pattern. Off days are excluded
// from both Present and Total, so the rate is over working days only.
type WeekdayStat struct {
	Day            string  `json:"day"`
	Present        int     `json:"present"`
	Total          int     `json:"total"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// MonthStat is one bucket of the month-over-month trend, labelled "Jan 2006".
type MonthStat struct {
	Month          string  `json:"month"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Total          int     `json:"total"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type StatisticsResponse struct {
	EmployeeID    string        `json:"employee_id"`
	EmployeeName  string        `json:"employee_name"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	Summary       Statistics    `json:"summary"`
	WeeklyPattern []WeekdayStat `json:"weekly_pattern"`
	MonthlyTrend  []MonthStat   `json:"monthly_trend"`
}

// ========================================
// EXPORTS
// ========================================

// ExportRequest selects what to export. Days are exported in the order the
// calendar filter produced them; exporters never re-sort.
type ExportRequest struct {
	Filter       attendance.CalendarFilter
	IncludeNotes bool
}

func (r *ExportRequest) Validate() error {
	return r.Filter.Validate()
}

// ExportFile is a rendered export ready to be written to the response.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
