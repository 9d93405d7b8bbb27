package attendance

import (
	"strings"
	"time"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
)

// Reconcile turns a sparse record list into a dense calendar: exactly one
// CalendarDay per date in [start, end] inclusive, ascending.
//
// Per date:
//   - after today: StatusUnknown, no punch data
//   - non-working day per policy: StatusOff, even when a record exists
//   - record found: status mapped from the record, punch fields copied
//   - otherwise: StatusAbsent with nil punches and zero hours
//
// Missing data on a past working day means absence, not silence. Records
// outside the range are ignored; records with a zero date are skipped; when
// two records share a date the last one wins. Pure, total, no side effects.
func Reconcile(records []attendance.PunchRecord, start, end, today time.Time, workday attendance.WorkdayPolicy) []attendance.CalendarDay {
	if workday == nil {
		workday = attendance.DefaultWorkdayPolicy
	}

	startDay := truncateToDay(start)
	endDay := truncateToDay(end)
	todayDay := truncateToDay(today)
	if endDay.Before(startDay) {
		return []attendance.CalendarDay{}
	}

	byDate := make(map[string]attendance.PunchRecord, len(records))
	for _, rec := range records {
		if rec.Date.IsZero() {
			continue
		}
		byDate[rec.Date.Format("2006-01-02")] = rec
	}

	dayCount := int(endDay.Sub(startDay).Hours()/24) + 1
	days := make([]attendance.CalendarDay, 0, dayCount)

	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		day := attendance.CalendarDay{
			Date:      d,
			DateLabel: d.Format("2006-01-02"),
			Weekday:   d.Weekday().String(),
		}

		switch {
		case d.After(todayDay):
			day.Status = attendance.StatusUnknown

		case !workday(d):
			day.Status = attendance.StatusOff

		default:
			rec, ok := byDate[day.DateLabel]
			if !ok {
				day.Status = attendance.StatusAbsent
				break
			}
			day.Status = mapRecordStatus(rec.Status)
			day.PunchIn = formatClock(rec.PunchIn)
			day.PunchOut = formatClock(rec.PunchOut)
			day.TotalHours = rec.TotalHours
			day.BreakTimeMinutes = rec.BreakTimeMinutes
			day.Notes = rec.Notes
		}

		days = append(days, day)
	}

	return days
}

// ReverseDays flips the calendar in place for newest-first display paths.
func ReverseDays(days []attendance.CalendarDay) {
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
}

func mapRecordStatus(status string) attendance.DayStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "present":
		return attendance.StatusPresent
	case "late":
		return attendance.StatusLate
	case "leave":
		return attendance.StatusLeave
	default:
		return attendance.StatusAbsent
	}
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
