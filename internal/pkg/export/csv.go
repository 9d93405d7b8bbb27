package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
)

// Meta carries the export context shared by both file formats.
type Meta struct {
	EmployeeName string
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD
	IncludeNotes bool
}

var csvBaseHeader = []string{"Date", "Day", "Status", "Punch In", "Punch Out", "Total Hours", "Break Time"}

// WriteCSV serializes the reconciled days in the supplied order. One header
// row, one data row per day; quoting follows RFC 4180 via encoding/csv, so
// both export call sites escape identically.
func WriteCSV(days []attendance.CalendarDay, meta Meta) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := csvBaseHeader
	if meta.IncludeNotes {
		header = append(append([]string{}, csvBaseHeader...), "Notes")
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, day := range days {
		row := []string{
			day.DateLabel,
			day.Weekday,
			string(day.Status),
			timeCell(day.PunchIn),
			timeCell(day.PunchOut),
			strconv.FormatFloat(day.TotalHours, 'f', 2, 64),
			strconv.Itoa(day.BreakTimeMinutes),
		}
		if meta.IncludeNotes {
			notes := ""
			if day.Notes != nil {
				notes = *day.Notes
			}
			row = append(row, notes)
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for %s: %w", day.DateLabel, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// CSVFilename builds attendance_<employee>_<start>_<end>.csv
func CSVFilename(meta Meta) string {
	return fmt.Sprintf("attendance_%s_%s_%s.csv", slug(meta.EmployeeName), meta.StartDate, meta.EndDate)
}

// PDFFilename builds <employee>_attendance_complete.pdf
func PDFFilename(meta Meta) string {
	return fmt.Sprintf("%s_attendance_complete.pdf", slug(meta.EmployeeName))
}

func timeCell(t *string) string {
	if t == nil {
		return "-"
	}
	return *t
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

func slug(name string) string {
	s := slugUnsafe.ReplaceAllString(strings.ToLower(name), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "employee"
	}
	return s
}
