package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDays() []attendance.CalendarDay {
	punchIn := "09:00:00"
	punchOut := "17:30:00"
	notes := `says "back, later", maybe`

	return []attendance.CalendarDay{
		{
			Date:             time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
			DateLabel:        "2025-06-02",
			Weekday:          "Monday",
			Status:           attendance.StatusPresent,
			PunchIn:          &punchIn,
			PunchOut:         &punchOut,
			TotalHours:       8,
			BreakTimeMinutes: 30,
			Notes:            &notes,
		},
		{
			Date:      time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
			DateLabel: "2025-06-03",
			Weekday:   "Tuesday",
			Status:    attendance.StatusAbsent,
		},
	}
}

func TestWriteCSV_RowShape(t *testing.T) {
	t.Parallel()

	out, err := WriteCSV(sampleDays(), Meta{})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3) // header + one row per day
	assert.Equal(t, []string{"Date", "Day", "Status", "Punch In", "Punch Out", "Total Hours", "Break Time"}, rows[0])
	assert.Equal(t, []string{"2025-06-02", "Monday", "Present", "09:00:00", "17:30:00", "8.00", "30"}, rows[1])
	assert.Equal(t, []string{"2025-06-03", "Tuesday", "Absent", "-", "-", "0.00", "0"}, rows[2])
}

func TestWriteCSV_NotesColumnRoundTrips(t *testing.T) {
	t.Parallel()

	out, err := WriteCSV(sampleDays(), Meta{IncludeNotes: true})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Notes", rows[0][len(rows[0])-1])

	// Commas and quotes in notes survive the escaping
	assert.Equal(t, `says "back, later", maybe`, rows[1][7])
	assert.Equal(t, "", rows[2][7])
}

func TestWriteCSV_EmptyRangeIsHeaderOnly(t *testing.T) {
	t.Parallel()

	out, err := WriteCSV(nil, Meta{})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestFilenames(t *testing.T) {
	t.Parallel()

	meta := Meta{EmployeeName: "Priya N. Sharma", StartDate: "2025-06-01", EndDate: "2025-06-30"}

	assert.Equal(t, "attendance_priya_n_sharma_2025-06-01_2025-06-30.csv", CSVFilename(meta))
	assert.Equal(t, "priya_n_sharma_attendance_complete.pdf", PDFFilename(meta))
}

func TestFilenames_EmptyNameFallsBack(t *testing.T) {
	t.Parallel()

	meta := Meta{EmployeeName: "--", StartDate: "2025-06-01", EndDate: "2025-06-30"}
	assert.Equal(t, "attendance_employee_2025-06-01_2025-06-30.csv", CSVFilename(meta))
}
