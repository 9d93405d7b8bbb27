package attendance

import (
	"testing"
	"time"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestReconcile_EmptyRecords_FillsRange(t *testing.T) {
	t.Parallel()

	// Mon 2025-06-02 .. Sun 2025-06-08, all in the past
	start := date(2025, time.June, 2)
	end := date(2025, time.June, 8)
	today := date(2025, time.July, 1)

	days := Reconcile(nil, start, end, today, nil)

	require.Len(t, days, 7)
	for i, day := range days {
		assert.Equal(t, start.AddDate(0, 0, i).Format("2006-01-02"), day.DateLabel)
	}

	// Mon-Sat absent, Sunday off
	for _, day := range days[:6] {
		assert.Equal(t, attendance.StatusAbsent, day.Status, day.DateLabel)
		assert.Nil(t, day.PunchIn)
		assert.Nil(t, day.PunchOut)
		assert.Zero(t, day.TotalHours)
	}
	assert.Equal(t, "Sunday", days[6].Weekday)
	assert.Equal(t, attendance.StatusOff, days[6].Status)
}

func TestReconcile_RecordDaysGetRecordData(t *testing.T) {
	t.Parallel()

	start := date(2025, time.June, 2)
	end := date(2025, time.June, 4)
	today := date(2025, time.July, 1)

	punchIn := time.Date(2025, time.June, 3, 9, 5, 0, 0, time.UTC)
	punchOut := time.Date(2025, time.June, 3, 17, 30, 0, 0, time.UTC)
	records := []attendance.PunchRecord{
		{
			Date:             date(2025, time.June, 3),
			PunchIn:          timePtr(punchIn),
			PunchOut:         timePtr(punchOut),
			TotalHours:       7.92,
			BreakTimeMinutes: 30,
			Status:           "present",
			Notes:            strPtr("client visit"),
		},
	}

	days := Reconcile(records, start, end, today, nil)

	require.Len(t, days, 3)
	assert.Equal(t, attendance.StatusAbsent, days[0].Status)
	assert.Equal(t, attendance.StatusAbsent, days[2].Status)

	got := days[1]
	assert.Equal(t, attendance.StatusPresent, got.Status)
	require.NotNil(t, got.PunchIn)
	assert.Equal(t, "09:05:00", *got.PunchIn)
	require.NotNil(t, got.PunchOut)
	assert.Equal(t, "17:30:00", *got.PunchOut)
	assert.Equal(t, 7.92, got.TotalHours)
	assert.Equal(t, 30, got.BreakTimeMinutes)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "client visit", *got.Notes)
}

func TestReconcile_FutureDaysAreUnknown(t *testing.T) {
	t.Parallel()

	start := date(2025, time.June, 2)
	end := date(2025, time.June, 6)
	today := date(2025, time.June, 4)

	// A record on a future date must not override Unknown
	records := []attendance.PunchRecord{
		{Date: date(2025, time.June, 6), Status: "present"},
	}

	days := Reconcile(records, start, end, today, nil)

	require.Len(t, days, 5)
	assert.Equal(t, attendance.StatusAbsent, days[0].Status)
	assert.Equal(t, attendance.StatusAbsent, days[1].Status)
	assert.Equal(t, attendance.StatusAbsent, days[2].Status) // today itself is judged
	assert.Equal(t, attendance.StatusUnknown, days[3].Status)
	assert.Equal(t, attendance.StatusUnknown, days[4].Status)
	assert.Nil(t, days[4].PunchIn)
}

func TestReconcile_OffDayOverridesRecord(t *testing.T) {
	t.Parallel()

	sunday := date(2025, time.June, 8)
	records := []attendance.PunchRecord{
		{Date: sunday, Status: "present", TotalHours: 4},
	}

	days := Reconcile(records, sunday, sunday, date(2025, time.July, 1), nil)

	require.Len(t, days, 1)
	assert.Equal(t, attendance.StatusOff, days[0].Status)
	assert.Zero(t, days[0].TotalHours)
}

func TestReconcile_StatusMapping(t *testing.T) {
	t.Parallel()

	day := date(2025, time.June, 3)
	today := date(2025, time.July, 1)

	tests := []struct {
		recordStatus string
		want         attendance.DayStatus
	}{
		{"present", attendance.StatusPresent},
		{"PRESENT", attendance.StatusPresent},
		{" Late ", attendance.StatusLate},
		{"leave", attendance.StatusLeave},
		{"absent", attendance.StatusAbsent},
		{"something-else", attendance.StatusAbsent},
		{"", attendance.StatusAbsent},
	}

	for _, tt := range tests {
		records := []attendance.PunchRecord{{Date: day, Status: tt.recordStatus}}
		days := Reconcile(records, day, day, today, nil)
		require.Len(t, days, 1)
		assert.Equal(t, tt.want, days[0].Status, "status %q", tt.recordStatus)
	}
}

func TestReconcile_DuplicateDateLastWins(t *testing.T) {
	t.Parallel()

	day := date(2025, time.June, 3)
	records := []attendance.PunchRecord{
		{Date: day, Status: "leave"},
		{Date: day, Status: "present", TotalHours: 8},
	}

	days := Reconcile(records, day, day, date(2025, time.July, 1), nil)

	require.Len(t, days, 1)
	assert.Equal(t, attendance.StatusPresent, days[0].Status)
	assert.Equal(t, 8.0, days[0].TotalHours)
}

func TestReconcile_InvertedRangeIsEmpty(t *testing.T) {
	t.Parallel()

	days := Reconcile(nil, date(2025, time.June, 8), date(2025, time.June, 2), date(2025, time.July, 1), nil)
	assert.Empty(t, days)
}

func TestReconcile_CustomWorkdayPolicy(t *testing.T) {
	t.Parallel()

	// Friday-Saturday weekend
	policy := attendance.WorkdayPolicyFromOffDays([]int{5, 6})

	// Mon 2025-06-02 .. Sun 2025-06-08
	days := Reconcile(nil, date(2025, time.June, 2), date(2025, time.June, 8), date(2025, time.July, 1), policy)

	require.Len(t, days, 7)
	assert.Equal(t, attendance.StatusOff, days[4].Status) // Friday
	assert.Equal(t, attendance.StatusOff, days[5].Status) // Saturday
	assert.Equal(t, attendance.StatusAbsent, days[6].Status)
}

func TestReverseDays(t *testing.T) {
	t.Parallel()

	days := Reconcile(nil, date(2025, time.June, 2), date(2025, time.June, 4), date(2025, time.July, 1), nil)
	ReverseDays(days)

	require.Len(t, days, 3)
	assert.Equal(t, "2025-06-04", days[0].DateLabel)
	assert.Equal(t, "2025-06-02", days[2].DateLabel)
}
