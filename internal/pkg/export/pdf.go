package export

import (
	"fmt"
	"strings"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
)

// RowsPerPage is how many data rows fit on one page of the text layout.
const RowsPerPage = 40

// RenderTextPages lays the reconciled days out as a fixed-column text table,
// split into pages of RowsPerPage rows. Every page starts with the title block
// and the column header and ends with a page footer. The result is a
// print-ready paginated report; no real PDF primitives are involved.
func RenderTextPages(days []attendance.CalendarDay, meta Meta) []string {
	pageCount := (len(days) + RowsPerPage - 1) / RowsPerPage
	if pageCount == 0 {
		pageCount = 1
	}

	pages := make([]string, 0, pageCount)
	for p := 0; p < pageCount; p++ {
		var b strings.Builder

		b.WriteString(fmt.Sprintf("Attendance Report - %s\n", meta.EmployeeName))
		b.WriteString(fmt.Sprintf("Period: %s to %s\n\n", meta.StartDate, meta.EndDate))
		writeHeaderRow(&b)

		lo := p * RowsPerPage
		hi := lo + RowsPerPage
		if hi > len(days) {
			hi = len(days)
		}
		for _, day := range days[lo:hi] {
			b.WriteString(fmt.Sprintf("%-12s %-10s %-8s %-10s %-10s %8.2f %7d\n",
				day.DateLabel,
				day.Weekday,
				string(day.Status),
				timeCell(day.PunchIn),
				timeCell(day.PunchOut),
				day.TotalHours,
				day.BreakTimeMinutes,
			))
		}

		b.WriteString(fmt.Sprintf("\nPage %d of %d\n", p+1, pageCount))
		pages = append(pages, b.String())
	}

	return pages
}

// RenderTextReport joins the pages with form feeds into one downloadable body.
func RenderTextReport(days []attendance.CalendarDay, meta Meta) []byte {
	return []byte(strings.Join(RenderTextPages(days, meta), "\f"))
}

func writeHeaderRow(b *strings.Builder) {
	b.WriteString(fmt.Sprintf("%-12s %-10s %-8s %-10s %-10s %8s %7s\n",
		"Date", "Day", "Status", "Punch In", "Punch Out", "Hours", "Break"))
	b.WriteString(strings.Repeat("-", 72) + "\n")
}
