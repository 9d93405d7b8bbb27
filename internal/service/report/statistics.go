package report

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/report"
)

// Aggregate counts day statuses case-insensitively over one reconciled range.
// AttendanceRate is present/total*100, or 0 for an empty range.
func Aggregate(days []attendance.CalendarDay) report.Statistics {
	stats := report.Statistics{Total: len(days)}

	for _, day := range days {
		switch strings.ToLower(string(day.Status)) {
		case "present":
			stats.Present++
		case "absent":
			stats.Absent++
		case "late":
			stats.Late++
		case "leave":
			stats.Leave++
		case "off":
			stats.Off++
		}
	}

	if stats.Total > 0 {
		stats.AttendanceRate = round2(float64(stats.Present) / float64(stats.Total) * 100)
	}

	return stats
}

// weekdayOrder lists buckets Monday-first, the working-week reading order.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeeklyPattern groups days by weekday name. Off days count toward neither
// numerator nor denominator, so each rate is over working days only. Buckets
// with a zero total are dropped rather than reported as 0%.
func WeeklyPattern(days []attendance.CalendarDay) []report.WeekdayStat {
	type bucket struct {
		present int
		total   int
	}
	buckets := make(map[time.Weekday]*bucket, 7)

	for _, day := range days {
		if day.Status == attendance.StatusOff {
			continue
		}
		b, ok := buckets[day.Date.Weekday()]
		if !ok {
			b = &bucket{}
			buckets[day.Date.Weekday()] = b
		}
		b.total++
		if day.Status == attendance.StatusPresent {
			b.present++
		}
	}

	pattern := make([]report.WeekdayStat, 0, len(buckets))
	for _, wd := range weekdayOrder {
		b, ok := buckets[wd]
		if !ok || b.total == 0 {
			continue
		}
		pattern = append(pattern, report.WeekdayStat{
			Day:            wd.String(),
			Present:        b.present,
			Total:          b.total,
			AttendanceRate: round2(float64(b.present) / float64(b.total) * 100),
		})
	}

	return pattern
}

// MonthlyTrend groups days by "Jan 2006" label with the same off-day
// exclusion as WeeklyPattern, sorted chronologically. Zero-total months are
// dropped.
func MonthlyTrend(days []attendance.CalendarDay) []report.MonthStat {
	type bucket struct {
		month   time.Time
		present int
		absent  int
		total   int
	}
	buckets := make(map[string]*bucket)

	for _, day := range days {
		if day.Status == attendance.StatusOff {
			continue
		}
		key := day.Date.Format("Jan 2006")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{month: time.Date(day.Date.Year(), day.Date.Month(), 1, 0, 0, 0, 0, time.UTC)}
			buckets[key] = b
		}
		b.total++
		switch day.Status {
		case attendance.StatusPresent:
			b.present++
		case attendance.StatusAbsent:
			b.absent++
		}
	}

	trend := make([]report.MonthStat, 0, len(buckets))
	for key, b := range buckets {
		if b.total == 0 {
			continue
		}
		trend = append(trend, report.MonthStat{
			Month:          key,
			Present:        b.present,
			Absent:         b.absent,
			Total:          b.total,
			AttendanceRate: round2(float64(b.present) / float64(b.total) * 100),
		})
	}

	sort.Slice(trend, func(i, j int) bool {
		ti, _ := time.Parse("Jan 2006", trend[i].Month)
		tj, _ := time.Parse("Jan 2006", trend[j].Month)
		return ti.Before(tj)
	})

	return trend
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
