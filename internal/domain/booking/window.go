package booking

import (
	"slices"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// Window is a half-open [Start, End) range on booking_time.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Filter(base Filter) Filter {
	start, end := w.Start.UTC(), w.End.UTC()
	base.From = &start
	base.To = &end
	return base
}

// DayWindow is the calendar day containing now, in the application timezone.
func DayWindow(now time.Time) Window {
	start := timezone.StartOfDay(now)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// WeekWindow is the Monday-start week containing now.
func WeekWindow(now time.Time) Window {
	day := timezone.StartOfDay(now)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// Since filters booking_time >= now minus the given number of days. It is
// open ended, so bookings scheduled later than now are included too.
func Since(now time.Time, days int) Filter {
	since := now.Add(-time.Duration(days) * 24 * time.Hour).UTC()
	return Filter{From: &since}
}

// GroupByDay buckets timestamps by calendar day in the application
// timezone and returns the buckets in ascending date order.
func GroupByDay(times []time.Time) []DayCount {
	counts := make(map[string]int64)
	var order []string

	for _, t := range times {
		key := t.In(timezone.Default()).Format("2006-01-02")
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	slices.Sort(order)

	out := make([]DayCount, 0, len(order))
	for _, key := range order {
		out = append(out, DayCount{Date: key, Count: counts[key]})
	}
	return out
}
