package booking

import (
	"testing"
	"time"
)

func TestDayWindow(t *testing.T) {
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	w := DayWindow(now)

	if !w.Start.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", w.Start)
	}
	if !w.End.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %v", w.End)
	}
}

func TestWeekWindow_StartsOnMonday(t *testing.T) {
	monday := time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC)

	cases := []time.Time{
		time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC),  // Monday
		time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),  // Wednesday
		time.Date(2024, 5, 5, 23, 59, 0, 0, time.UTC), // Sunday
	}

	for _, now := range cases {
		w := WeekWindow(now)
		if !w.Start.Equal(monday) {
			t.Errorf("WeekWindow(%v).Start = %v, want %v", now, w.Start, monday)
		}
		if !w.End.Equal(monday.AddDate(0, 0, 7)) {
			t.Errorf("WeekWindow(%v).End = %v", now, w.End)
		}
	}
}

func TestCompletionRate(t *testing.T) {
	if got := CompletionRate(0, 0); got != 0 {
		t.Fatalf("expected 0 for empty window, got %v", got)
	}
	if got := CompletionRate(3, 10); got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
}

func TestGroupByDay(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 17, 0, 0, 0, time.UTC),
	}

	got := GroupByDay(times)
	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %v", got)
	}
	if got[0].Date != "2024-05-01" || got[0].Count != 1 {
		t.Fatalf("unexpected first bucket %+v", got[0])
	}
	if got[1].Date != "2024-05-02" || got[1].Count != 2 {
		t.Fatalf("unexpected second bucket %+v", got[1])
	}
}

func TestWindowFilter_KeepsBase(t *testing.T) {
	salonID := uint(4)
	w := DayWindow(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))

	f := w.Filter(Filter{SalonID: &salonID, Status: "pending"})
	if f.SalonID == nil || *f.SalonID != 4 || f.Status != "pending" {
		t.Fatalf("base filter lost: %+v", f)
	}
	if f.From == nil || f.To == nil || !f.From.Equal(w.Start) || !f.To.Equal(w.End) {
		t.Fatalf("window bounds not applied: %+v", f)
	}
}
