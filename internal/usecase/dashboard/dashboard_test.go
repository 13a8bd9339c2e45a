package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/testutil"
)

// Wednesday.
var now = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func TestSalonDashboard(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "ana")
	north := testutil.CreateSalon(t, db, user, "north", true)
	south := testutil.CreateSalon(t, db, user, "south", true)

	testutil.CreateBooking(t, db, user, north, now.Add(-2*time.Hour), "pending")   // today
	testutil.CreateBooking(t, db, user, north, now.Add(3*time.Hour), "completed")  // today
	testutil.CreateBooking(t, db, user, north, now.AddDate(0, 0, -2), "pending")   // Monday
	testutil.CreateBooking(t, db, user, north, now.AddDate(0, 0, -3), "completed") // previous Sunday
	testutil.CreateBooking(t, db, user, north, now.AddDate(0, 0, 5), "cancelled")  // next Monday
	testutil.CreateBooking(t, db, user, south, now, "pending")                     // other salon

	uc := NewSalonDashboard(
		repository.NewSalonGormRepository(db),
		repository.NewBookingGormRepository(db),
	)

	got, err := uc.Execute(context.Background(), north.ID, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.SalonName != "north" {
		t.Fatalf("unexpected salon name %q", got.SalonName)
	}
	if got.TodayBookingsCount != 2 || len(got.TodayBookings) != 2 {
		t.Fatalf("expected 2 bookings today, got %d", got.TodayBookingsCount)
	}
	if got.WeekBookingsCount != 3 {
		t.Fatalf("expected 3 bookings this week, got %d", got.WeekBookingsCount)
	}
	if got.PendingBookingsCount != 2 || len(got.PendingBookings) != 2 {
		t.Fatalf("expected 2 pending bookings, got %d", got.PendingBookingsCount)
	}
	if name := got.TodayBookings[0].UserName; name == nil || *name != "ana" {
		t.Fatalf("expected user names in salon view: %+v", got.TodayBookings[0])
	}
}

func TestSalonDashboard_UnknownSalon(t *testing.T) {
	db := testutil.NewDB(t)

	uc := NewSalonDashboard(
		repository.NewSalonGormRepository(db),
		repository.NewBookingGormRepository(db),
	)

	_, err := uc.Execute(context.Background(), 42, now)
	var nfe httperr.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSalonAnalytics_NoBookings(t *testing.T) {
	db := testutil.NewDB(t)

	got, err := NewSalonAnalytics(repository.NewBookingGormRepository(db)).
		Execute(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalBookings != 0 || got.CompletionRate != 0 {
		t.Fatalf("expected zeros, got %+v", got)
	}
}

func TestSalonAnalytics_CompletionRate(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "ana")
	north := testutil.CreateSalon(t, db, user, "north", true)

	for i := 0; i < 10; i++ {
		status := "pending"
		switch {
		case i < 3:
			status = "completed"
		case i < 5:
			status = "cancelled"
		}
		testutil.CreateBooking(t, db, user, north, now.AddDate(0, 0, -i), status)
	}
	// Outside the window.
	testutil.CreateBooking(t, db, user, north, now.AddDate(0, 0, -45), "completed")

	got, err := NewSalonAnalytics(repository.NewBookingGormRepository(db)).
		Execute(context.Background(), north.ID, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TotalBookings != 10 || got.CompletedBookings != 3 || got.CancelledBookings != 2 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.CompletionRate != 30.0 {
		t.Fatalf("expected completion rate 30, got %v", got.CompletionRate)
	}
}
