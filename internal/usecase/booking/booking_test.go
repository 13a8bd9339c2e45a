package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/testutil"
)

func TestCreateBooking_Validation(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewCreateBooking(repository.NewBookingGormRepository(db), audit.Nop{})

	cases := []struct {
		name  string
		in    CreateBookingInput
		field string
	}{
		{"missing user", CreateBookingInput{SalonID: 1, BookingTime: "2024-05-01T10:00:00"}, "user_id"},
		{"missing salon", CreateBookingInput{UserID: 1, BookingTime: "2024-05-01T10:00:00"}, "salon_id"},
		{"missing time", CreateBookingInput{UserID: 1, SalonID: 1}, "booking_time"},
		{"blank time", CreateBookingInput{UserID: 1, SalonID: 1, BookingTime: "   "}, "booking_time"},
		{"malformed time", CreateBookingInput{UserID: 1, SalonID: 1, BookingTime: "tomorrow at ten"}, "booking_time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.in)

			var ve httperr.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
			}
		})
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected requests must not write, found %d bookings", count)
	}
}

func TestCreateBooking_WithoutBarber(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "ana")
	salon := testutil.CreateSalon(t, db, user, "north", true)

	uc := NewCreateBooking(repository.NewBookingGormRepository(db), audit.Nop{})

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:      user.ID,
		SalonID:     salon.ID,
		BookingTime: "2024-05-01T10:00:00",
		ServiceType: "haircut",
		Notes:       "short on the sides",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID == 0 {
		t.Fatal("expected a generated id")
	}

	var stored models.Booking
	if err := db.First(&stored, b.ID).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}

	if stored.BarberID != nil {
		t.Fatalf("expected no barber, got %d", *stored.BarberID)
	}
	if stored.Status != "pending" {
		t.Fatalf("expected pending, got %q", stored.Status)
	}
	if stored.ServiceType != "haircut" || stored.Notes != "short on the sides" {
		t.Fatalf("optional fields not stored: %+v", stored)
	}

	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	if !stored.BookingTime.Equal(want) {
		t.Fatalf("expected %s, got %s", want, stored.BookingTime)
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "ana")
	salon := testutil.CreateSalon(t, db, user, "north", true)
	b := testutil.CreateBooking(t, db, user, salon, time.Now(), "pending")

	uc := NewUpdateBookingStatus(repository.NewBookingGormRepository(db), audit.Nop{})
	ctx := context.Background()

	t.Run("missing booking", func(t *testing.T) {
		err := uc.Execute(ctx, b.ID+100, "completed")

		var nfe httperr.NotFoundError
		if !errors.As(err, &nfe) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("blank status", func(t *testing.T) {
		err := uc.Execute(ctx, b.ID, "  ")

		var ve httperr.ValidationError
		if !errors.As(err, &ve) || ve.Field != "status" {
			t.Fatalf("expected status ValidationError, got %v", err)
		}
	})

	t.Run("same value twice", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := uc.Execute(ctx, b.ID, "completed"); err != nil {
				t.Fatalf("attempt %d: %v", i+1, err)
			}
		}

		var stored models.Booking
		db.First(&stored, b.ID)
		if stored.Status != "completed" {
			t.Fatalf("expected completed, got %q", stored.Status)
		}
	})

	t.Run("free-form value", func(t *testing.T) {
		if err := uc.Execute(ctx, b.ID, "no_show"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestListUserBookings_DeletedBarberKeepsReference(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "ana")
	salon := testutil.CreateSalon(t, db, user, "north", true)
	barber := testutil.CreateBarber(t, db, salon, "Rui")

	bookings := repository.NewBookingGormRepository(db)
	create := NewCreateBooking(bookings, audit.Nop{})

	if _, err := create.Execute(context.Background(), CreateBookingInput{
		UserID:      user.ID,
		SalonID:     salon.ID,
		BarberID:    &barber.ID,
		BookingTime: "2024-05-01 10:00",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list := NewListUserBookings(bookings)

	before, err := list.Execute(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(before) != 1 || before[0].BarberName == nil || *before[0].BarberName != "Rui" {
		t.Fatalf("unexpected listing before delete: %+v", before)
	}
	if before[0].SalonName == nil || *before[0].SalonName != "north" || before[0].UserName != nil {
		t.Fatalf("user listing should carry salon_name only: %+v", before[0])
	}

	if err := repository.NewBarberGormRepository(db).Delete(context.Background(), barber); err != nil {
		t.Fatalf("delete barber: %v", err)
	}

	after, err := list.Execute(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != 1 {
		t.Fatalf("expected the booking to remain, got %d", len(after))
	}
	if after[0].BarberID == nil || *after[0].BarberID != barber.ID {
		t.Fatalf("stale barber id should be kept: %+v", after[0])
	}
	if after[0].BarberName != nil {
		t.Fatalf("expected null barber_name, got %q", *after[0].BarberName)
	}
}

func TestListUserBookings_UnknownUser(t *testing.T) {
	db := testutil.NewDB(t)

	rows, err := NewListUserBookings(repository.NewBookingGormRepository(db)).
		Execute(context.Background(), 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", rows)
	}
}

func TestListSalonBookings_CarriesUserName(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "ana")
	salon := testutil.CreateSalon(t, db, user, "north", true)
	testutil.CreateBooking(t, db, user, salon, time.Now(), "pending")

	rows, err := NewListSalonBookings(repository.NewBookingGormRepository(db)).
		Execute(context.Background(), salon.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].UserName == nil || *rows[0].UserName != "ana" || rows[0].SalonName != nil {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
