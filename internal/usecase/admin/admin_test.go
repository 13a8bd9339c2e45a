package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
	"github.com/BruksfildServices01/salon-booking/internal/testutil"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
)

func TestDashboard_Counts(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Now().UTC()

	fresh := testutil.CreateUser(t, db, "fresh")
	old := testutil.CreateUser(t, db, "old")
	if err := db.Model(old).Update("created_at", now.AddDate(0, 0, -30)).Error; err != nil {
		t.Fatalf("backdate user: %v", err)
	}

	north := testutil.CreateSalon(t, db, fresh, "north", true)
	testutil.CreateSalon(t, db, fresh, "south", false)
	testutil.CreateSalon(t, db, old, "east", false)

	testutil.CreateBooking(t, db, fresh, north, now.AddDate(0, 0, -1), "pending")
	testutil.CreateBooking(t, db, fresh, north, now.AddDate(0, 0, -20), "completed")

	uc := NewDashboard(
		repository.NewUserGormRepository(db),
		repository.NewSalonGormRepository(db),
		repository.NewBookingGormRepository(db),
	)

	got, err := uc.Execute(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TotalUsers != 2 || got.RecentUsers != 1 {
		t.Fatalf("unexpected user counts: %+v", got)
	}
	if got.TotalSalons != 3 || got.ApprovedSalons != 1 || got.PendingSalons != 2 {
		t.Fatalf("unexpected salon counts: %+v", got)
	}
	if got.TotalBookings != 2 || got.RecentBookings != 1 {
		t.Fatalf("unexpected booking counts: %+v", got)
	}
}

func TestListSalons_Pagination(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	for _, name := range []string{"a", "b", "c"} {
		testutil.CreateSalon(t, db, owner, name, name != "b")
	}

	uc := NewListSalons(repository.NewSalonGormRepository(db))

	page, err := uc.Execute(context.Background(), "", pagination.Params{Page: 2, PerPage: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Items) != 1 || page.Total != 3 || page.Pages != 3 || page.CurrentPage != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Items[0].Name != "b" || page.Items[0].OwnerName != "owner" {
		t.Fatalf("unexpected item: %+v", page.Items[0])
	}

	pending, err := uc.Execute(context.Background(), "pending", pagination.Params{Page: 1, PerPage: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending.Total != 1 || pending.Items[0].Name != "b" || pending.Items[0].IsApproved {
		t.Fatalf("unexpected pending page: %+v", pending)
	}
}

func TestListSalons_Empty(t *testing.T) {
	db := testutil.NewDB(t)

	page, err := NewListSalons(repository.NewSalonGormRepository(db)).
		Execute(context.Background(), "approved", pagination.Params{Page: 1, PerPage: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 0 || page.Pages != 0 || len(page.Items) != 0 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestListUsers_BookingCounts(t *testing.T) {
	db := testutil.NewDB(t)
	ana := testutil.CreateUser(t, db, "ana")
	testutil.CreateUser(t, db, "bia")
	salon := testutil.CreateSalon(t, db, ana, "north", true)
	testutil.CreateBooking(t, db, ana, salon, time.Now(), "pending")
	testutil.CreateBooking(t, db, ana, salon, time.Now(), "pending")

	page, err := NewListUsers(repository.NewUserGormRepository(db)).
		Execute(context.Background(), pagination.Params{Page: 1, PerPage: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.Total != 2 || len(page.Items) != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Items[0].Username != "ana" || page.Items[0].BookingsCount != 2 {
		t.Fatalf("unexpected first user: %+v", page.Items[0])
	}
	if page.Items[1].BookingsCount != 0 {
		t.Fatalf("unexpected second user: %+v", page.Items[1])
	}
}

func TestListBookings_StatusAndOrder(t *testing.T) {
	db := testutil.NewDB(t)
	ana := testutil.CreateUser(t, db, "ana")
	salon := testutil.CreateSalon(t, db, ana, "north", true)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	early := testutil.CreateBooking(t, db, ana, salon, base, "pending")
	late := testutil.CreateBooking(t, db, ana, salon, base.Add(48*time.Hour), "pending")
	testutil.CreateBooking(t, db, ana, salon, base.Add(24*time.Hour), "completed")

	page, err := NewListBookings(repository.NewBookingGormRepository(db)).
		Execute(context.Background(), "pending", pagination.Params{Page: 1, PerPage: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.Total != 2 || len(page.Items) != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Items[0].ID != late.ID || page.Items[1].ID != early.ID {
		t.Fatalf("expected newest booking_time first, got %d then %d", page.Items[0].ID, page.Items[1].ID)
	}
	if *page.Items[0].UserName != "ana" || *page.Items[0].SalonName != "north" {
		t.Fatalf("admin view carries both names: %+v", page.Items[0])
	}
}

func TestAnalytics(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	now := time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)

	// Seven salons with 1..7 bookings each, all on the same two days.
	for i := 1; i <= 7; i++ {
		s := testutil.CreateSalon(t, db, owner, fmt.Sprintf("salon-%d", i), true)
		for j := 0; j < i; j++ {
			day := now.AddDate(0, 0, -1-(j%2))
			testutil.CreateBooking(t, db, owner, s, day, "pending")
		}
	}
	testutil.CreateSalon(t, db, owner, "empty", true)
	// Outside the 30-day trend.
	old := testutil.CreateSalon(t, db, owner, "old", true)
	testutil.CreateBooking(t, db, owner, old, now.AddDate(0, 0, -60), "completed")

	uc := NewAnalytics(
		repository.NewSalonGormRepository(db),
		repository.NewBookingGormRepository(db),
	)

	got, err := uc.Execute(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.TopSalons) != 5 {
		t.Fatalf("expected top 5, got %d", len(got.TopSalons))
	}
	for i := 1; i < len(got.TopSalons); i++ {
		if got.TopSalons[i-1].BookingCount < got.TopSalons[i].BookingCount {
			t.Fatalf("top salons not descending: %+v", got.TopSalons)
		}
	}
	if got.TopSalons[0].SalonName != "salon-7" || got.TopSalons[0].BookingCount != 7 {
		t.Fatalf("unexpected leader: %+v", got.TopSalons[0])
	}

	if len(got.DailyBookings) != 2 {
		t.Fatalf("expected two days, got %+v", got.DailyBookings)
	}
	if got.DailyBookings[0].Date != "2024-05-29" || got.DailyBookings[1].Date != "2024-05-30" {
		t.Fatalf("expected ascending dates, got %+v", got.DailyBookings)
	}
	if got.DailyBookings[0].Count+got.DailyBookings[1].Count != 28 {
		t.Fatalf("unexpected totals: %+v", got.DailyBookings)
	}
}

func TestModeration_Scenario(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	s := testutil.CreateSalon(t, db, owner, "north", false)

	salons := repository.NewSalonGormRepository(db)
	list := ucSalon.NewListApprovedSalons(salons)
	moderate := NewModerateSalon(salons, audit.Nop{})
	ctx := context.Background()

	listed := func() bool {
		out, err := list.Execute(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for _, item := range out {
			if item.ID == s.ID {
				return true
			}
		}
		return false
	}

	if listed() {
		t.Fatal("unapproved salon must not be listed")
	}

	if err := moderate.Approve(ctx, s.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !listed() {
		t.Fatal("approved salon must be listed")
	}

	if err := moderate.Reject(ctx, s.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if listed() {
		t.Fatal("rejected salon must not be listed")
	}

	err := moderate.Approve(ctx, s.ID+100)
	var nfe httperr.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListAuditLogs(t *testing.T) {
	db := testutil.NewDB(t)
	logger := audit.New(db)
	ctx := context.Background()

	for _, action := range []string{"salon_approved", "salon_rejected", "salon_approved"} {
		if err := logger.Log(ctx, audit.Event{Action: action, Entity: "salon"}); err != nil {
			t.Fatalf("log: %v", err)
		}
	}
	old := models.AuditLog{Action: "salon_approved", Entity: "salon", CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	uc := NewListAuditLogs(repository.NewAuditLogGormRepository(db))
	p := pagination.Params{Page: 1, PerPage: 20}

	page, err := uc.Execute(ctx, AuditLogQuery{Action: "salon_approved"}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("expected 3 approvals, got %d", page.Total)
	}

	page, err = uc.Execute(ctx, AuditLogQuery{From: "2020-01-01", To: "2020-01-01"}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != old.ID {
		t.Fatalf("expected only the old entry, got %+v", page.Items)
	}

	_, err = uc.Execute(ctx, AuditLogQuery{From: "01/01/2020"}, p)
	var ve httperr.ValidationError
	if !errors.As(err, &ve) || ve.Field != "from" {
		t.Fatalf("expected from ValidationError, got %v", err)
	}
}
