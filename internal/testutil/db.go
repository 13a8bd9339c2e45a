// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

var dbSeq atomic.Int64

// NewDB returns a migrated in-memory sqlite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:test_%d?mode=memory&cache=shared&_foreign_keys=1", dbSeq.Add(1))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })

	return gdb
}

func CreateUser(t *testing.T, gdb *gorm.DB, username string) *models.User {
	t.Helper()

	u := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func CreateSalon(t *testing.T, gdb *gorm.DB, owner *models.User, name string, approved bool) *models.Salon {
	t.Helper()

	s := &models.Salon{
		Name:    name,
		Address: name + " street",
		Phone:   "phone-" + name,
		Email:   name + "@salon.example.com",
		OwnerID: owner.ID,
	}
	if err := gdb.Omit("Owner", "Barbers").Create(s).Error; err != nil {
		t.Fatalf("create salon: %v", err)
	}
	// default:false on the column means a false value is skipped on insert,
	// so the flag is written explicitly.
	if err := gdb.Model(s).Update("is_approved", approved).Error; err != nil {
		t.Fatalf("set approval: %v", err)
	}
	s.IsApproved = approved
	return s
}

func CreateBarber(t *testing.T, gdb *gorm.DB, salon *models.Salon, name string) *models.Barber {
	t.Helper()

	b := &models.Barber{Name: name, SalonID: salon.ID}
	if err := gdb.Create(b).Error; err != nil {
		t.Fatalf("create barber: %v", err)
	}
	return b
}

func CreateBooking(t *testing.T, gdb *gorm.DB, user *models.User, salon *models.Salon, at time.Time, status string) *models.Booking {
	t.Helper()

	b := &models.Booking{
		UserID:      user.ID,
		SalonID:     salon.ID,
		BookingTime: at.UTC(),
		Status:      status,
	}
	if err := gdb.Omit("User", "Salon").Create(b).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}
