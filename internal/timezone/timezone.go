package timezone

import (
	"sync/atomic"
	"time"
)

const DefaultTimezone = "UTC"

var appLocation atomic.Pointer[time.Location]

// SetDefault sets the application timezone used for calendar-day math and
// for naive timestamps. Unknown names are rejected and leave it unchanged.
func SetDefault(tz string) bool {
	if !IsValid(tz) {
		return false
	}
	loc, _ := time.LoadLocation(tz)
	appLocation.Store(loc)
	return true
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Default returns the application timezone, UTC until SetDefault is called.
func Default() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return Default()
}

func Now() time.Time {
	return time.Now().In(Default())
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
