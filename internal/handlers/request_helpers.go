package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// Clock is injected into handlers that compute time windows.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return systemClock
	}
	return c
}

// pathID reads a positive integer path parameter. On failure it writes a
// 400 and returns false.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.Respond(c, httperr.ErrInvalid(name, name+" must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}

// bindJSON binds the body into req. On failure it writes a 400 describing
// the first bad field and returns false.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Respond(c, validators.Describe(err))
		return false
	}
	return true
}

func pageParams(c *gin.Context) pagination.Params {
	return pagination.Parse(c.Query("page"), c.Query("per_page"))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
