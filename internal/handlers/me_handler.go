package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	ucAccount "github.com/BruksfildServices01/salon-booking/internal/usecase/account"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

type MeHandler struct {
	me       *ucAccount.Me
	bookings *ucBooking.ListUserBookings
}

func NewMeHandler(me *ucAccount.Me, bookings *ucBooking.ListUserBookings) *MeHandler {
	return &MeHandler{me: me, bookings: bookings}
}

func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return 0, false
	}
	return userID, true
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	out, err := h.me.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *MeHandler) Bookings(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	bookings, err := h.bookings.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, "bookings", bookings)
}
