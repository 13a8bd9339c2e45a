package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	updateStatus *ucBooking.UpdateBookingStatus
	listByUser   *ucBooking.ListUserBookings
	listBySalon  *ucBooking.ListSalonBookings
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateBookingStatus,
	listByUser *ucBooking.ListUserBookings,
	listBySalon *ucBooking.ListSalonBookings,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		updateStatus: updateStatus,
		listByUser:   listByUser,
		listBySalon:  listBySalon,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Ids are pointers so a missing field reaches the use case as 0 and is
// reported as required.
type CreateBookingRequest struct {
	UserID      *uint  `json:"user_id"`
	SalonID     *uint  `json:"salon_id"`
	BarberID    *uint  `json:"barber_id"`
	BookingTime string `json:"booking_time"`
	ServiceType string `json:"service_type"`
	Notes       string `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status *string `json:"status"`
}

func derefID(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:      derefID(req.UserID),
		SalonID:     derefID(req.SalonID),
		BarberID:    req.BarberID,
		BookingTime: req.BookingTime,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":    "Booking created successfully",
		"booking_id": b.ID,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	bookingID, ok := pathID(c, "booking_id")
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.updateStatus.Execute(c.Request.Context(), bookingID, deref(req.Status)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Booking status updated successfully")
}

// ======================================================
// LISTINGS
// ======================================================

func (h *BookingHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	bookings, err := h.listByUser.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, "bookings", bookings)
}

func (h *BookingHandler) ListBySalon(c *gin.Context) {
	salonID, ok := pathID(c, "salon_id")
	if !ok {
		return
	}

	bookings, err := h.listBySalon.Execute(c.Request.Context(), salonID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, "bookings", bookings)
}
