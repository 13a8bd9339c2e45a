package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucAdmin "github.com/BruksfildServices01/salon-booking/internal/usecase/admin"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	dashboard *ucAdmin.Dashboard
	users     *ucAdmin.ListUsers
	salons    *ucAdmin.ListSalons
	bookings  *ucAdmin.ListBookings
	analytics *ucAdmin.Analytics
	moderate  *ucAdmin.ModerateSalon
	now       Clock
}

type AdminUseCases struct {
	Dashboard *ucAdmin.Dashboard
	Users     *ucAdmin.ListUsers
	Salons    *ucAdmin.ListSalons
	Bookings  *ucAdmin.ListBookings
	Analytics *ucAdmin.Analytics
	Moderate  *ucAdmin.ModerateSalon
}

func NewAdminHandler(uc AdminUseCases, now Clock) *AdminHandler {
	return &AdminHandler{
		dashboard: uc.Dashboard,
		users:     uc.Users,
		salons:    uc.Salons,
		bookings:  uc.Bookings,
		analytics: uc.Analytics,
		moderate:  uc.Moderate,
		now:       clockOrSystem(now),
	}
}

// ======================================================
// OVERVIEW
// ======================================================

func (h *AdminHandler) Dashboard(c *gin.Context) {
	out, err := h.dashboard.Execute(c.Request.Context(), h.now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *AdminHandler) Analytics(c *gin.Context) {
	out, err := h.analytics.Execute(c.Request.Context(), h.now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AdminHandler) Users(c *gin.Context) {
	page, err := h.users.Execute(c.Request.Context(), pageParams(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paginated(c, "users", page)
}

// Salons accepts ?status=approved|pending.
func (h *AdminHandler) Salons(c *gin.Context) {
	page, err := h.salons.Execute(c.Request.Context(), c.Query("status"), pageParams(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paginated(c, "salons", page)
}

func (h *AdminHandler) Bookings(c *gin.Context) {
	page, err := h.bookings.Execute(c.Request.Context(), c.Query("status"), pageParams(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paginated(c, "bookings", page)
}

// ======================================================
// MODERATION
// ======================================================

func (h *AdminHandler) ApproveSalon(c *gin.Context) {
	salonID, ok := pathID(c, "salon_id")
	if !ok {
		return
	}
	if err := h.moderate.Approve(c.Request.Context(), salonID); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Salon approved successfully")
}

func (h *AdminHandler) RejectSalon(c *gin.Context) {
	salonID, ok := pathID(c, "salon_id")
	if !ok {
		return
	}
	if err := h.moderate.Reject(c.Request.Context(), salonID); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Salon rejected successfully")
}
