package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucDashboard "github.com/BruksfildServices01/salon-booking/internal/usecase/dashboard"
)

type DashboardHandler struct {
	dashboard *ucDashboard.SalonDashboard
	analytics *ucDashboard.SalonAnalytics
	now       Clock
}

func NewDashboardHandler(
	dashboard *ucDashboard.SalonDashboard,
	analytics *ucDashboard.SalonAnalytics,
	now Clock,
) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		analytics: analytics,
		now:       clockOrSystem(now),
	}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	salonID, ok := pathID(c, "salon_id")
	if !ok {
		return
	}

	out, err := h.dashboard.Execute(c.Request.Context(), salonID, h.now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) Analytics(c *gin.Context) {
	salonID, ok := pathID(c, "salon_id")
	if !ok {
		return
	}

	out, err := h.analytics.Execute(c.Request.Context(), salonID, h.now())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}
