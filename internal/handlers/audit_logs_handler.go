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

type AuditLogsHandler struct {
	list *ucAdmin.ListAuditLogs
}

func NewAuditLogsHandler(list *ucAdmin.ListAuditLogs) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

// List supports ?action=&entity=&from=YYYY-MM-DD&to=YYYY-MM-DD plus
// page/per_page.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := ucAdmin.AuditLogQuery{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}

	page, err := h.list.Execute(c.Request.Context(), q, pageParams(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Paginated(c, "logs", page)
}
