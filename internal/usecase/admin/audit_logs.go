package admin

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain/auditlog"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type AuditLogQuery struct {
	Action string
	Entity string
	From   string // YYYY-MM-DD, inclusive
	To     string // YYYY-MM-DD, inclusive
}

type ListAuditLogs struct {
	logs auditlog.Repository
}

func NewListAuditLogs(logs auditlog.Repository) *ListAuditLogs {
	return &ListAuditLogs{logs: logs}
}

func (uc *ListAuditLogs) Execute(
	ctx context.Context,
	q AuditLogQuery,
	p pagination.Params,
) (pagination.Page[models.AuditLog], error) {

	f := auditlog.Filter{
		Action: strings.TrimSpace(q.Action),
		Entity: strings.TrimSpace(q.Entity),
	}

	if q.From != "" {
		from, err := parseDay(q.From)
		if err != nil {
			return pagination.Page[models.AuditLog]{}, httperr.ErrInvalid("from", "from must be YYYY-MM-DD")
		}
		f.From = &from
	}

	if q.To != "" {
		to, err := parseDay(q.To)
		if err != nil {
			return pagination.Page[models.AuditLog]{}, httperr.ErrInvalid("to", "to must be YYYY-MM-DD")
		}
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	logs, total, err := uc.logs.Page(ctx, f, p)
	if err != nil {
		return pagination.Page[models.AuditLog]{}, err
	}
	return pagination.New(logs, total, p), nil
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(s), timezone.Default())
}
