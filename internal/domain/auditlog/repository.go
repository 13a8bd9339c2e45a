package auditlog

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

type Filter struct {
	Action string
	Entity string
	From   *time.Time // inclusive, on created_at
	To     *time.Time // exclusive, on created_at
}

type Repository interface {
	// Page lists entries newest first.
	Page(
		ctx context.Context,
		f Filter,
		p pagination.Params,
	) ([]models.AuditLog, int64, error)
}
