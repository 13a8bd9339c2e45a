package booking

// ===============================
// Booking Status
// ===============================

// Status is free-form: any non-blank value is accepted and overwrites the
// previous one. The constants below are the values the dashboards count.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}
