package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Status is the appointment lifecycle state. The set is closed: pending is
// the only initial state; scheduled and cancelled are terminal here. Status
// is always derived from the action that produced the write, never taken
// from free-form input.
type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// Action identifies which booking flow a submission came from. The wire
// tags are the ones the booking UI sends.
type Action string

const (
	ActionCreate   Action = "criar"
	ActionSchedule Action = "agendar"
	ActionCancel   Action = "cancelar"
)

// ParseAction maps a wire tag to an Action. Unrecognized tags map to
// ActionSchedule; the schedule flow is the fallback the booking UI relies
// on, kept explicit here rather than hidden in a switch default.
func ParseAction(tag string) Action {
	switch tag {
	case string(ActionCreate):
		return ActionCreate
	case string(ActionCancel):
		return ActionCancel
	default:
		return ActionSchedule
	}
}

// StatusForAction derives the status an action writes. Total and pure:
// every Action maps to exactly one Status.
func StatusForAction(a Action) Status {
	switch a {
	case ActionSchedule:
		return StatusScheduled
	case ActionCancel:
		return StatusCancelled
	default:
		return StatusPending
	}
}

// Appointment maps to the appointment table.
type Appointment struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	PatientID          uuid.UUID `db:"patient_id" json:"patientId"`
	UserID             uuid.UUID `db:"user_id" json:"userId"`
	PrimaryPhysician   string    `db:"primary_physician" json:"primaryPhysician"`
	Schedule           time.Time `db:"schedule" json:"schedule"`
	Status             Status    `db:"status" json:"status"`
	Reason             string    `db:"reason" json:"reason"`
	Note               *string   `db:"note" json:"note,omitempty"`
	CancellationReason *string   `db:"cancellation_reason" json:"cancellationReason,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}

// Summary carries the status counts shown on the admin dashboard.
type Summary struct {
	ScheduledCount int `json:"scheduledCount"`
	PendingCount   int `json:"pendingCount"`
	CancelledCount int `json:"cancelledCount"`
}
