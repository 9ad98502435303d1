package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ggabbo/gabohealth/internal/domain/physician"
	"github.com/ggabbo/gabohealth/pkg/validation"
)

type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

// UpdateRequest carries one reschedule or cancellation submission. Action
// picks the schema and the derived status; the remaining fields are the
// mutable subset the form is allowed to change.
type UpdateRequest struct {
	ID                 uuid.UUID
	Action             Action
	PrimaryPhysician   string
	Schedule           time.Time
	Reason             string
	Note               *string
	CancellationReason *string
}

// Create validates a booking submission and writes it. The stored status is
// always the one the create action derives, regardless of what the caller
// put in the struct.
func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	e := CreateSchema(a)
	s.checkRoster(e, a.PrimaryPhysician)
	if err := e.AsError(); err != nil {
		return err
	}

	a.Status = StatusForAction(ActionCreate)
	return s.appointments.Create(ctx, a)
}

// Update applies a reschedule or cancellation to an existing appointment.
// The status is derived from the action; physician and schedule are taken
// from the submission as-is, so a reschedule moves the appointment and a
// cancellation keeps whatever the form carried.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	candidate := *a
	candidate.PrimaryPhysician = req.PrimaryPhysician
	candidate.Schedule = req.Schedule
	candidate.CancellationReason = req.CancellationReason
	if req.Reason != "" {
		candidate.Reason = req.Reason
	}
	if req.Note != nil {
		candidate.Note = req.Note
	}

	e := SchemaFor(req.Action)(&candidate)
	if req.Action != ActionCancel {
		s.checkRoster(e, candidate.PrimaryPhysician)
	}
	if err := e.AsError(); err != nil {
		return nil, err
	}

	candidate.Status = StatusForAction(req.Action)
	if err := s.appointments.Update(ctx, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID)
}

// Summarize counts appointments per status for the dashboard cards.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	scheduled, err := s.appointments.CountByStatus(ctx, StatusScheduled)
	if err != nil {
		return nil, err
	}
	pending, err := s.appointments.CountByStatus(ctx, StatusPending)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.appointments.CountByStatus(ctx, StatusCancelled)
	if err != nil {
		return nil, err
	}
	return &Summary{
		ScheduledCount: scheduled,
		PendingCount:   pending,
		CancelledCount: cancelled,
	}, nil
}

// checkRoster rejects physicians outside the published team. Cancellation
// skips this so a cancel for a since-removed physician still goes through.
func (s *Service) checkRoster(e validation.Errors, name string) {
	if name == "" {
		return
	}
	if !physician.IsKnown(name) {
		e.Set("primaryPhysician", "Selecione um assistente da equipe")
	}
}
