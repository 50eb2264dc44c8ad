package store

import (
	"context"

	"github.com/shivangiS04/SwasthiQ/internal/domain"
)

// ListFilter narrows a listing. Empty fields match everything; set fields are
// exact-match equality tests combined with AND. Status is a raw string so an
// unrecognized value simply matches nothing.
type ListFilter struct {
	Date       string
	Status     string
	DoctorName string
}

type AppointmentRepository interface {
	// Create checks the appointment's slot for conflicts, assigns an ID when
	// none is set, and appends the record. The whole check-then-commit sequence
	// is atomic with respect to every other repository operation.
	Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	List(ctx context.Context, filter ListFilter) ([]domain.Appointment, error)
	Get(ctx context.Context, id string) (domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}
