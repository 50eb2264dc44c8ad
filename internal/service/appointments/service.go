package appointments

import (
	"context"
	"strings"

	"github.com/shivangiS04/SwasthiQ/internal/domain"
	"github.com/shivangiS04/SwasthiQ/internal/store"
)

type Service struct {
	repo store.AppointmentRepository
}

func NewService(repo store.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the creation payload as it arrives off the wire. Status
// and Mode are plain strings here; the validator checks them against the
// closed enums before a typed record is built.
type CreateInput struct {
	PatientName     string
	Date            string
	Time            string
	DurationMinutes int
	DoctorName      string
	Mode            string
	Status          string
}

// Create validates the payload, then hands the record to the repository, which
// performs the conflict check and the append atomically. On validation failure
// a *ValidationError is returned and nothing is stored; on an overlapping slot
// the repository returns a *store.ConflictError carrying the collisions.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Appointment, error) {
	if errs := validateCreateInput(in); len(errs) > 0 {
		return domain.Appointment{}, &ValidationError{Errors: errs}
	}

	status := domain.Status(in.Status)
	if in.Status == "" {
		status = domain.StatusScheduled
	}

	return s.repo.Create(ctx, domain.Appointment{
		PatientName:     strings.TrimSpace(in.PatientName),
		Date:            in.Date,
		Time:            in.Time,
		DurationMinutes: in.DurationMinutes,
		DoctorName:      strings.TrimSpace(in.DoctorName),
		Status:          status,
		Mode:            domain.Mode(in.Mode),
	})
}

// List returns stored appointments matching every set filter field, in
// insertion order.
func (s *Service) List(ctx context.Context, filter store.ListFilter) ([]domain.Appointment, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) UpdateStatus(ctx context.Context, id, newStatus string) (domain.Appointment, error) {
	if id == "" {
		return domain.Appointment{}, validationError("appointment id is required")
	}
	status := domain.Status(newStatus)
	if !status.Valid() {
		return domain.Appointment{}, validationError("invalid status value: " + newStatus)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return validationError("appointment id is required")
	}
	return s.repo.Delete(ctx, id)
}
