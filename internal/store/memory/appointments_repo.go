// Package memory holds appointments in an in-process ordered collection. It
// stands in for a relational database: the repository interface it implements
// is the seam a SQL-backed implementation would slot into later.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/shivangiS04/SwasthiQ/internal/domain"
	"github.com/shivangiS04/SwasthiQ/internal/store"
)

type AppointmentRepo struct {
	mu    sync.RWMutex
	appts []domain.Appointment
}

func NewAppointmentRepo() *AppointmentRepo {
	return &AppointmentRepo{}
}

// Create runs the conflict check and the append under one write lock, so two
// overlapping creates can never both pass the check. When appt.ID is empty a
// fresh id is generated and re-generated on the off chance it is already taken.
func (r *AppointmentRepo) Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot := domain.Slot{
		DoctorName:      appt.DoctorName,
		Date:            appt.Date,
		Time:            appt.Time,
		DurationMinutes: appt.DurationMinutes,
	}
	if conflicts := domain.FindConflicts(slot, r.appts); len(conflicts) > 0 {
		return domain.Appointment{}, &store.ConflictError{Requested: slot, Conflicts: conflicts}
	}

	if appt.ID == "" {
		appt.ID = newAppointmentID()
		for r.indexOf(appt.ID) >= 0 {
			appt.ID = newAppointmentID()
		}
	} else if r.indexOf(appt.ID) >= 0 {
		return domain.Appointment{}, fmt.Errorf("appointment id %q already exists: %w", appt.ID, store.ErrConflict)
	}

	r.appts = append(r.appts, appt)
	return appt, nil
}

// List returns matching appointments in insertion order.
func (r *AppointmentRepo) List(ctx context.Context, filter store.ListFilter) ([]domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Appointment, 0, len(r.appts))
	for _, appt := range r.appts {
		if filter.Date != "" && appt.Date != filter.Date {
			continue
		}
		if filter.Status != "" && string(appt.Status) != filter.Status {
			continue
		}
		if filter.DoctorName != "" && appt.DoctorName != filter.DoctorName {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (r *AppointmentRepo) Get(ctx context.Context, id string) (domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Appointment{}, store.ErrNotFound
	}
	return r.appts[i], nil
}

// UpdateStatus replaces the stored record with a copy differing only in
// status; the record keeps its position in the collection.
func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Appointment{}, store.ErrNotFound
	}

	updated := r.appts[i]
	updated.Status = status
	r.appts[i] = updated
	return updated, nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return store.ErrNotFound
	}
	r.appts = append(r.appts[:i], r.appts[i+1:]...)
	return nil
}

// indexOf must be called with at least the read lock held.
func (r *AppointmentRepo) indexOf(id string) int {
	for i, appt := range r.appts {
		if appt.ID == id {
			return i
		}
	}
	return -1
}

func newAppointmentID() string {
	u := uuid.New()
	return fmt.Sprintf("apt_%x", u[:4])
}
