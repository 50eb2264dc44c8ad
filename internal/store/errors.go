package store

import (
	"errors"
	"fmt"

	"github.com/shivangiS04/SwasthiQ/internal/domain"
)

var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// ConflictError reports a rejected booking along with every stored appointment
// that overlaps the requested slot. It matches ErrConflict under errors.Is.
type ConflictError struct {
	Requested domain.Slot
	Conflicts []domain.Appointment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time conflict for %s on %s: %d overlapping appointment(s)",
		e.Requested.DoctorName, e.Requested.Date, len(e.Conflicts))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
