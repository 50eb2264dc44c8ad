package appointments

import (
	"strings"
	"time"

	"github.com/shivangiS04/SwasthiQ/internal/domain"
)

const maxDurationMinutes = 480

// ValidationError carries every field-level problem found in a payload.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "invalid appointment data"
	}
	return strings.Join(e.Errors, "; ")
}

func validationError(msg string) error {
	return &ValidationError{Errors: []string{msg}}
}

// validateCreateInput checks required fields first and stops there if any are
// missing, matching the wire field names in its messages. Format and domain
// checks run only on a structurally complete payload.
func validateCreateInput(in CreateInput) []string {
	var errs []string

	if strings.TrimSpace(in.PatientName) == "" {
		errs = append(errs, "missing required field: patient_name")
	}
	if in.Date == "" {
		errs = append(errs, "missing required field: date")
	}
	if in.Time == "" {
		errs = append(errs, "missing required field: time")
	}
	if in.DurationMinutes == 0 {
		errs = append(errs, "missing required field: duration")
	}
	if strings.TrimSpace(in.DoctorName) == "" {
		errs = append(errs, "missing required field: doctor_name")
	}
	if in.Mode == "" {
		errs = append(errs, "missing required field: mode")
	}
	if len(errs) > 0 {
		return errs
	}

	if len(strings.TrimSpace(in.PatientName)) < 2 {
		errs = append(errs, "patient_name must be at least 2 characters long")
	}
	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		errs = append(errs, "date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(domain.TimeLayout, in.Time); err != nil {
		errs = append(errs, "time must be in HH:MM format")
	}
	if in.DurationMinutes < 0 || in.DurationMinutes > maxDurationMinutes {
		errs = append(errs, "duration must be a positive integer between 1 and 480 minutes")
	}
	if len(strings.TrimSpace(in.DoctorName)) < 2 {
		errs = append(errs, "doctor_name must be at least 2 characters long")
	}
	if !domain.Mode(in.Mode).Valid() {
		errs = append(errs, "mode must be one of: "+joinModes())
	}
	if in.Status != "" && !domain.Status(in.Status).Valid() {
		errs = append(errs, "status must be one of: "+joinStatuses())
	}

	return errs
}

func joinModes() string {
	modes := domain.Modes()
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}

func joinStatuses() string {
	statuses := domain.Statuses()
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
