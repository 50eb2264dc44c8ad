package domain

import "time"

// Slot is a requested booking window: a doctor, a date and a start time plus
// duration. It is what the conflict check compares against stored appointments.
type Slot struct {
	DoctorName      string
	Date            string
	Time            string
	DurationMinutes int
}

// Interval returns the half-open [start, end) range the slot would occupy.
func (s Slot) Interval() (start, end time.Time, err error) {
	return interval(s.Date, s.Time, s.DurationMinutes)
}

// FindConflicts returns every appointment in existing that overlaps the
// candidate slot. Only appointments for the same doctor on the same date are
// considered, and cancelled appointments never conflict. Overlap uses the
// half-open rule: [a, b) and [c, d) collide iff a < d && c < b, so an
// appointment ending exactly when the next begins is not a conflict.
func FindConflicts(candidate Slot, existing []Appointment) []Appointment {
	start, end, err := candidate.Interval()
	if err != nil {
		return nil
	}

	var conflicts []Appointment
	for _, appt := range existing {
		if appt.DoctorName != candidate.DoctorName || appt.Date != candidate.Date {
			continue
		}
		if appt.Status == StatusCancelled {
			continue
		}
		existingStart, existingEnd, err := appt.Interval()
		if err != nil {
			continue
		}
		if start.Before(existingEnd) && existingStart.Before(end) {
			conflicts = append(conflicts, appt)
		}
	}
	return conflicts
}
