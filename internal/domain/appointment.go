package domain

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusConfirmed Status = "Confirmed"
	StatusUpcoming  Status = "Upcoming"
	StatusCancelled Status = "Cancelled"
)

func Statuses() []Status {
	return []Status{StatusConfirmed, StatusScheduled, StatusUpcoming, StatusCancelled}
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusUpcoming, StatusCancelled:
		return true
	}
	return false
}

type Mode string

const (
	ModeInPerson Mode = "In-person"
	ModeVirtual  Mode = "Virtual"
	ModePhone    Mode = "Phone"
)

func Modes() []Mode {
	return []Mode{ModeInPerson, ModeVirtual, ModePhone}
}

func (m Mode) Valid() bool {
	switch m {
	case ModeInPerson, ModeVirtual, ModePhone:
		return true
	}
	return false
}

// Appointment is one booked slot on a doctor's calendar. Date and Time are
// naive local values in DateLayout/TimeLayout form; no time zone is modeled.
type Appointment struct {
	ID              string
	PatientName     string
	Date            string
	Time            string
	DurationMinutes int
	DoctorName      string
	Status          Status
	Mode            Mode
}

// Interval returns the half-open [start, end) range the appointment occupies.
func (a Appointment) Interval() (start, end time.Time, err error) {
	return interval(a.Date, a.Time, a.DurationMinutes)
}

func interval(date, timeOfDay string, durationMinutes int) (start, end time.Time, err error) {
	start, err = time.Parse(DateLayout+" "+TimeLayout, date+" "+timeOfDay)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = start.Add(time.Duration(durationMinutes) * time.Minute)
	return start, end, nil
}
