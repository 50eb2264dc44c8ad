package domain

// Display buckets for dashboard tab filtering. The predicates are independent
// and may overlap; callers pick one per tab. The today argument is a date in
// DateLayout form, so lexicographic comparison orders correctly.

func (a Appointment) IsToday(today string) bool {
	return a.Date == today
}

func (a Appointment) IsUpcoming(today string) bool {
	return a.Date > today || a.Status == StatusUpcoming
}

func (a Appointment) IsPast(today string) bool {
	return a.Date < today
}
