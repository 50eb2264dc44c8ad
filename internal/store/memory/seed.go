package memory

import (
	"context"
	"fmt"

	"github.com/shivangiS04/SwasthiQ/internal/domain"
)

// SeedDemoData loads the demo fixture set through Create, so the fixtures go
// through the same conflict checks as real bookings.
func SeedDemoData(ctx context.Context, repo *AppointmentRepo) error {
	for _, appt := range demoAppointments() {
		if _, err := repo.Create(ctx, appt); err != nil {
			return fmt.Errorf("seed appointment %s: %w", appt.ID, err)
		}
	}
	return nil
}

func demoAppointments() []domain.Appointment {
	return []domain.Appointment{
		{ID: "apt_001", PatientName: "John Smith", Date: "2024-12-27", Time: "09:00", DurationMinutes: 30, DoctorName: "Dr. Sarah Johnson", Status: domain.StatusConfirmed, Mode: domain.ModeInPerson},
		{ID: "apt_002", PatientName: "Emily Davis", Date: "2024-12-27", Time: "10:30", DurationMinutes: 45, DoctorName: "Dr. Michael Chen", Status: domain.StatusScheduled, Mode: domain.ModeVirtual},
		{ID: "apt_003", PatientName: "Robert Wilson", Date: "2024-12-28", Time: "14:00", DurationMinutes: 60, DoctorName: "Dr. Sarah Johnson", Status: domain.StatusUpcoming, Mode: domain.ModeInPerson},
		{ID: "apt_004", PatientName: "Lisa Anderson", Date: "2024-12-26", Time: "11:15", DurationMinutes: 30, DoctorName: "Dr. James Rodriguez", Status: domain.StatusConfirmed, Mode: domain.ModePhone},
		{ID: "apt_005", PatientName: "David Brown", Date: "2024-12-29", Time: "08:30", DurationMinutes: 45, DoctorName: "Dr. Michael Chen", Status: domain.StatusScheduled, Mode: domain.ModeVirtual},
		{ID: "apt_006", PatientName: "Jennifer Taylor", Date: "2024-12-26", Time: "15:45", DurationMinutes: 30, DoctorName: "Dr. Sarah Johnson", Status: domain.StatusCancelled, Mode: domain.ModeInPerson},
		{ID: "apt_007", PatientName: "Mark Thompson", Date: "2024-12-30", Time: "13:00", DurationMinutes: 60, DoctorName: "Dr. James Rodriguez", Status: domain.StatusUpcoming, Mode: domain.ModeInPerson},
		{ID: "apt_008", PatientName: "Amanda White", Date: "2024-12-27", Time: "16:30", DurationMinutes: 30, DoctorName: "Dr. Michael Chen", Status: domain.StatusConfirmed, Mode: domain.ModeVirtual},
		{ID: "apt_009", PatientName: "Christopher Lee", Date: "2024-12-25", Time: "10:00", DurationMinutes: 45, DoctorName: "Dr. Sarah Johnson", Status: domain.StatusConfirmed, Mode: domain.ModePhone},
		{ID: "apt_010", PatientName: "Michelle Garcia", Date: "2024-12-28", Time: "09:15", DurationMinutes: 30, DoctorName: "Dr. James Rodriguez", Status: domain.StatusScheduled, Mode: domain.ModeInPerson},
		{ID: "apt_011", PatientName: "Kevin Martinez", Date: "2024-12-31", Time: "11:00", DurationMinutes: 60, DoctorName: "Dr. Michael Chen", Status: domain.StatusUpcoming, Mode: domain.ModeVirtual},
		{ID: "apt_012", PatientName: "Rachel Clark", Date: "2024-12-26", Time: "14:30", DurationMinutes: 45, DoctorName: "Dr. Sarah Johnson", Status: domain.StatusConfirmed, Mode: domain.ModeInPerson},
	}
}
