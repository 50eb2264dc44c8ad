package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/shivangiS04/SwasthiQ/internal/domain"
	"github.com/shivangiS04/SwasthiQ/internal/store"
)

func newAppointment(patient, date, timeOfDay string, duration int, doctor string) domain.Appointment {
	return domain.Appointment{
		PatientName:     patient,
		Date:            date,
		Time:            timeOfDay,
		DurationMinutes: duration,
		DoctorName:      doctor,
		Status:          domain.StatusScheduled,
		Mode:            domain.ModeInPerson,
	}
}

func mustCreate(t *testing.T, repo *AppointmentRepo, appt domain.Appointment) domain.Appointment {
	t.Helper()
	created, err := repo.Create(context.Background(), appt)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	return created
}

func TestCreate_AssignsUniqueIDs(t *testing.T) {
	repo := NewAppointmentRepo()

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		created := mustCreate(t, repo, newAppointment("John Smith", "2024-12-27", "09:00", 30, fmt.Sprintf("Dr. %02d", i)))
		if created.ID == "" {
			t.Fatal("created appointment has empty id")
		}
		if !strings.HasPrefix(created.ID, "apt_") {
			t.Fatalf("id = %q, want apt_ prefix", created.ID)
		}
		if _, dup := seen[created.ID]; dup {
			t.Fatalf("duplicate id %q", created.ID)
		}
		seen[created.ID] = struct{}{}
	}
}

func TestCreate_ConflictRejectedEitherOrder(t *testing.T) {
	a := newAppointment("John Smith", "2024-12-27", "09:00", 30, "Dr. A")
	b := newAppointment("Emily Davis", "2024-12-27", "09:15", 30, "Dr. A")

	for _, order := range [][2]domain.Appointment{{a, b}, {b, a}} {
		repo := NewAppointmentRepo()
		first := mustCreate(t, repo, order[0])

		_, err := repo.Create(context.Background(), order[1])
		if err == nil {
			t.Fatal("expected conflict error")
		}
		if !errors.Is(err, store.ErrConflict) {
			t.Fatalf("errors.Is(err, ErrConflict) = false, err = %v", err)
		}
		var conflictErr *store.ConflictError
		if !errors.As(err, &conflictErr) {
			t.Fatalf("error type = %T, want *store.ConflictError", err)
		}
		if len(conflictErr.Conflicts) != 1 || conflictErr.Conflicts[0].ID != first.ID {
			t.Fatalf("conflicts = %+v, want single record %s", conflictErr.Conflicts, first.ID)
		}
	}
}

func TestCreate_AdjacentSlotsBothSucceed(t *testing.T) {
	repo := NewAppointmentRepo()
	mustCreate(t, repo, newAppointment("John Smith", "2024-12-27", "09:00", 30, "Dr. A"))
	mustCreate(t, repo, newAppointment("Emily Davis", "2024-12-27", "09:30", 30, "Dr. A"))

	all, err := repo.List(context.Background(), store.ListFilter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("stored = %d, want 2", len(all))
	}
}

func TestCreate_CancelledSlotFreed(t *testing.T) {
	repo := NewAppointmentRepo()
	first := mustCreate(t, repo, newAppointment("John Smith", "2024-12-27", "09:00", 30, "Dr. A"))

	overlapping := newAppointment("Emily Davis", "2024-12-27", "09:15", 30, "Dr. A")
	if _, err := repo.Create(context.Background(), overlapping); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected conflict before cancellation, got %v", err)
	}

	if _, err := repo.UpdateStatus(context.Background(), first.ID, domain.StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}

	if _, err := repo.Create(context.Background(), overlapping); err != nil {
		t.Fatalf("create after cancellation should succeed, got %v", err)
	}
}

func TestCreate_ConcurrentOverlappingCreates(t *testing.T) {
	repo := NewAppointmentRepo()

	const n = 16
	var wg sync.WaitGroup
	errCh := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(context.Background(), newAppointment("John Smith", "2024-12-27", "09:00", 30, "Dr. A"))
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var ok, conflicts int
	for err := range errCh {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, store.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflicts != n-1 {
		t.Fatalf("successes = %d conflicts = %d, want 1 and %d", ok, conflicts, n-1)
	}
}

func TestList_FiltersAndInsertionOrder(t *testing.T) {
	repo := NewAppointmentRepo()
	ctx := context.Background()
	if err := SeedDemoData(ctx, repo); err != nil {
		t.Fatalf("SeedDemoData error: %v", err)
	}

	all, err := repo.List(ctx, store.ListFilter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 12 {
		t.Fatalf("seeded records = %d, want 12", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("insertion order broken at %d: %s then %s", i, all[i-1].ID, all[i].ID)
		}
	}

	byDate, err := repo.List(ctx, store.ListFilter{Date: "2024-12-27"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(byDate) != 3 {
		t.Fatalf("date filter matches = %d, want 3", len(byDate))
	}
	for _, appt := range byDate {
		if appt.Date != "2024-12-27" {
			t.Fatalf("record %s has date %s", appt.ID, appt.Date)
		}
	}

	combined, err := repo.List(ctx, store.ListFilter{Date: "2024-12-27", DoctorName: "Dr. Michael Chen", Status: "Scheduled"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(combined) != 1 || combined[0].ID != "apt_002" {
		t.Fatalf("combined filter = %+v, want only apt_002", combined)
	}

	none, err := repo.List(ctx, store.ListFilter{Status: "NoSuchStatus"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("unrecognized status matched %d records, want 0", len(none))
	}
}

func TestUpdateStatus_ReplacesOnlyStatus(t *testing.T) {
	repo := NewAppointmentRepo()
	created := mustCreate(t, repo, newAppointment("John Smith", "2024-12-27", "09:00", 30, "Dr. A"))

	updated, err := repo.UpdateStatus(context.Background(), created.ID, domain.StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}

	want := created
	want.Status = domain.StatusConfirmed
	if updated != want {
		t.Fatalf("updated = %+v, want %+v", updated, want)
	}
}

func TestUpdateStatus_NoOpIdempotent(t *testing.T) {
	repo := NewAppointmentRepo()
	created := mustCreate(t, repo, newAppointment("John Smith", "2024-12-27", "09:00", 30, "Dr. A"))

	updated, err := repo.UpdateStatus(context.Background(), created.ID, created.Status)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if updated != created {
		t.Fatalf("no-op update changed record: %+v -> %+v", created, updated)
	}
}

func TestDelete_ThenNotFound(t *testing.T) {
	repo := NewAppointmentRepo()
	keep := mustCreate(t, repo, newAppointment("John Smith", "2024-12-27", "09:00", 30, "Dr. A"))
	gone := mustCreate(t, repo, newAppointment("Emily Davis", "2024-12-27", "10:00", 30, "Dr. A"))

	if err := repo.Delete(context.Background(), gone.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := repo.Delete(context.Background(), gone.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
	if _, err := repo.UpdateStatus(context.Background(), gone.ID, domain.StatusConfirmed); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("update after delete err = %v, want ErrNotFound", err)
	}

	remaining, err := repo.List(context.Background(), store.ListFilter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(remaining) != 1 || remaining[0] != keep {
		t.Fatalf("remaining = %+v, want only %+v untouched", remaining, keep)
	}
}

func TestGet(t *testing.T) {
	repo := NewAppointmentRepo()
	created := mustCreate(t, repo, newAppointment("John Smith", "2024-12-27", "09:00", 30, "Dr. A"))

	got, err := repo.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != created {
		t.Fatalf("got = %+v, want %+v", got, created)
	}

	if _, err := repo.Get(context.Background(), "apt_missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get missing err = %v, want ErrNotFound", err)
	}
}
