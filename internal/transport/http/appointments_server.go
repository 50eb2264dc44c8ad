package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shivangiS04/SwasthiQ/internal/domain"
	"github.com/shivangiS04/SwasthiQ/internal/service/appointments"
	"github.com/shivangiS04/SwasthiQ/internal/store"
)

type AppointmentsServer struct {
	svc appointmentsService
	log *slog.Logger
}

type appointmentsService interface {
	Create(ctx context.Context, in appointments.CreateInput) (domain.Appointment, error)
	List(ctx context.Context, filter store.ListFilter) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id, newStatus string) (domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

func NewAppointmentsServer(svc appointmentsService, log *slog.Logger) *AppointmentsServer {
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentsServer{
		svc: svc,
		log: log.With(slog.String("component", "http.appointments")),
	}
}

func (s *AppointmentsServer) ListAppointments(w http.ResponseWriter, r *http.Request) {
	log := s.log.With(slog.String("handler", "ListAppointments"))

	q := r.URL.Query()
	filter := store.ListFilter{
		Date:       q.Get("date"),
		Status:     q.Get("status"),
		DoctorName: q.Get("doctor_name"),
	}

	appts, err := s.svc.List(r.Context(), filter)
	if err != nil {
		log.Error("appointments list failed", slog.Any("err", err))
		writeServerError(w)
		return
	}

	out := make([]appointmentJSON, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointmentJSON(a))
	}

	log.Debug("appointments listed",
		slog.Int("count", len(out)),
		slog.String("date", filter.Date),
		slog.String("status", filter.Status),
		slog.String("doctor_name", filter.DoctorName),
	)
	writeData(w, http.StatusOK, out)
}

type createAppointmentRequest struct {
	PatientName     string `json:"patient_name"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration"`
	DoctorName      string `json:"doctor_name"`
	Mode            string `json:"mode"`
	Status          string `json:"status"`
}

func (s *AppointmentsServer) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	log := s.log.With(slog.String("handler", "CreateAppointment"))

	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_json"), slog.Any("err", err))
		writeError(w, http.StatusBadRequest, codeValidation, "request body must be a valid JSON appointment", nil)
		return
	}

	appt, err := s.svc.Create(r.Context(), appointments.CreateInput{
		PatientName:     req.PatientName,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		DoctorName:      req.DoctorName,
		Mode:            req.Mode,
		Status:          req.Status,
	})
	if err != nil {
		var conflictErr *store.ConflictError
		if errors.As(err, &conflictErr) {
			log.Info("appointment create conflict",
				slog.String("doctor_name", req.DoctorName),
				slog.String("date", req.Date),
				slog.String("time", req.Time),
				slog.Int("conflicts", len(conflictErr.Conflicts)),
			)
			writeConflictError(w, conflictErr)
			return
		}
		var vErr *appointments.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err))
			writeError(w, http.StatusBadRequest, codeValidation, "invalid appointment data", map[string]any{
				"validation_errors": vErr.Errors,
			})
			return
		}
		log.Error("appointment create failed", slog.Any("err", err))
		writeServerError(w)
		return
	}

	log.Info("appointment created",
		slog.String("appointment_id", appt.ID),
		slog.String("doctor_name", appt.DoctorName),
		slog.String("date", appt.Date),
		slog.String("time", appt.Time),
	)
	writeData(w, http.StatusCreated, toAppointmentJSON(appt))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (s *AppointmentsServer) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	log := s.log.With(slog.String("handler", "UpdateAppointmentStatus"))
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid request", slog.String("reason", "bad_json"), slog.String("appointment_id", id))
		writeError(w, http.StatusBadRequest, codeValidation, "status is required", nil)
		return
	}
	if req.Status == "" {
		log.Warn("invalid request", slog.String("reason", "missing_status"), slog.String("appointment_id", id))
		writeError(w, http.StatusBadRequest, codeValidation, "status is required", nil)
		return
	}

	appt, err := s.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("appointment not found", slog.String("appointment_id", id))
			writeNotFound(w, id)
			return
		}
		var vErr *appointments.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("appointment_id", id))
			writeError(w, http.StatusBadRequest, codeValidation, vErr.Error(), map[string]any{
				"valid_statuses": domain.Statuses(),
			})
			return
		}
		log.Error("appointment status update failed", slog.Any("err", err), slog.String("appointment_id", id))
		writeServerError(w)
		return
	}

	log.Info("appointment status updated",
		slog.String("appointment_id", appt.ID),
		slog.String("status", string(appt.Status)),
	)
	writeData(w, http.StatusOK, toAppointmentJSON(appt))
}

func (s *AppointmentsServer) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	log := s.log.With(slog.String("handler", "DeleteAppointment"))
	id := chi.URLParam(r, "id")

	if err := s.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("appointment not found", slog.String("appointment_id", id))
			writeNotFound(w, id)
			return
		}
		var vErr *appointments.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("appointment_id", id))
			writeError(w, http.StatusBadRequest, codeValidation, vErr.Error(), nil)
			return
		}
		log.Error("appointment delete failed", slog.Any("err", err), slog.String("appointment_id", id))
		writeServerError(w)
		return
	}

	log.Info("appointment deleted", slog.String("appointment_id", id))
	writeMessage(w, http.StatusOK, "appointment deleted successfully")
}
