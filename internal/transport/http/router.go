package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const apiVersion = "1.0.0"

// NewRouter wires the appointment handlers under /api. A zero requestTimeout
// disables the per-request deadline.
func NewRouter(s *AppointmentsServer, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthCheck)
		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", s.ListAppointments)
			r.Post("/", s.CreateAppointment)
			r.Put("/{id}/status", s.UpdateAppointmentStatus)
			r.Delete("/{id}", s.DeleteAppointment)
		})
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, responseJSON{
		Success: true,
		Message: "SwasthiQ Appointment API is running",
		Data: map[string]any{
			"version":   apiVersion,
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}
