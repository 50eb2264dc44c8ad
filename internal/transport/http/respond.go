package http

import (
	"encoding/json"
	"net/http"

	"github.com/shivangiS04/SwasthiQ/internal/domain"
	"github.com/shivangiS04/SwasthiQ/internal/store"
)

const (
	codeValidation = "VALIDATION_ERROR"
	codeConflict   = "CONFLICT_ERROR"
	codeNotFound   = "NOT_FOUND"
	codeServer     = "SERVER_ERROR"
)

type appointmentJSON struct {
	ID              string `json:"id"`
	PatientName     string `json:"patient_name"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration"`
	DoctorName      string `json:"doctor_name"`
	Status          string `json:"status"`
	Mode            string `json:"mode"`
}

func toAppointmentJSON(a domain.Appointment) appointmentJSON {
	return appointmentJSON{
		ID:              a.ID,
		PatientName:     a.PatientName,
		Date:            a.Date,
		Time:            a.Time,
		DurationMinutes: a.DurationMinutes,
		DoctorName:      a.DoctorName,
		Status:          string(a.Status),
		Mode:            string(a.Mode),
	}
}

type errorJSON struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type responseJSON struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *errorJSON `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body responseJSON) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, responseJSON{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, responseJSON{Success: true, Message: msg})
}

func writeError(w http.ResponseWriter, status int, code, msg string, details map[string]any) {
	writeJSON(w, status, responseJSON{
		Success: false,
		Error:   &errorJSON{Code: code, Message: msg, Details: details},
	})
}

func writeNotFound(w http.ResponseWriter, id string) {
	writeError(w, http.StatusNotFound, codeNotFound, "appointment with id "+id+" not found", map[string]any{
		"appointment_id": id,
	})
}

func writeServerError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, codeServer, "internal error", nil)
}

func writeConflictError(w http.ResponseWriter, conflictErr *store.ConflictError) {
	conflicts := make([]map[string]any, 0, len(conflictErr.Conflicts))
	for _, c := range conflictErr.Conflicts {
		conflicts = append(conflicts, map[string]any{
			"id":           c.ID,
			"patient_name": c.PatientName,
			"time":         c.Time,
			"duration":     c.DurationMinutes,
		})
	}
	req := conflictErr.Requested
	writeError(w, http.StatusConflict, codeConflict,
		"time conflict detected for "+req.DoctorName+" on "+req.Date,
		map[string]any{
			"conflicting_appointments": conflicts,
			"requested_time":           req.Time,
			"requested_duration":       req.DurationMinutes,
		})
}
