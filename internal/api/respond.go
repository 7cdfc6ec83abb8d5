// ABOUTME: JSON response envelope and service-error to status-code mapping
// ABOUTME: Every response carries {"success": bool} plus message/data or error

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/suredrive/suredrive-api/internal/identity"
	"github.com/suredrive/suredrive-api/internal/store"
)

// envelope is the uniform JSON response shape.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// principalResponse is the wire view of a principal. The password hash never
// leaves the server.
type principalResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	NationalID  string    `json:"nationalId"`
	Role        string    `json:"role"`
	Language    string    `json:"language"`
	IsVerified  bool      `json:"isVerified"`
	Username    string    `json:"username,omitempty"`
	PlateNumber string    `json:"plateNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toPrincipalResponse(p *store.Principal) principalResponse {
	return principalResponse{
		ID:          p.ID,
		Name:        p.Name,
		Phone:       p.Phone,
		NationalID:  p.NationalID,
		Role:        string(p.Role),
		Language:    p.Language,
		IsVerified:  p.IsVerified,
		Username:    p.Username,
		PlateNumber: p.PlateNumber,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// loginResponse is the wire view of a successful login.
type loginResponse struct {
	Token string            `json:"token"`
	User  principalResponse `json:"user"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

// writeServiceError maps identity and store errors to HTTP status codes.
// Unknown errors become opaque 500s; the detail goes to the log only.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *identity.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, envelope{
			Success: false,
			Error:   "validation failed",
			Fields:  verr.Fields,
		})
	case errors.Is(err, identity.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, identity.ErrSelfAdminDisabled):
		writeError(w, http.StatusForbidden, "admin self-registration is disabled")
	case errors.Is(err, store.ErrPrincipalNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, store.ErrDuplicatePhone),
		errors.Is(err, store.ErrDuplicateNationalID),
		errors.Is(err, store.ErrDuplicateUsername),
		errors.Is(err, store.ErrDuplicatePlate):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads the request body into dst. Returns false after writing a
// 400 response when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
