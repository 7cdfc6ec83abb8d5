// ABOUTME: Handlers for the public auth endpoints and admin inspector creation
// ABOUTME: Registration, the three login flows, and the dedicated driver flows

package api

import (
	"net/http"

	"github.com/suredrive/suredrive-api/internal/identity"
	"github.com/suredrive/suredrive-api/internal/store"
)

// registerRequest is the JSON request body for POST /api/auth/register.
type registerRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Language   string `json:"language,omitempty"`
	Username   string `json:"username,omitempty"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := s.identity.Register(r.Context(), identity.RegisterParams{
		Name:       req.Name,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		Password:   req.Password,
		Role:       store.Role(req.Role),
		Language:   req.Language,
		Username:   req.Username,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "registration successful", toPrincipalResponse(p))
}

// loginRequest is the JSON request body for the username/password logins.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := s.identity.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "login successful", loginResponse{
		Token: result.Token,
		User:  toPrincipalResponse(result.Principal),
	})
}

func (s *Server) handleInspectorLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := s.identity.InspectorLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "login successful", loginResponse{
		Token: result.Token,
		User:  toPrincipalResponse(result.Principal),
	})
}

// driverLoginRequest is the JSON request body for POST /api/auth/driver-login.
type driverLoginRequest struct {
	Name          string `json:"name"`
	DriverLicense string `json:"driverLicense"`
	PlateNumber   string `json:"plateNumber"`
	Password      string `json:"password"`
}

func (s *Server) handleDriverLogin(w http.ResponseWriter, r *http.Request) {
	var req driverLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := s.identity.DriverLogin(r.Context(), identity.DriverLoginParams{
		Name:          req.Name,
		DriverLicense: req.DriverLicense,
		PlateNumber:   req.PlateNumber,
		Password:      req.Password,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, "login successful", loginResponse{
		Token: result.Token,
		User:  toPrincipalResponse(result.Principal),
	})
}

// driverRegisterRequest is the JSON request body for POST /api/auth/driver-register.
type driverRegisterRequest struct {
	Name          string `json:"name"`
	DriverLicense string `json:"driverLicense"`
	PlateNumber   string `json:"plateNumber"`
	Phone         string `json:"phone"`
	Password      string `json:"password"`
	Language      string `json:"language,omitempty"`
}

func (s *Server) handleDriverRegister(w http.ResponseWriter, r *http.Request) {
	var req driverRegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := s.identity.RegisterDriver(r.Context(), identity.DriverRegisterParams{
		Name:          req.Name,
		DriverLicense: req.DriverLicense,
		PlateNumber:   req.PlateNumber,
		Phone:         req.Phone,
		Password:      req.Password,
		Language:      req.Language,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "registration successful, pending verification", toPrincipalResponse(p))
}

// createInspectorRequest is the JSON request body for POST /api/admin/inspectors.
type createInspectorRequest struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
	Language   string `json:"language,omitempty"`
}

func (s *Server) handleCreateInspector(w http.ResponseWriter, r *http.Request) {
	var req createInspectorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := s.identity.CreateInspector(r.Context(), identity.CreateInspectorParams{
		Name:       req.Name,
		Username:   req.Username,
		Password:   req.Password,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		Language:   req.Language,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "inspector created", toPrincipalResponse(p))
}
