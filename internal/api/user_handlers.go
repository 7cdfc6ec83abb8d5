// ABOUTME: Handlers for principal management: list, get, update, verify, delete
// ABOUTME: Role gating is applied in the route table; handlers trust the gates

package api

import (
	"net/http"

	"github.com/suredrive/suredrive-api/internal/store"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	var filter store.PrincipalFilter

	if roleParam := r.URL.Query().Get("role"); roleParam != "" {
		role := store.Role(roleParam)
		if !role.Valid() {
			writeError(w, http.StatusBadRequest, "unknown role filter")
			return
		}
		filter.Role = &role
	}
	if verifiedParam := r.URL.Query().Get("verified"); verifiedParam != "" {
		switch verifiedParam {
		case "true":
			v := true
			filter.IsVerified = &v
		case "false":
			v := false
			filter.IsVerified = &v
		default:
			writeError(w, http.StatusBadRequest, "verified filter must be true or false")
			return
		}
	}

	principals, err := s.identity.ListUsers(r.Context(), filter)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := make([]principalResponse, 0, len(principals))
	for i := range principals {
		resp = append(resp, toPrincipalResponse(&principals[i]))
	}
	writeSuccess(w, http.StatusOK, "", resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	p, err := s.identity.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", toPrincipalResponse(p))
}

// updateUserRequest is the JSON request body for PUT /api/users/{id}.
// Absent fields are left unchanged; role and verification are not updatable
// through this endpoint.
type updateUserRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Language *string `json:"language"`
	Username *string `json:"username"`
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := s.identity.UpdateUser(r.Context(), r.PathValue("id"), store.PrincipalUpdate{
		Name:     req.Name,
		Phone:    req.Phone,
		Language: req.Language,
		Username: req.Username,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "user updated", toPrincipalResponse(p))
}

func (s *Server) handleVerifyUser(w http.ResponseWriter, r *http.Request) {
	p, err := s.identity.VerifyUser(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "user verified", toPrincipalResponse(p))
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.identity.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "user deleted", nil)
}
