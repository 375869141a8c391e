package http

import (
	"errors"
	"net/http"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/service"

	"github.com/gorilla/mux"
)

type InvitationHandler struct {
	inviteSvc service.InvitationService
}

func NewInvitationHandler(inviteSvc service.InvitationService) *InvitationHandler {
	return &InvitationHandler{inviteSvc: inviteSvc}
}

type inviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *InvitationHandler) Invite(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req inviteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email is required"})
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	inv, err := h.inviteSvc.Invite(r.Context(), user.ID, mux.Vars(r)["orgID"], req.Email, role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

// Get serves the acceptance landing page lookup. No authentication:
// the invitee may not have an account yet.
func (h *InvitationHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.inviteSvc.Get(r.Context(), mux.Vars(r)["invitationID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *InvitationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	m, err := h.inviteSvc.Accept(r.Context(), user.ID, mux.Vars(r)["invitationID"])
	if err != nil {
		// A duplicate accept is an idempotent success for the client.
		if errors.Is(err, domain.ErrAlreadyProcessed) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "already_accepted"})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *InvitationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.inviteSvc.Reject(r.Context(), user.ID, mux.Vars(r)["invitationID"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *InvitationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	if err := h.inviteSvc.Cancel(r.Context(), user.ID, vars["orgID"], vars["invitationID"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
