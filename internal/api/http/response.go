package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/logger"
	"taskhive-backend/internal/security"
	"taskhive-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps domain errors onto HTTP statuses. Forbidden,
// NotAMember and NotFound intentionally share one generic 404 body so
// organization and invitation ids cannot be enumerated.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrNotAMember),
		errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found or you don't have access"})
	case errors.Is(err, domain.ErrInvalidRole):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid role"})
	case errors.Is(err, domain.ErrWrongAccount),
		errors.Is(err, service.ErrAnonymousDisabled):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvitationExpired):
		writeJSON(w, http.StatusGone, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrLastOwner),
		errors.Is(err, domain.ErrInvalidOperation),
		errors.Is(err, domain.ErrDuplicateInvitation),
		errors.Is(err, domain.ErrSlugConflict),
		errors.Is(err, domain.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Error("Unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
