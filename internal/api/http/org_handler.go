package http

import (
	"net/http"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/service"

	"github.com/gorilla/mux"
)

type OrganizationHandler struct {
	orgSvc service.OrganizationService
}

func NewOrganizationHandler(orgSvc service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgSvc: orgSvc}
}

type createOrgRequest struct {
	Name string  `json:"name"`
	Logo *string `json:"logo,omitempty"`
}

type updateOrgRequest struct {
	Name *string `json:"name,omitempty"`
	Logo *string `json:"logo,omitempty"`
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req createOrgRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	org, err := h.orgSvc.Create(r.Context(), user.ID, req.Name, req.Logo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, org)
}

func (h *OrganizationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	orgs, err := h.orgSvc.ListMine(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if orgs == nil {
		orgs = []domain.Organization{}
	}
	writeJSON(w, http.StatusOK, orgs)
}

func (h *OrganizationHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.orgSvc.GetBySlug(r.Context(), user.ID, mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateOrgRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	org, err := h.orgSvc.Update(r.Context(), user.ID, mux.Vars(r)["orgID"], req.Name, req.Logo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.orgSvc.Delete(r.Context(), user.ID, mux.Vars(r)["orgID"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *OrganizationHandler) Leave(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.orgSvc.Leave(r.Context(), user.ID, mux.Vars(r)["orgID"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *OrganizationHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	if err := h.orgSvc.RemoveMember(r.Context(), user.ID, vars["orgID"], vars["userID"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *OrganizationHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req changeRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	if err := h.orgSvc.ChangeRole(r.Context(), user.ID, vars["orgID"], vars["userID"], role); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
