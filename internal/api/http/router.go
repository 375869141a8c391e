package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers groups the handler set the router wires up.
type Handlers struct {
	Auth         *AuthHandler
	Organization *OrganizationHandler
	Invitation   *InvitationHandler
	Todo         *TodoHandler
}

// NewRouter builds the API router. Auth endpoints and the invitation
// lookup are public; everything else sits behind the auth middleware.
func NewRouter(h *Handlers, authMw *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(Logging)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/anonymous", h.Auth.Anonymous).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/invitations/{invitationID}", h.Invitation.Get).Methods(http.MethodGet)

	// Authenticated routes.
	authed := api.NewRoute().Subrouter()
	authed.Use(authMw.Require)

	authed.HandleFunc("/users/me", h.Auth.UpdateProfile).Methods(http.MethodPatch)

	authed.HandleFunc("/invitations/{invitationID}/accept", h.Invitation.Accept).Methods(http.MethodPost)
	authed.HandleFunc("/invitations/{invitationID}/reject", h.Invitation.Reject).Methods(http.MethodPost)

	authed.HandleFunc("/orgs", h.Organization.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/orgs", h.Organization.Create).Methods(http.MethodPost)
	authed.HandleFunc("/orgs/slug/{slug}", h.Organization.GetBySlug).Methods(http.MethodGet)
	authed.HandleFunc("/orgs/{orgID}", h.Organization.Update).Methods(http.MethodPatch)
	authed.HandleFunc("/orgs/{orgID}", h.Organization.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/orgs/{orgID}/leave", h.Organization.Leave).Methods(http.MethodPost)
	authed.HandleFunc("/orgs/{orgID}/members/{userID}", h.Organization.ChangeRole).Methods(http.MethodPatch)
	authed.HandleFunc("/orgs/{orgID}/members/{userID}", h.Organization.RemoveMember).Methods(http.MethodDelete)

	authed.HandleFunc("/orgs/{orgID}/invitations", h.Invitation.Invite).Methods(http.MethodPost)
	authed.HandleFunc("/orgs/{orgID}/invitations/{invitationID}", h.Invitation.Cancel).Methods(http.MethodDelete)

	authed.HandleFunc("/orgs/{orgID}/todos", h.Todo.List).Methods(http.MethodGet)
	authed.HandleFunc("/orgs/{orgID}/todos", h.Todo.Create).Methods(http.MethodPost)
	authed.HandleFunc("/orgs/{orgID}/todos/{todoID}", h.Todo.Toggle).Methods(http.MethodPatch)
	authed.HandleFunc("/orgs/{orgID}/todos/{todoID}", h.Todo.Delete).Methods(http.MethodDelete)

	return r
}
