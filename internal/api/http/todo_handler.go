package http

import (
	"net/http"

	"taskhive-backend/internal/domain"
	"taskhive-backend/internal/service"

	"github.com/gorilla/mux"
)

type TodoHandler struct {
	todoSvc service.TodoService
}

func NewTodoHandler(todoSvc service.TodoService) *TodoHandler {
	return &TodoHandler{todoSvc: todoSvc}
}

type createTodoRequest struct {
	Title string `json:"title"`
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	todos, err := h.todoSvc.List(r.Context(), user.ID, mux.Vars(r)["orgID"])
	if err != nil {
		writeError(w, err)
		return
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	writeJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req createTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "title is required"})
		return
	}

	todo, err := h.todoSvc.Create(r.Context(), user.ID, mux.Vars(r)["orgID"], req.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	todo, err := h.todoSvc.Toggle(r.Context(), user.ID, vars["orgID"], vars["todoID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := UserFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	if err := h.todoSvc.Delete(r.Context(), user.ID, vars["orgID"], vars["todoID"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
