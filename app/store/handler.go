package store

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"taskboard/app/models"
)

// Handler serves the record-storage HTTP contract.
type Handler struct {
	Store *Store
}

// NewHandler creates a new Handler.
func NewHandler(s *Store) *Handler {
	return &Handler{Store: s}
}

// ListTasks handles GET /.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Store.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// CreateTask handles POST /.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var in models.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, message("Invalid request payload"))
		return
	}

	task, err := h.Store.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// UpdateTask handles PATCH /update/{id}.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch models.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, message("Invalid request payload"))
		return
	}

	task, err := h.Store.Update(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /delete/{id}.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, message("Task not found"))
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, message(verr.Message))
	default:
		log.Printf("storage error: %v", err)
		writeJSON(w, http.StatusInternalServerError, message("Internal storage error"))
	}
}

func message(msg string) map[string]string {
	return map[string]string{"message": msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
