package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"taskboard/app/services"
)

// TaskController handles the browser-facing task API and forwards every
// call to the record-storage service.
type TaskController struct {
	Service *services.TaskService
}

// NewTaskController creates a new TaskController.
func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{Service: service}
}

// GetTasks handles GET /api/tasks.
func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	resp, err := c.Service.ListTasks(r.Context())
	if err != nil {
		writeError(w, err, services.MsgFetchFailed)
		return
	}
	writeRaw(w, resp.Status, resp.Body)
}

// CreateTask handles POST /api/tasks.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("read create payload: %v", err)
		writeMessage(w, http.StatusInternalServerError, services.MsgCreateFailed)
		return
	}

	resp, err := c.Service.CreateTask(r.Context(), payload)
	if err != nil {
		writeError(w, err, services.MsgCreateFailed)
		return
	}
	writeRaw(w, resp.Status, resp.Body)
}

// UpdateTask handles PATCH /api/tasks?id={id} and PATCH /api/tasks/{id}.
func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := taskID(r)
	if id == "" {
		writeMessage(w, http.StatusBadRequest, "Task ID is required")
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("read update payload: %v", err)
		writeMessage(w, http.StatusInternalServerError, services.MsgUpdateFailed)
		return
	}

	resp, err := c.Service.UpdateTask(r.Context(), id, payload)
	if err != nil {
		writeError(w, err, services.MsgUpdateFailed)
		return
	}
	writeRaw(w, resp.Status, resp.Body)
}

// DeleteTask handles DELETE /api/tasks?id={id} and DELETE /api/tasks/{id}.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := taskID(r)
	if id == "" {
		writeMessage(w, http.StatusBadRequest, "Task ID is required")
		return
	}

	if err := c.Service.DeleteTask(r.Context(), id); err != nil {
		writeError(w, err, services.MsgDeleteFailed)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Task deleted successfully"})
}

// taskID reads the identifier from the path, falling back to the id query
// parameter.
func taskID(r *http.Request) string {
	if id := mux.Vars(r)["id"]; id != "" {
		return id
	}
	return r.URL.Query().Get("id")
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	var upstream *services.UpstreamError
	switch {
	case errors.Is(err, services.ErrMissingID):
		writeMessage(w, http.StatusBadRequest, "Task ID is required")
	case errors.As(err, &upstream):
		writeMessage(w, upstream.Status, upstream.Message)
	default:
		log.Printf("unexpected proxy error: %v", err)
		writeMessage(w, http.StatusInternalServerError, fallback)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
