package store

import (
	"context"
	"errors"
	"strings"

	"taskboard/app/models"
)

// ErrNotFound is returned when no task has the requested identifier.
var ErrNotFound = errors.New("task not found")

// ValidationError reports a rejected task payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Repository persists task records. Implementations must be safe for
// concurrent use; conflicting updates resolve as last write wins.
type Repository interface {
	// List returns every task.
	List(ctx context.Context) ([]models.Task, error)

	// Create stores a new task and returns it with its identifier.
	Create(ctx context.Context, in models.TaskInput) (models.Task, error)

	// Update applies patch to the task with the given identifier and
	// returns the result. Returns ErrNotFound for unknown identifiers.
	Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error)

	// Delete removes the task. Returns ErrNotFound for unknown identifiers.
	Delete(ctx context.Context, id string) error
}

// normalizeInput validates a create payload and fills in the default status.
func normalizeInput(in models.TaskInput) (models.TaskInput, error) {
	if strings.TrimSpace(in.Name) == "" {
		return in, &ValidationError{Message: "Task name is required"}
	}
	if in.Status == "" {
		in.Status = models.StatusNotStarted
	}
	if !in.Status.Valid() {
		return in, &ValidationError{Message: "Invalid task status: " + string(in.Status)}
	}
	return in, nil
}

func validatePatch(p models.TaskPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return &ValidationError{Message: "Task name is required"}
	}
	if p.Status != nil && !p.Status.Valid() {
		return &ValidationError{Message: "Invalid task status: " + string(*p.Status)}
	}
	return nil
}
