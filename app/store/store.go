package store

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"taskboard/app/models"
)

var operationCount = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "taskstore_operations_total",
		Help: "Total number of task storage operations",
	},
	[]string{"operation", "outcome"},
)

// Store validates payloads and records metrics in front of a Repository.
type Store struct {
	repo Repository
}

// New creates a Store backed by repo.
func New(repo Repository) *Store {
	return &Store{repo: repo}
}

func (s *Store) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.repo.List(ctx)
	observe("list", err)
	return tasks, err
}

func (s *Store) Create(ctx context.Context, in models.TaskInput) (models.Task, error) {
	in, err := normalizeInput(in)
	if err != nil {
		observe("create", err)
		return models.Task{}, err
	}
	task, err := s.repo.Create(ctx, in)
	observe("create", err)
	return task, err
}

func (s *Store) Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	if err := validatePatch(patch); err != nil {
		observe("update", err)
		return models.Task{}, err
	}
	task, err := s.repo.Update(ctx, id, patch)
	observe("update", err)
	return task, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	observe("delete", err)
	return err
}

func observe(operation string, err error) {
	operationCount.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.As(err, &verr):
		return "invalid"
	default:
		return "error"
	}
}
