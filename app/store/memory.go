package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"taskboard/app/models"
)

// MemoryRepository keeps tasks in process memory in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks map[string]models.Task
	order []string
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tasks: make(map[string]models.Task)}
}

func (m *MemoryRepository) List(ctx context.Context) ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tasks := make([]models.Task, 0, len(m.order))
	for _, id := range m.order {
		tasks = append(tasks, m.tasks[id])
	}
	return tasks, nil
}

func (m *MemoryRepository) Create(ctx context.Context, in models.TaskInput) (models.Task, error) {
	task := models.Task{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks[task.ID] = task
	m.order = append(m.order, task.ID)
	return task, nil
}

func (m *MemoryRepository) Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return models.Task{}, ErrNotFound
	}
	patch.Apply(&task)
	m.tasks[id] = task
	return task, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(m.tasks, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
