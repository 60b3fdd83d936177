package views

import (
	"context"

	"taskboard/app/models"
)

// FallbackTasks are shown when fetching fails and the fallback is enabled.
func FallbackTasks() []models.Task {
	return []models.Task{
		{
			ID:          "1",
			Name:        "Complete Project Setup",
			Description: "Initialize the project with its stylesheet and icons",
			Status:      models.StatusCompleted,
		},
		{
			ID:          "2",
			Name:        "Design Task Component",
			Description: "Create a reusable component for displaying tasks with customizable icons",
			Status:      models.StatusInProgress,
		},
		{
			ID:          "3",
			Name:        "Implement Authentication",
			Description: "Add user authentication and authorization to the application",
			Status:      models.StatusNotStarted,
		},
	}
}

// ListView renders the current set of tasks. Every load replaces the whole
// set; nothing is merged.
type ListView struct {
	api         API
	useFallback bool

	items     []*TaskItem
	err       string
	loaded    bool
	refreshes int
}

// NewListView creates a list view. When useFallbackOnError is set, a failed
// fetch shows FallbackTasks next to the error.
func NewListView(api API, useFallbackOnError bool) *ListView {
	return &ListView{api: api, useFallback: useFallbackOnError}
}

// Load fetches the tasks and replaces the displayed set.
func (v *ListView) Load(ctx context.Context) {
	tasks, err := v.api.ListTasks(ctx)
	v.loaded = true
	if err != nil {
		v.err = errorMessage(err)
		v.items = nil
		if v.useFallback {
			v.setTasks(FallbackTasks())
		}
		return
	}
	v.err = ""
	v.setTasks(tasks)
}

// Refresh is the refresh signal: it bumps the counter and fetches again.
// Task items and the creation form call it after a mutation.
func (v *ListView) Refresh(ctx context.Context) {
	v.refreshes++
	v.Load(ctx)
}

// Retry clears the error and fetches again.
func (v *ListView) Retry(ctx context.Context) {
	v.err = ""
	v.Refresh(ctx)
}

func (v *ListView) setTasks(tasks []models.Task) {
	v.items = make([]*TaskItem, 0, len(tasks))
	for _, task := range tasks {
		v.items = append(v.items, NewTaskItem(v.api, task, v.Refresh))
	}
}

// Adopt appends an item for a task the last fetch did not return, so a
// failed edit of it can still be shown.
func (v *ListView) Adopt(task models.Task) *TaskItem {
	item := NewTaskItem(v.api, task, v.Refresh)
	v.items = append(v.items, item)
	return item
}

// Item returns the item for the task with the given id, or nil.
func (v *ListView) Item(id string) *TaskItem {
	for _, item := range v.items {
		if item.Task.ID == id {
			return item
		}
	}
	return nil
}

func (v *ListView) Items() []*TaskItem { return v.items }

func (v *ListView) Err() string { return v.err }

func (v *ListView) Refreshes() int { return v.refreshes }

// Empty reports whether a successful fetch returned no tasks.
func (v *ListView) Empty() bool {
	return v.loaded && v.err == "" && len(v.items) == 0
}
