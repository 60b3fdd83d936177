package views

import (
	"context"
	"errors"
	"strconv"

	"taskboard/app/models"
)

// fakeAPI is an in-memory API that counts calls and can be told to fail.
type fakeAPI struct {
	tasks  []models.Task
	nextID int

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	lists, creates, updates, deletes int
	lastInput                        models.TaskInput
	lastID                           string
}

func (f *fakeAPI) calls() int { return f.lists + f.creates + f.updates + f.deletes }

func (f *fakeAPI) ListTasks(ctx context.Context) ([]models.Task, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Task(nil), f.tasks...), nil
}

func (f *fakeAPI) CreateTask(ctx context.Context, in models.TaskInput) error {
	f.creates++
	f.lastInput = in
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	f.tasks = append(f.tasks, models.Task{
		ID:          strconv.Itoa(f.nextID),
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
	})
	return nil
}

func (f *fakeAPI) UpdateTask(ctx context.Context, id string, in models.TaskInput) error {
	f.updates++
	f.lastID, f.lastInput = id, in
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Name, f.tasks[i].Description, f.tasks[i].Status = in.Name, in.Description, in.Status
			return nil
		}
	}
	return &RequestError{Status: 404, Message: "Task not found"}
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id string) error {
	f.deletes++
	f.lastID = id
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}
