package models

import (
	"encoding/json"
	"strings"
)

// Status is the progress state of a task.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists the accepted statuses in the order forms offer them.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the accepted statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a task record as held by the storage service.
// The identifier travels under "_id"; decoding also accepts "id".
type Task struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

func (t *Task) UnmarshalJSON(data []byte) error {
	type alias Task
	var aux struct {
		alias
		PlainID string `json:"id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*t = Task(aux.alias)
	if t.ID == "" {
		t.ID = aux.PlainID
	}
	return nil
}

// DisplayName returns the name shown on a task card.
func (t Task) DisplayName() string {
	if t.Name == "" {
		return "Unnamed Task"
	}
	return t.Name
}

// DisplayDescription returns the description shown on a task card.
func (t Task) DisplayDescription() string {
	if t.Description == "" {
		return "No description"
	}
	return t.Description
}

// DisplayStatus returns the status shown on a task card.
func (t Task) DisplayStatus() Status {
	if t.Status == "" {
		return StatusInProgress
	}
	return t.Status
}

// Input returns the editable fields of t.
func (t Task) Input() TaskInput {
	return TaskInput{Name: t.Name, Description: t.Description, Status: t.Status}
}

// TaskInput carries the editable fields of a task. It is the payload of
// both create and edit requests.
type TaskInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// NewTaskInput returns an empty draft with the default status.
func NewTaskInput() TaskInput {
	return TaskInput{Status: StatusNotStarted}
}

// HasName reports whether the name is non-empty after trimming.
func (in TaskInput) HasName() bool {
	return strings.TrimSpace(in.Name) != ""
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *Status `json:"status,omitempty"`
}

// Apply copies the set fields of p onto t.
func (p TaskPatch) Apply(t *Task) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// Empty reports whether p sets no field.
func (p TaskPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Status == nil
}
