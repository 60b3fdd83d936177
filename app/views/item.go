package views

import (
	"context"

	"taskboard/app/models"
)

// DeletePrompt is the confirmation question asked before deleting.
const DeletePrompt = "Are you sure you want to delete this task?"

// TaskItem shows one task, either as a card or as an inline edit form.
// The draft is independent of Task until a save succeeds.
type TaskItem struct {
	Task  models.Task
	Style Style

	api      API
	onUpdate func(context.Context)

	editing    bool
	draft      models.TaskInput
	err        string
	submitting bool
	deleting   bool
}

// NewTaskItem creates an item in display state. onUpdate runs after a
// successful save or delete.
func NewTaskItem(api API, task models.Task, onUpdate func(context.Context)) *TaskItem {
	return &TaskItem{
		Task:     task,
		Style:    StyleFor(task.Status),
		api:      api,
		onUpdate: onUpdate,
		draft:    task.Input(),
	}
}

// BeginEdit copies the task into the draft and enters editing.
func (it *TaskItem) BeginEdit() {
	it.draft = it.Task.Input()
	it.editing = true
}

// SetDraft replaces the draft with edited values.
func (it *TaskItem) SetDraft(in models.TaskInput) {
	it.draft = in
}

// Save sends the draft as an update. On failure the item stays in editing
// with the draft kept and the error shown.
func (it *TaskItem) Save(ctx context.Context) error {
	if it.Task.ID == "" {
		return nil
	}
	it.submitting = true
	it.err = ""
	err := it.api.UpdateTask(ctx, it.Task.ID, it.draft)
	it.submitting = false
	if err != nil {
		it.err = errorMessage(err)
		return err
	}

	it.editing = false
	if it.onUpdate != nil {
		it.onUpdate(ctx)
	}
	return nil
}

// Cancel drops the draft and leaves editing.
func (it *TaskItem) Cancel() {
	it.draft = it.Task.Input()
	it.editing = false
	it.err = ""
}

// Delete asks confirm with DeletePrompt and deletes the task when it
// answers yes. A failure leaves the item in display state.
func (it *TaskItem) Delete(ctx context.Context, confirm func(prompt string) bool) error {
	if it.Task.ID == "" || !confirm(DeletePrompt) {
		return nil
	}
	it.deleting = true
	it.err = ""
	if err := it.api.DeleteTask(ctx, it.Task.ID); err != nil {
		it.err = errorMessage(err)
		it.deleting = false
		return err
	}
	if it.onUpdate != nil {
		it.onUpdate(ctx)
	}
	return nil
}

func (it *TaskItem) Editing() bool { return it.editing }

func (it *TaskItem) Draft() models.TaskInput { return it.draft }

func (it *TaskItem) Err() string { return it.err }

func (it *TaskItem) Submitting() bool { return it.submitting }

func (it *TaskItem) Deleting() bool { return it.deleting }

// SaveLabel is the label of the save button.
func (it *TaskItem) SaveLabel() string {
	if it.submitting {
		return it.BusyLabel()
	}
	return "Save"
}

// BusyLabel is the save button label while a save is in flight.
func (it *TaskItem) BusyLabel() string { return "Saving..." }

// BadgeColor is the color of the status badge on the card.
func (it *TaskItem) BadgeColor() string {
	return badgeColor(it.Task.Status)
}

func (it *TaskItem) DeletePrompt() string { return DeletePrompt }
