package views

import (
	"context"
	"errors"

	"taskboard/app/models"
)

// NameRequiredMessage is shown when the form is submitted without a name.
const NameRequiredMessage = "Task name is required"

// AddedMessage is shown after a task is created.
const AddedMessage = "Task added successfully!"

// ErrNameRequired is returned by Submit when the name is blank.
var ErrNameRequired = errors.New("task name is required")

// CreateForm collects the fields of a new task.
type CreateForm struct {
	api       API
	onCreated func(context.Context)

	draft      models.TaskInput
	submitting bool
	err        string
	success    string
}

// NewCreateForm creates a form with a default draft. onCreated runs after
// a task is created.
func NewCreateForm(api API, onCreated func(context.Context)) *CreateForm {
	return &CreateForm{api: api, onCreated: onCreated, draft: models.NewTaskInput()}
}

// SetDraft replaces the draft with the entered values.
func (f *CreateForm) SetDraft(in models.TaskInput) {
	f.draft = in
}

// Submit validates the draft and creates the task. A blank name is
// rejected without calling the API. The draft survives any failure.
func (f *CreateForm) Submit(ctx context.Context) error {
	if f.submitting {
		return nil
	}
	f.submitting = true
	defer func() { f.submitting = false }()
	f.err = ""
	f.success = ""

	if !f.draft.HasName() {
		f.err = NameRequiredMessage
		return ErrNameRequired
	}
	if err := f.api.CreateTask(ctx, f.draft); err != nil {
		f.err = errorMessage(err)
		return err
	}

	f.draft = models.NewTaskInput()
	f.success = AddedMessage
	if f.onCreated != nil {
		f.onCreated(ctx)
	}
	return nil
}

func (f *CreateForm) Draft() models.TaskInput { return f.draft }

func (f *CreateForm) Err() string { return f.err }

func (f *CreateForm) Success() string { return f.success }

func (f *CreateForm) Submitting() bool { return f.submitting }

// ButtonLabel is the label of the submit button.
func (f *CreateForm) ButtonLabel() string {
	if f.submitting {
		return f.BusyLabel()
	}
	return "Add Task"
}

// BusyLabel is the submit button label while a submission is in flight.
// The page script swaps it in and disables the button on submit.
func (f *CreateForm) BusyLabel() string { return "Adding Task..." }

// MarkAdded shows the success message after a redirect from a create.
func (f *CreateForm) MarkAdded() {
	f.success = AddedMessage
}
