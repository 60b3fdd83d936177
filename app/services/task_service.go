package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Generic failure messages, one per forwarded operation.
const (
	MsgFetchFailed  = "Failed to fetch tasks"
	MsgCreateFailed = "Failed to create task"
	MsgUpdateFailed = "Failed to update task"
	MsgDeleteFailed = "Failed to delete task"
)

// ErrMissingID is returned by update and delete when no identifier is given.
var ErrMissingID = errors.New("task ID is required")

// UpstreamError is a normalized failure to relay to the browser.
// Err is set when the forward itself failed rather than being rejected.
type UpstreamError struct {
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Response is a successful record-storage reply relayed verbatim.
type Response struct {
	Status int
	Body   json.RawMessage
}

type operation struct {
	name    string
	method  string
	failure string
}

var (
	opList   = operation{"list", http.MethodGet, MsgFetchFailed}
	opCreate = operation{"create", http.MethodPost, MsgCreateFailed}
	opUpdate = operation{"update", http.MethodPatch, MsgUpdateFailed}
	opDelete = operation{"delete", http.MethodDelete, MsgDeleteFailed}
)

// TaskService forwards task operations to the record-storage service.
// It keeps no state between calls.
type TaskService struct {
	baseURL string
	client  *http.Client
}

// NewTaskService creates a TaskService for the storage service at baseURL.
// A nil client means http.DefaultClient.
func NewTaskService(baseURL string, client *http.Client) *TaskService {
	if client == nil {
		client = http.DefaultClient
	}
	return &TaskService{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// ListTasks fetches the whole collection. The body is relayed with 200.
func (s *TaskService) ListTasks(ctx context.Context) (*Response, error) {
	data, _, err := s.forward(ctx, opList, "/", nil)
	if err != nil {
		return nil, err
	}
	return &Response{Status: http.StatusOK, Body: data}, nil
}

// CreateTask forwards payload as-is to the collection root.
func (s *TaskService) CreateTask(ctx context.Context, payload []byte) (*Response, error) {
	if !json.Valid(payload) {
		return nil, s.failed(opCreate, errors.New("request body is not valid JSON"))
	}
	data, status, err := s.forward(ctx, opCreate, "/", payload)
	if err != nil {
		return nil, err
	}
	return &Response{Status: status, Body: data}, nil
}

// UpdateTask forwards a partial update for the task with the given id.
func (s *TaskService) UpdateTask(ctx context.Context, id string, payload []byte) (*Response, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if !json.Valid(payload) {
		return nil, s.failed(opUpdate, errors.New("request body is not valid JSON"))
	}
	data, status, err := s.forward(ctx, opUpdate, "/update/"+url.PathEscape(id), payload)
	if err != nil {
		return nil, err
	}
	return &Response{Status: status, Body: data}, nil
}

// DeleteTask removes the task with the given id.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	_, _, err := s.forward(ctx, opDelete, "/delete/"+url.PathEscape(id), nil)
	return err
}

// forward performs one call against the storage service and returns the
// response body and status. Every failure comes back as *UpstreamError.
func (s *TaskService) forward(ctx context.Context, op operation, path string, body []byte) (data []byte, status int, err error) {
	start := time.Now()
	defer func() {
		observeForward(op.name, start, err)
	}()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, op.method, s.baseURL+path, reader)
	if err != nil {
		return nil, 0, s.failed(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, 0, s.failed(op, err)
	}
	defer res.Body.Close()

	data, err = io.ReadAll(res.Body)
	if err != nil {
		return nil, 0, s.failed(op, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Printf("%s task: storage responded %d", op.name, res.StatusCode)
		return nil, 0, &UpstreamError{Status: res.StatusCode, Message: errorMessage(data, op.failure)}
	}

	// Delete replies are not relayed, so their body is not inspected.
	if op != opDelete && !json.Valid(data) {
		return nil, 0, s.failed(op, errors.New("storage response is not valid JSON"))
	}
	return data, res.StatusCode, nil
}

func (s *TaskService) failed(op operation, err error) *UpstreamError {
	log.Printf("%s task: %v", op.name, err)
	return &UpstreamError{Status: http.StatusInternalServerError, Message: op.failure, Err: err}
}

// errorMessage extracts the "message" field of a rejection body.
func errorMessage(data []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		return fallback
	}
	return body.Message
}
