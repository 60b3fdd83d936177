package views

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"taskboard/app/models"
)

// API is the proxy surface the views talk to.
type API interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, in models.TaskInput) error
	UpdateTask(ctx context.Context, id string, in models.TaskInput) error
	DeleteTask(ctx context.Context, id string) error
}

// RequestError is a failed call to the proxy. Message is what the views
// display.
type RequestError struct {
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.Err }

// APIClient calls the proxy collection endpoint over HTTP. Update and
// delete address the task through the id query parameter.
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a client for the collection at baseURL.
// A nil client means http.DefaultClient.
func NewAPIClient(baseURL string, client *http.Client) *APIClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &APIClient{baseURL: baseURL, client: client}
}

func (c *APIClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	data, err := c.do(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &RequestError{Message: "Unexpected response from server", Err: err}
	}
	return tasks, nil
}

func (c *APIClient) CreateTask(ctx context.Context, in models.TaskInput) error {
	_, err := c.do(ctx, http.MethodPost, c.baseURL, in)
	return err
}

func (c *APIClient) UpdateTask(ctx context.Context, id string, in models.TaskInput) error {
	target, err := c.itemURL(id)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPatch, target, in)
	return err
}

func (c *APIClient) DeleteTask(ctx context.Context, id string) error {
	target, err := c.itemURL(id)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodDelete, target, nil)
	return err
}

// itemURL adds the id parameter to the collection URL, keeping any query
// it already carries.
func (c *APIClient) itemURL(id string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", &RequestError{Message: err.Error(), Err: err}
	}
	q := u.Query()
	q.Set("id", id)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *APIClient) do(ctx context.Context, method, target string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &RequestError{Message: err.Error(), Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, &RequestError{Message: "Network Error", Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &RequestError{Status: res.StatusCode, Message: "Network Error", Err: err}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &RequestError{Status: res.StatusCode, Message: responseMessage(res.StatusCode, data)}
	}
	return data, nil
}

// responseMessage prefers the server's message over the generic status text.
func responseMessage(status int, data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &body) == nil && body.Message != "" {
		return body.Message
	}
	return fmt.Sprintf("Request failed with status code %d", status)
}

// errorMessage returns the text a view shows for err.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An unknown error occurred"
}
