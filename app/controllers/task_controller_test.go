package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"taskboard/app/services"
)

type forwarded struct {
	method, path, body string
}

// newProxy wires a TaskController to a fake storage service and returns
// the proxy router and the calls the storage service received.
func newProxy(t *testing.T, storage http.HandlerFunc) (*mux.Router, *[]forwarded) {
	t.Helper()
	calls := &[]forwarded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*calls = append(*calls, forwarded{r.Method, r.URL.Path, string(b)})
		storage(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewTaskController(services.NewTaskService(srv.URL, nil))
	router := mux.NewRouter()
	router.HandleFunc("/api/tasks", c.GetTasks).Methods(http.MethodGet)
	router.HandleFunc("/api/tasks", c.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/api/tasks", c.UpdateTask).Methods(http.MethodPatch)
	router.HandleFunc("/api/tasks", c.DeleteTask).Methods(http.MethodDelete)
	router.HandleFunc("/api/tasks/{id}", c.UpdateTask).Methods(http.MethodPatch)
	router.HandleFunc("/api/tasks/{id}", c.DeleteTask).Methods(http.MethodDelete)
	return router, calls
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func jsonBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return m
}

func ok(w http.ResponseWriter, r *http.Request) {
	io.WriteString(w, `{"result":"ok"}`)
}

func TestUpdateBothAddressingStyles(t *testing.T) {
	for _, target := range []string{"/api/tasks?id=abc", "/api/tasks/abc"} {
		t.Run(target, func(t *testing.T) {
			router, calls := newProxy(t, ok)

			rec := do(router, http.MethodPatch, target, `{"status":"Completed"}`)
			if rec.Code != http.StatusOK {
				t.Fatalf("status %d: %s", rec.Code, rec.Body)
			}
			want := forwarded{http.MethodPatch, "/update/abc", `{"status":"Completed"}`}
			if len(*calls) != 1 || (*calls)[0] != want {
				t.Errorf("forwarded %+v", *calls)
			}
		})
	}
}

func TestDeleteBothAddressingStyles(t *testing.T) {
	for _, target := range []string{"/api/tasks?id=abc", "/api/tasks/abc"} {
		t.Run(target, func(t *testing.T) {
			router, calls := newProxy(t, ok)

			rec := do(router, http.MethodDelete, target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status %d: %s", rec.Code, rec.Body)
			}
			body := jsonBody(t, rec)
			if body["success"] != true || body["message"] != "Task deleted successfully" {
				t.Errorf("body %v", body)
			}
			if len(*calls) != 1 || (*calls)[0].path != "/delete/abc" || (*calls)[0].method != http.MethodDelete {
				t.Errorf("forwarded %+v", *calls)
			}
		})
	}
}

func TestMissingID(t *testing.T) {
	router, calls := newProxy(t, ok)

	for _, method := range []string{http.MethodPatch, http.MethodDelete} {
		rec := do(router, method, "/api/tasks", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d", method, rec.Code)
		}
		if msg := jsonBody(t, rec)["message"]; msg != "Task ID is required" {
			t.Errorf("%s: message %v", method, msg)
		}
	}
	if len(*calls) != 0 {
		t.Errorf("storage was called: %+v", *calls)
	}
}

func TestListRelaysVerbatim(t *testing.T) {
	payload := `[{"_id":"1","name":"a","description":null,"status":"Completed"}]`
	router, _ := newProxy(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, payload)
	})

	rec := do(router, http.MethodGet, "/api/tasks", "")
	if rec.Code != http.StatusOK || rec.Body.String() != payload {
		t.Errorf("got %d %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type %q", ct)
	}
}

func TestRelaysRejection(t *testing.T) {
	router, _ := newProxy(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"message":"duplicate name"}`)
	})

	rec := do(router, http.MethodPost, "/api/tasks", `{"name":"a"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("status %d", rec.Code)
	}
	if msg := jsonBody(t, rec)["message"]; msg != "duplicate name" {
		t.Errorf("message %v", msg)
	}
}

func TestUnreachableStorage(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := NewTaskController(services.NewTaskService(srv.URL, nil))
	srv.Close()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		method  string
		target  string
		body    string
		message string
	}{
		{"list", c.GetTasks, http.MethodGet, "/api/tasks", "", services.MsgFetchFailed},
		{"create", c.CreateTask, http.MethodPost, "/api/tasks", `{"name":"a"}`, services.MsgCreateFailed},
		{"update", c.UpdateTask, http.MethodPatch, "/api/tasks?id=1", `{}`, services.MsgUpdateFailed},
		{"delete", c.DeleteTask, http.MethodDelete, "/api/tasks?id=1", "", services.MsgDeleteFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(tt.handler, tt.method, tt.target, tt.body)
			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status %d", rec.Code)
			}
			if msg := jsonBody(t, rec)["message"]; msg != tt.message {
				t.Errorf("message %v", msg)
			}
		})
	}
}

func TestCreateMalformedBody(t *testing.T) {
	router, calls := newProxy(t, ok)

	rec := do(router, http.MethodPost, "/api/tasks", `{"name":`)
	if rec.Code != http.StatusInternalServerError || jsonBody(t, rec)["message"] != services.MsgCreateFailed {
		t.Errorf("got %d %s", rec.Code, rec.Body)
	}
	if len(*calls) != 0 {
		t.Errorf("storage was called: %+v", *calls)
	}
}
