package routes

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"taskboard/app/controllers"
	"taskboard/app/services"
	"taskboard/app/store"
	"taskboard/app/views"
)

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestLogRequests(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	h := LogRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	serve(h, http.MethodGet, "/brew", "")

	if got := buf.String(); !strings.Contains(got, "GET /brew 418") {
		t.Errorf("log line %q", got)
	}
}

func TestStoreRoutes(t *testing.T) {
	router := mux.NewRouter()
	RegisterStoreRoutes(router, store.NewHandler(store.New(store.NewMemoryRepository())))

	if rec := serve(router, http.MethodPost, "/", `{"name":"a"}`); rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body)
	}
	if rec := serve(router, http.MethodGet, "/", ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"name":"a"`) {
		t.Errorf("list: %d %s", rec.Code, rec.Body)
	}
	if rec := serve(router, http.MethodDelete, "/delete/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("delete unknown: %d", rec.Code)
	}
	if rec := serve(router, http.MethodPut, "/", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("PUT /: %d", rec.Code)
	}

	rec := serve(router, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "taskstore_operations_total") {
		t.Errorf("metrics: %d", rec.Code)
	}
}

func TestWebRoutes(t *testing.T) {
	storage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(storage.Close)

	router := mux.NewRouter()
	RegisterRoutes(router,
		controllers.NewTaskController(services.NewTaskService(storage.URL, nil)),
		controllers.NewPageController(views.NewAPIClient(storage.URL, nil), false),
	)

	tests := []struct {
		method, target string
		status         int
		contains       string
	}{
		{http.MethodGet, "/api/tasks", http.StatusOK, "[]"},
		{http.MethodPatch, "/api/tasks", http.StatusBadRequest, "Task ID is required"},
		{http.MethodGet, "/", http.StatusOK, "No tasks found"},
		{http.MethodGet, "/static/style.css", http.StatusOK, ".card"},
		{http.MethodGet, "/metrics", http.StatusOK, "taskboard_proxy_forwards_total"},
		{http.MethodPut, "/api/tasks", http.StatusMethodNotAllowed, ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := serve(router, tt.method, tt.target, "")
			if rec.Code != tt.status {
				t.Fatalf("status %d, want %d", rec.Code, tt.status)
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}
}
