package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskboard/app/controllers"
	"taskboard/app/views"
)

// RegisterRoutes sets up the proxy API, the page and the metrics endpoint.
func RegisterRoutes(router *mux.Router, taskController *controllers.TaskController, pageController *controllers.PageController) {
	router.Use(LogRequests)

	router.HandleFunc("/api/tasks", taskController.GetTasks).Methods(http.MethodGet)
	router.HandleFunc("/api/tasks", taskController.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/api/tasks", taskController.UpdateTask).Methods(http.MethodPatch)
	router.HandleFunc("/api/tasks", taskController.DeleteTask).Methods(http.MethodDelete)
	router.HandleFunc("/api/tasks/{id}", taskController.UpdateTask).Methods(http.MethodPatch)
	router.HandleFunc("/api/tasks/{id}", taskController.DeleteTask).Methods(http.MethodDelete)

	router.HandleFunc("/", pageController.Index).Methods(http.MethodGet)
	router.HandleFunc("/tasks", pageController.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/{id}/update", pageController.UpdateTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/{id}/delete", pageController.DeleteTask).Methods(http.MethodPost)
	router.HandleFunc("/refresh", pageController.Refresh).Methods(http.MethodPost)
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", views.Static()))

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}
