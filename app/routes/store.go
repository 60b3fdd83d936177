package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskboard/app/store"
)

// RegisterStoreRoutes sets up the record-storage service routes.
func RegisterStoreRoutes(router *mux.Router, handler *store.Handler) {
	router.Use(LogRequests)

	router.HandleFunc("/", handler.ListTasks).Methods(http.MethodGet)
	router.HandleFunc("/", handler.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/update/{id}", handler.UpdateTask).Methods(http.MethodPatch)
	router.HandleFunc("/delete/{id}", handler.DeleteTask).Methods(http.MethodDelete)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}
