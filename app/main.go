package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"taskboard/app/config"
	"taskboard/app/controllers"
	"taskboard/app/routes"
	"taskboard/app/services"
	"taskboard/app/views"

	"github.com/gorilla/mux"
)

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Proxy layer forwards to the record-storage service
	taskService := services.NewTaskService(cfg.BackendBaseURL, nil)
	taskController := controllers.NewTaskController(taskService)

	// Views reach the proxy over HTTP, like a browser would
	pageController := controllers.NewPageController(views.NewAPIClient(cfg.APIBaseURL, nil), cfg.UseFallbackOnError)

	router := mux.NewRouter()
	routes.RegisterRoutes(router, taskController, pageController)

	srv := &http.Server{Addr: cfg.Addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Task board is running on %s (storage at %s)\n", cfg.Addr, cfg.BackendBaseURL)
	if err := routes.Serve(ctx, srv); err != nil {
		log.Fatal(err)
	}
}
