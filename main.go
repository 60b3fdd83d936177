package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"taskboard/app/config"
	"taskboard/app/routes"
	"taskboard/app/store"
)

// main runs the record-storage service the task board forwards to.
func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.LoadStore(os.Args[1:])
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open storage: ", err)
	}

	router := mux.NewRouter()
	routes.RegisterStoreRoutes(router, store.NewHandler(store.New(repo)))
	srv := &http.Server{Addr: cfg.Addr, Handler: router}

	fmt.Printf("Record storage (%s) is running on %s\n", cfg.Backend, cfg.Addr)
	err = routes.Serve(ctx, srv)
	closeRepo()
	if err != nil {
		log.Fatal(err)
	}
}

func openRepository(ctx context.Context, cfg *config.StoreConfig) (store.Repository, func(), error) {
	switch cfg.Backend {
	case config.BackendNeo4j:
		driver, err := config.InitNeo4j(ctx, cfg.Neo4j)
		if err != nil {
			return nil, nil, err
		}
		return store.NewNeo4jRepository(driver), func() { driver.Close(context.Background()) }, nil
	case config.BackendMongo:
		client, err := config.InitMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		return store.NewMongoRepository(coll), func() { client.Disconnect(context.Background()) }, nil
	default:
		return store.NewMemoryRepository(), func() {}, nil
	}
}
