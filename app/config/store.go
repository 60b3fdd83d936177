package config

import (
	"flag"
	"fmt"
	"io"
)

// Storage backends understood by the record-storage service.
const (
	BackendMemory = "memory"
	BackendNeo4j  = "neo4j"
	BackendMongo  = "mongo"
)

// StoreConfig holds the record-storage service settings.
type StoreConfig struct {
	Addr    string
	Backend string
	Neo4j   Neo4jConfig
	Mongo   MongoConfig
}

// LoadStore builds the storage service configuration from the environment
// and args.
func LoadStore(args []string) (*StoreConfig, error) {
	cfg := &StoreConfig{
		Addr:    envString("STORE_ADDR", ":8000"),
		Backend: envString("STORE_BACKEND", BackendMemory),
		Neo4j: Neo4jConfig{
			URI:      envString("NEO4J_URI", "neo4j://localhost:7687"),
			User:     envString("NEO4J_USER", "neo4j"),
			Password: envString("NEO4J_PASSWORD", "password"),
		},
		Mongo: MongoConfig{
			URI:        envString("MONGO_URI", "mongodb://localhost:27017"),
			Database:   envString("MONGO_DATABASE", "tasks"),
			Collection: envString("MONGO_COLLECTION", "tasks"),
		},
	}

	fs := flag.NewFlagSet("taskstore", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "storage backend (memory|neo4j|mongo)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendMemory, BackendNeo4j, BackendMongo:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	return cfg, nil
}
