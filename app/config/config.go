package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultAddr is the listen address of the web application.
	DefaultAddr = ":3000"

	// DefaultBackendURL is the base URL of the record-storage service.
	DefaultBackendURL = "http://localhost:8000"

	// APIPath is the browser-facing collection path served by the proxy.
	APIPath = "/api/tasks"
)

// Config holds the web application settings.
type Config struct {
	// Addr is the address the web application listens on.
	Addr string

	// BackendBaseURL is the base URL of the record-storage service.
	BackendBaseURL string

	// APIBaseURL is the proxy collection URL the views call.
	// Derived from Addr when left empty.
	APIBaseURL string

	// UseFallbackOnError makes the list view show illustrative records
	// when fetching fails. Meant for development only.
	UseFallbackOnError bool
}

// LoadEnvFile loads variables from a dotenv file. A missing file is not
// an error; variables already set in the environment are kept.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load builds the web configuration from the environment, then applies
// command-line flags from args on top.
func Load(args []string) (*Config, error) {
	fallback, err := envBool("TASKBOARD_FALLBACK_ON_ERROR", false)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Addr:               envString("TASKBOARD_ADDR", DefaultAddr),
		BackendBaseURL:     envString("TASKBOARD_BACKEND_URL", DefaultBackendURL),
		APIBaseURL:         os.Getenv("TASKBOARD_API_URL"),
		UseFallbackOnError: fallback,
	}

	fs := flag.NewFlagSet("taskboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.BackendBaseURL, "backend", cfg.BackendBaseURL, "record-storage base URL")
	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "proxy URL used by the views")
	fs.BoolVar(&cfg.UseFallbackOnError, "fallback", cfg.UseFallbackOnError, "show sample tasks when the list cannot be fetched")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.BackendBaseURL = strings.TrimRight(cfg.BackendBaseURL, "/")
	if cfg.BackendBaseURL == "" {
		return nil, errors.New("backend base URL is required")
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = localURL(cfg.Addr) + APIPath
	}
	return cfg, nil
}

// localURL turns a listen address into a URL reachable from the same host.
func localURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
