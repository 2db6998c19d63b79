package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	BackendAddress   string
	SessionSecret    string
	SessionTTL       time.Duration
	NotificationPoll time.Duration
	WorkerPoolSize   int
	OrdersPageSize   int
	BackendTimeout   time.Duration
	ShutdownTimeout  time.Duration
	CollationLocale  string
	LogLevel         string
}

const (
	defaultRunAddress       = ":8080"
	defaultSessionSecret    = "change-me-in-production"
	defaultSessionTTL       = 12 * time.Hour
	defaultNotificationPoll = 30 * time.Second
	defaultWorkerPoolSize   = 4
	defaultOrdersPageSize   = 10
	defaultBackendTimeout   = 10 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultCollationLocale  = "en"
	defaultLogLevel         = "info"
)

// Load parses configuration from flags and environment variables. A .env file
// in the working directory is read first; it never overrides variables that
// are already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		BackendAddress:   getString(lookup, "BACKEND_ADDRESS", ""),
		SessionSecret:    getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:       getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		NotificationPoll: getDuration(lookup, "NOTIFICATION_POLL_INTERVAL", defaultNotificationPoll),
		WorkerPoolSize:   getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		OrdersPageSize:   getInt(lookup, "ORDERS_PAGE_SIZE", defaultOrdersPageSize),
		BackendTimeout:   getDuration(lookup, "BACKEND_TIMEOUT", defaultBackendTimeout),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		CollationLocale:  getString(lookup, "COLLATION_LOCALE", defaultCollationLocale),
		LogLevel:         getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	flags := flag.NewFlagSet("storeadmin", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		pollIntervalStr    = cfg.NotificationPoll.String()
		backendTimeoutStr  = cfg.BackendTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	flags.StringVar(&cfg.BackendAddress, "b", cfg.BackendAddress, "Storefront backend base URL")
	flags.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	flags.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Operator session lifetime")
	flags.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between notification polls")
	flags.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent notification workers")
	flags.IntVar(&cfg.OrdersPageSize, "page-size", cfg.OrdersPageSize, "Orders per page")
	flags.StringVar(&backendTimeoutStr, "backend-timeout", backendTimeoutStr, "Timeout for backend requests")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.StringVar(&cfg.CollationLocale, "locale", cfg.CollationLocale, "Locale used to sort customer names")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level: debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.NotificationPoll, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.BackendTimeout, err = time.ParseDuration(backendTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid backend timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.NotificationPoll <= 0 {
		cfg.NotificationPoll = defaultNotificationPoll
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.OrdersPageSize <= 0 {
		cfg.OrdersPageSize = defaultOrdersPageSize
	}

	if cfg.BackendTimeout <= 0 {
		cfg.BackendTimeout = defaultBackendTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.CollationLocale == "" {
		cfg.CollationLocale = defaultCollationLocale
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.BackendAddress == "" {
		return nil, fmt.Errorf("backend address must be provided")
	}

	if u, err := url.Parse(cfg.BackendAddress); err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("backend address must be an absolute URL")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
