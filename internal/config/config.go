// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the development server. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings shared by every binary.
	App App `envPrefix:"APP_"`

	// Auth holds the session token settings of the development server.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the database settings of the development server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listening address of the development server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Gateway holds the client gateway and service tuning knobs.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Workers holds background worker intervals for both binaries.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is reported by the build info view and the server.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth holds the session token parameters of the development server.
type Auth struct {
	// TokenSignKey signs and verifies session tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RootPassword is the password given to the root account when the
	// server seeds an empty database.
	// Env: AUTH_ROOT_PASSWORD
	RootPassword string `env:"ROOT_PASSWORD"`
}

// Storage groups the persistence settings of the development server.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	// RepositoryQuota is the repository size in bytes reported by the
	// repository service.
	// Env: STORAGE_REPOSITORY_QUOTA
	RepositoryQuota int64 `env:"REPOSITORY_QUOTA"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver is "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string (a file path for sqlite3).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the inbound transport settings.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SeedDemoData fills an empty database with a sample hierarchy.
	// Env: SERVER_SEED_DEMO_DATA
	SeedDemoData bool `env:"SEED_DEMO_DATA"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the server address; a scheme is optional.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Gateway holds the client gateway and service settings.
type Gateway struct {
	// ThumbnailRecycleThreshold is the number of thumbnail requests served
	// by one thumbnail store before it is closed and recreated.
	// Env: GATEWAY_THUMBNAIL_RECYCLE_THRESHOLD
	ThumbnailRecycleThreshold int `env:"THUMBNAIL_RECYCLE_THRESHOLD"`

	// RetryAttempts is the number of extra attempts the image service makes
	// when a thumbnail or render fails with an out-of-service error.
	// Env: GATEWAY_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// RetryDelay is the pause between two attempts.
	// Env: GATEWAY_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`
}

// Workers holds background job intervals.
type Workers struct {
	// KeepAliveInterval is how often the client pings its session.
	// Env: WORKERS_KEEP_ALIVE_INTERVAL
	KeepAliveInterval time.Duration `env:"KEEP_ALIVE_INTERVAL"`

	// SessionReapInterval is how often the server drops idle sessions.
	// Env: WORKERS_SESSION_REAP_INTERVAL
	SessionReapInterval time.Duration `env:"SESSION_REAP_INTERVAL"`

	// SessionIdleTimeout is how long a server session may stay unused.
	// Env: WORKERS_SESSION_IDLE_TIMEOUT
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT"`
}

// Defaults returns the values used for every field no source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev", LogLevel: "info"},
		Auth: Auth{
			TokenIssuer:   "omero-dev",
			TokenDuration: 12 * time.Hour,
		},
		Storage: Storage{
			DB:              DB{Driver: "sqlite3", DSN: "omero-dev.db"},
			RepositoryQuota: 10 << 30,
		},
		Server: Server{HTTPAddress: "localhost:4064", RequestTimeout: 30 * time.Second},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:4064",
			RequestTimeout: 30 * time.Second,
		},
		Gateway: Gateway{
			ThumbnailRecycleThreshold: 100,
			RetryAttempts:             1,
			RetryDelay:                200 * time.Millisecond,
		},
		Workers: Workers{
			KeepAliveInterval:   5 * time.Minute,
			SessionReapInterval: time.Minute,
			SessionIdleTimeout:  30 * time.Minute,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from, in order of
// precedence, environment variables, command-line flags, the JSON file named
// by either of them, and Defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[0], os.Args[1:])
}

// LoadStructuredConfig is GetStructuredConfig with explicit program
// arguments.
func LoadStructuredConfig(name string, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(name, args).
		withJSON().
		withDefaults().
		build()
}
