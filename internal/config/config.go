// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kuklin

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// saas-backend application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and the
	// bcrypt cost used for password hashing.
	App App `envPrefix:"APP_"`

	// Server holds network and timeout settings for the HTTP server.
	Server Server

	// Storage holds configuration for the persistence backend.
	Storage Storage

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control credential
// hashing and token lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential. The built-in default only exists so that a
	// bare local process can start; production deployments override it.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor applied when hashing signup
	// passwords. Valid range 4..31.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// Port is the TCP port on which the HTTP server listens.
	// Env: PORT
	Port int `env:"PORT"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	DB DB
}

// DB holds connection settings for the document store.
type DB struct {
	// DSN selects and configures the storage backend.
	// A postgres:// or postgresql:// URL selects PostgreSQL; any other
	// non-empty value is treated as a SQLite file path (local development).
	// When empty the server starts without a store and every persistence
	// endpoint reports the backend as unavailable.
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`

	// Name is the logical database name reported by the diagnostic route.
	// Presence-checked only; the actual database is chosen by the DSN.
	// Env: DATABASE_NAME
	Name string `env:"DATABASE_NAME"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all supported sources, in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
