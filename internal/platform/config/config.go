// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. An optional .env file
is merged in first; variables already present in the process environment win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to the gate and token issuer via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file consulted by [Load].
const DefaultEnvFile = ".env"

// # Configuration Schema

// Config holds all runtime configuration for the gate API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"3001"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Transport-level Basic credentials checked on every gated request
	BasicAuthUser string `env:"BASIC_AUTH_USER,required,notEmpty"`
	BasicAuthPass string `env:"BASIC_AUTH_PASS,required,notEmpty"`

	// bcrypt hash of the principal's password
	UserPasswordHash string `env:"USER_PASSWORD_HASH,required,notEmpty"`

	// HMAC key for access token signing
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// AssetPath is the file served on the fixed download route.
	AssetPath string `env:"ASSET_PATH" envDefault:"public/secret.zip"`

	// Cross-Origin Resource Sharing. "*" allows every origin.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// # Configuration Loading

// Load reads [DefaultEnvFile] (if present) and parses the environment into a [Config].
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom is [Load] with an explicit dotenv path. An empty path skips the file.
func LoadFrom(envFile string) (*Config, error) {

	// godotenv.Load never overrides variables that are already set.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to read %s: %w", envFile, err)
		}
	}

	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	for i, origin := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(origin)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowsAnyOrigin reports whether CORS is left fully open.
func (c *Config) AllowsAnyOrigin() bool {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// AllowedOrigin reports whether origin may receive CORS headers.
func (c *Config) AllowedOrigin(origin string) bool {
	if c.AllowsAnyOrigin() {
		return true
	}
	for _, allowed := range c.CORSOrigins {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
