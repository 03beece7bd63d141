// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (loader, server) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/grimoire/internal/platform/validate"
)

// # Dataset Sources

const (
	// SourceFile reads the catalog document from a local path.
	SourceFile = "file"
	// SourceHTTP fetches the catalog document from a URL.
	SourceHTTP = "http"
	// SourcePostgres reads the catalog document from the catalog_document table.
	SourcePostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the Grimoire server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Catalog document source
	DataSource   string `env:"DATA_SOURCE"   envDefault:"file"`
	DataPath     string `env:"DATA_PATH"     envDefault:"data/data.json"`
	DataURL      string `env:"DATA_URL"`
	DocumentName string `env:"DOCUMENT_NAME" envDefault:"default"`

	// Relational Database (PostgreSQL), only used by the postgres source.
	DatabaseURL   string `env:"DATABASE_URL"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Fallback language when Accept-Language matches nothing (pt or en).
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"pt"`

	// Cross-Origin Resource Sharing for the JSON API
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Validate enforces the requirements of the selected dataset source.
func (c *Config) Validate() error {
	validator := &validate.Validator{}

	validator.
		Required("SERVER_PORT", c.ServerPort).
		OneOf("DATA_SOURCE", c.DataSource, SourceFile, SourceHTTP, SourcePostgres).
		OneOf("DEFAULT_LANGUAGE", c.DefaultLanguage, "pt", "en")

	switch c.DataSource {
	case SourceFile:
		validator.Required("DATA_PATH", c.DataPath)
	case SourceHTTP:
		validator.URL("DATA_URL", c.DataURL)
	case SourcePostgres:
		validator.
			Custom("DATABASE_URL", c.DatabaseURL == "", "Required for the postgres source").
			Required("DOCUMENT_NAME", c.DocumentName).
			MaxLen("DOCUMENT_NAME", c.DocumentName, 64)
	}

	return validator.Err()
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// OriginSuffix returns the origin suffix allowed by CORS outside development.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
