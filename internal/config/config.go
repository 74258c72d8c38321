// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Public base URL used for sitemap entries and robots directives.
	SiteBaseURL string

	// Headless CMS GraphQL endpoint (WPGraphQL). Required.
	CMSEndpoint string

	// Valkey (Redis-compatible cache for GraphQL responses)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Contact Form 7 relay settings
	CF7BaseURL string
	CF7FormID  string

	// Dify chat relay settings
	DifyAPIURL string
	DifyAPIKey string
	DifyUser   string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. The CMS endpoint has no sensible
// default and its absence is a fatal configuration error: every content
// page depends on it.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		SiteBaseURL: envOrDefault("SITE_BASE_URL", "https://blog.barhik.tokyo"),

		CMSEndpoint: os.Getenv("WORDPRESS_GRAPHQL_URL"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		CF7BaseURL: os.Getenv("CF7_API_BASE_URL"),
		CF7FormID:  os.Getenv("CF7_FORM_ID"),

		DifyAPIURL: envOrDefault("DIFY_API_URL", "https://api.dify.ai/v1/chat-messages"),
		DifyAPIKey: os.Getenv("DIFY_API_KEY"),
		DifyUser:   envOrDefault("DIFY_USER", "user-royal-chord"),
	}

	if cfg.CMSEndpoint == "" {
		return nil, fmt.Errorf("WORDPRESS_GRAPHQL_URL must be set")
	}

	cfg.SiteBaseURL = strings.TrimRight(cfg.SiteBaseURL, "/")

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ContactConfigured reports whether the Contact Form 7 relay has the
// settings it needs to forward submissions.
func (c *Config) ContactConfigured() bool {
	return c.CF7BaseURL != "" && c.CF7FormID != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
