// Copyright (c) 2026 BAR HIK. All rights reserved.

package config

import "testing"

func TestLoadRequiresCMSEndpoint(t *testing.T) {
	t.Setenv("WORDPRESS_GRAPHQL_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load: expected error when WORDPRESS_GRAPHQL_URL is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WORDPRESS_GRAPHQL_URL", "https://cms.example.com/graphql")
	t.Setenv("APP_HOST", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("SITE_BASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr: got %q, want %q", cfg.Addr(), "0.0.0.0:8080")
	}
	if !cfg.IsDev() {
		t.Error("IsDev: expected development mode by default")
	}
	if cfg.SiteBaseURL != "https://blog.barhik.tokyo" {
		t.Errorf("SiteBaseURL: got %q", cfg.SiteBaseURL)
	}
	if cfg.CMSEndpoint != "https://cms.example.com/graphql" {
		t.Errorf("CMSEndpoint: got %q", cfg.CMSEndpoint)
	}
}

func TestLoadTrimsBaseURLSlash(t *testing.T) {
	t.Setenv("WORDPRESS_GRAPHQL_URL", "https://cms.example.com/graphql")
	t.Setenv("SITE_BASE_URL", "https://example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.SiteBaseURL != "https://example.com" {
		t.Errorf("SiteBaseURL: got %q, want trailing slash removed", cfg.SiteBaseURL)
	}
}

func TestContactConfigured(t *testing.T) {
	cfg := &Config{}
	if cfg.ContactConfigured() {
		t.Error("ContactConfigured: expected false with empty settings")
	}

	cfg.CF7BaseURL = "https://wp.example.com/wp-json/contact-form-7/v1/contact-forms"
	if cfg.ContactConfigured() {
		t.Error("ContactConfigured: expected false without a form ID")
	}

	cfg.CF7FormID = "123"
	if !cfg.ContactConfigured() {
		t.Error("ContactConfigured: expected true with base URL and form ID")
	}
}
