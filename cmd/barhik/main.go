// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package main is the entry point for the BAR HIK site server. It loads
// configuration, connects the query cache, wires the CMS client and
// handlers, and runs the HTTP server with graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hikichi68/barhik/internal/cache"
	"github.com/hikichi68/barhik/internal/cms"
	"github.com/hikichi68/barhik/internal/config"
	"github.com/hikichi68/barhik/internal/graphql"
	"github.com/hikichi68/barhik/internal/handlers"
	"github.com/hikichi68/barhik/internal/middleware"
	"github.com/hikichi68/barhik/internal/pages"
	"github.com/hikichi68/barhik/internal/relay"
	"github.com/hikichi68/barhik/internal/render"
	"github.com/hikichi68/barhik/internal/router"
	"github.com/hikichi68/barhik/web"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	// The query cache is an optimization, not a dependency: if Valkey is
	// unreachable the site serves every request straight from the CMS.
	var queryCache *cache.QueryCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, query caching disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		queryCache = cache.NewQueryCache(valkeyClient, cache.DefaultQueryTTL)
	}

	gql, err := graphql.New(cfg.CMSEndpoint, queryCache)
	if err != nil {
		slog.Error("failed to initialize graphql client", "error", err)
		os.Exit(1)
	}
	cmsService := cms.New(gql)

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	staticPages, err := pages.Load()
	if err != nil {
		slog.Error("failed to load static pages", "error", err)
		os.Exit(1)
	}

	var contact *relay.ContactClient
	if cfg.ContactConfigured() {
		contact = relay.NewContactClient(cfg.CF7BaseURL, cfg.CF7FormID)
	} else {
		slog.Warn("contact relay not configured — form submissions will fail")
	}

	var chat *relay.ChatClient
	if cfg.DifyAPIKey != "" {
		chat = relay.NewChatClient(cfg.DifyAPIURL, cfg.DifyAPIKey)
	} else {
		slog.Warn("chat relay not configured — chat widget will fail")
	}

	h := handlers.New(cmsService, renderer, staticPages, contact, chat, cfg.SiteBaseURL)

	// The relays call paid upstream APIs, so /api traffic is metered.
	limiter := middleware.NewRateLimiter(10, time.Minute)
	defer limiter.Stop()

	r := router.New(h, limiter, web.StaticFS())

	// WriteTimeout accommodates the blocking chat relay, which waits on
	// the upstream model.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
