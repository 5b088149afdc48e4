// Package main provides the entry point for the goAttioMCP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/cors"

	"github.com/chybatronik/goAttioMCP/internal/attio"
	"github.com/chybatronik/goAttioMCP/internal/config"
	"github.com/chybatronik/goAttioMCP/internal/handlers"
	"github.com/chybatronik/goAttioMCP/internal/logging"
	"github.com/chybatronik/goAttioMCP/internal/middleware"
	"github.com/chybatronik/goAttioMCP/internal/tools"
)

var (
	// Build information (set during build)
	Version   = "dev"
	BuildTime = ""
)

func main() {
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	logger := setupStructuredLogging(appConfig)
	logStartupEvents(logger, appConfig)

	client := attio.New(appConfig.Attio, logger)
	mcpServer := tools.NewServer(client, logger, Version)

	switch appConfig.Server.Transport {
	case "sse":
		runSSE(appConfig, mcpServer, client, logger)
	default:
		runStdio(mcpServer, logger)
	}
}

// runStdio serves the MCP protocol over stdin/stdout. All logging goes to
// stderr so the protocol stream stays clean.
func runStdio(mcpServer *server.MCPServer, logger *logging.Logger) {
	logger.Startup("starting MCP server on stdio transport")

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("stdio server terminated", logging.FieldError, err)
		os.Exit(1)
	}

	logger.Startup("goAttioMCP service shutdown completed")
}

// runSSE serves the MCP protocol over HTTP with SSE, wrapped in the
// middleware chain, plus the /health endpoint.
func runSSE(appConfig *config.Config, mcpServer *server.MCPServer, client *attio.Client, logger *logging.Logger) {
	httpServer := setupHTTPServer(appConfig, mcpServer, client, logger)

	go func() {
		logger.Startup("HTTP server starting",
			"host", appConfig.Server.Host,
			"port", appConfig.Server.Port,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed to start", logging.FieldError, err)
			log.Fatalf("FATAL: HTTP server failed to start: %v", err)
		}
	}()

	logger.Startup("goAttioMCP service started successfully")

	gracefulShutdown(httpServer, appConfig.Application.ShutdownTimeout, logger)
}

// setupHTTPServer configures the SSE transport with middleware and health checks
func setupHTTPServer(appConfig *config.Config, mcpServer *server.MCPServer, client *attio.Client, logger *logging.Logger) *http.Server {
	baseURL := fmt.Sprintf("http://%s:%d", appConfig.Server.Host, appConfig.Server.Port)
	sseServer := server.NewSSEServer(mcpServer,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
	)

	healthHandler := handlers.NewHealthHandler("goAttioMCP", Version, logger)
	if appConfig.Application.HealthCheckEnabled {
		healthHandler.AddChecker(attio.NewHealthChecker(client))
	}

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())
	mux.Handle("/health", healthHandler)

	if appConfig.Auth.BearerToken == "" {
		logger.Warn("MCP_BEARER_TOKEN is empty, inbound authentication is disabled")
	}

	// Order matters: CORS -> rate limit -> request ID -> auth -> logging -> router.
	// The request ID is assigned before auth so rejections log a correlatable ID.
	handler := http.Handler(mux)
	handler = middleware.NewLoggingMiddleware(logger, handler)
	handler = middleware.BearerAuth(appConfig.Auth.BearerToken, logger)(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.SecurityRateLimit(float64(appConfig.Application.RateLimitRequests)/60.0, 20, logger)(handler)
	handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
	}).Handler(handler)

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", appConfig.Server.Host, appConfig.Server.Port),
		Handler:      handler,
		ReadTimeout:  time.Duration(appConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(appConfig.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(appConfig.Server.IdleTimeout) * time.Second,
	}
}

// gracefulShutdown handles graceful shutdown of the SSE transport
func gracefulShutdown(httpServer *http.Server, shutdownTimeout int, logger *logging.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Startup("Received signal, initiating graceful shutdown", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
	defer cancel()

	logger.Startup("Shutting down HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", logging.FieldError, err)
	} else {
		logger.Startup("HTTP server shutdown completed")
	}

	logger.Startup("goAttioMCP service shutdown completed")
}

// setupStructuredLogging initializes the structured logger based on configuration
func setupStructuredLogging(cfg *config.Config) *logging.Logger {
	logger := logging.NewStructuredLogger(
		cfg.Logging.Level,
		cfg.Logging.Format,
		"goAttioMCP",
		Version,
	)

	return logger.WithServiceContext()
}

// logStartupEvents logs comprehensive startup information
func logStartupEvents(logger *logging.Logger, cfg *config.Config) {
	logger.Startup("goAttioMCP service starting up",
		"version", Version,
		"service", "goAttioMCP",
	)

	logger.Startup("configuration loaded successfully",
		"environment", cfg.Application.Environment,
		"log_level", cfg.Logging.Level,
		"transport", cfg.Server.Transport,
		"server_port", cfg.Server.Port,
		"server_host", cfg.Server.Host,
		"attio_base_url", cfg.Attio.BaseURL,
		"health_check_enabled", cfg.Application.HealthCheckEnabled,
	)
}
