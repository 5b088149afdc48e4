// Package config provides configuration types and structures for the goAttioMCP service.
package config

// Config represents the application configuration
type Config struct {
	Attio       AttioConfig
	Server      ServerConfig
	Auth        AuthConfig
	Logging     LoggingConfig
	Application ApplicationConfig
}

// AttioConfig holds remote Attio API configuration
type AttioConfig struct {
	APIKey         string // Bearer token for the Attio API
	BaseURL        string // Attio API base URL
	RequestTimeout int    // Per-request timeout in seconds
}

// ServerConfig holds MCP transport configuration
type ServerConfig struct {
	Transport    string // MCP transport ("stdio" or "sse")
	Host         string // Host address for the SSE transport
	Port         int    // Port number for the SSE transport
	ReadTimeout  int    // Read timeout in seconds (SSE transport)
	WriteTimeout int    // Write timeout in seconds (SSE transport)
	IdleTimeout  int    // Idle timeout in seconds (SSE transport)
}

// AuthConfig holds inbound authentication configuration
type AuthConfig struct {
	BearerToken string // Expected bearer token for inbound requests; empty disables auth
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // Log level (debug, info, warn, error)
	Format string // Log format (json, text)
}

// ApplicationConfig holds application-specific configuration
type ApplicationConfig struct {
	Environment        string // Environment (development, staging, production)
	ShutdownTimeout    int    // Shutdown timeout in seconds
	RateLimitRequests  int    // Rate limit requests per minute (SSE transport)
	HealthCheckEnabled bool   // Enable the /health endpoint (SSE transport)
}
