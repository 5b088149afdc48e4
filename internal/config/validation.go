package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate validates the configuration and returns any errors
func Validate(config *Config) error {
	var validationErrors []string

	// Validate Attio API configuration
	if err := validateAttioConfig(&config.Attio); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}

	// Validate server configuration
	if err := validateServerConfig(&config.Server); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}

	// Validate logging configuration
	if err := validateLoggingConfig(&config.Logging); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}

	// Validate application configuration
	if err := validateApplicationConfig(&config.Application); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(validationErrors, "; "))
	}

	return nil
}

// validateAttioConfig validates remote Attio API configuration
func validateAttioConfig(attio *AttioConfig) error {
	if attio.APIKey == "" {
		return errors.New("attio API key is required")
	}

	if attio.BaseURL == "" {
		return errors.New("attio API base URL is required")
	}

	parsed, err := url.Parse(attio.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid attio API base URL: %s", attio.BaseURL)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("attio API base URL scheme must be http or https, got: %s", parsed.Scheme)
	}

	if attio.RequestTimeout <= 0 {
		return errors.New("attio request timeout must be positive")
	}

	return nil
}

// validateServerConfig validates MCP transport configuration
func validateServerConfig(server *ServerConfig) error {
	if server.Transport != "stdio" && server.Transport != "sse" {
		return fmt.Errorf("invalid MCP transport: %s, must be one of: stdio, sse", server.Transport)
	}

	if server.Port <= 0 || server.Port > 65535 {
		return errors.New("server port must be between 1 and 65535")
	}

	if server.ReadTimeout <= 0 {
		return errors.New("server read timeout must be positive")
	}

	if server.WriteTimeout <= 0 {
		return errors.New("server write timeout must be positive")
	}

	if server.IdleTimeout <= 0 {
		return errors.New("server idle timeout must be positive")
	}

	return nil
}

// validateLoggingConfig validates logging configuration
func validateLoggingConfig(logging *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	validLevel := false
	for _, level := range validLevels {
		if logging.Level == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s, must be one of: %s", logging.Level, strings.Join(validLevels, ", "))
	}

	validFormats := []string{"json", "text"}
	validFormat := false
	for _, format := range validFormats {
		if logging.Format == format {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid log format: %s, must be one of: %s", logging.Format, strings.Join(validFormats, ", "))
	}

	return nil
}

// validateApplicationConfig validates application configuration
func validateApplicationConfig(app *ApplicationConfig) error {
	validEnvironments := []string{"development", "staging", "production", "test"}
	validEnv := false
	for _, env := range validEnvironments {
		if app.Environment == env {
			validEnv = true
			break
		}
	}
	if !validEnv {
		return fmt.Errorf("invalid environment: %s, must be one of: %s", app.Environment, strings.Join(validEnvironments, ", "))
	}

	if app.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}

	if app.RateLimitRequests <= 0 {
		return errors.New("rate limit requests must be positive")
	}

	return nil
}
