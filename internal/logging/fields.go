// Package logging provides standard field definitions for structured logging
package logging

import (
	"log/slog"
)

// Standard log field values and constants for structured logging
const (
	// Standard field names
	FieldTimestamp    = "ts"
	FieldLevel        = "level"
	FieldMessage      = "msg"
	FieldRequestID    = "req_id"
	FieldHTTPMethod   = "method"
	FieldHTTPPath     = "path"
	FieldHTTPStatus   = "status"
	FieldLatencyMs    = "latency_ms"
	FieldService      = "service"
	FieldVersion      = "version"
	FieldUptimeSec    = "uptime_seconds"
	FieldError        = "error"
	FieldResponseTime = "response_time_ms"
	FieldCheckName    = "check_name"
	FieldCheckStatus  = "check_status"

	// Attio operation field names
	FieldOperation    = "operation"
	FieldRecordID     = "record_id"
	FieldMemberID     = "member_id"
	FieldParentObject = "parent_object"
	FieldResultCount  = "result_count"
	FieldRemoteStatus = "remote_status"

	// Log levels
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	// Health check statuses
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusOK        = "ok"
	StatusFailed    = "failed"
)

// StandardField provides helper functions for creating structured log fields
type StandardField struct{}

// NewStandardField creates a new StandardField instance
func NewStandardField() *StandardField {
	return &StandardField{}
}

// RequestID adds request ID field
func (sf *StandardField) RequestID(reqID string) slog.Attr {
	return slog.String(FieldRequestID, reqID)
}

// Operation adds the remote operation name field
func (sf *StandardField) Operation(op string) slog.Attr {
	return slog.String(FieldOperation, op)
}

// RecordID adds the record identifier field
func (sf *StandardField) RecordID(id string) slog.Attr {
	return slog.String(FieldRecordID, id)
}

// ResultCount adds the result count field
func (sf *StandardField) ResultCount(n int) slog.Attr {
	return slog.Int(FieldResultCount, n)
}

// RemoteStatus adds the remote HTTP status field
func (sf *StandardField) RemoteStatus(status int) slog.Attr {
	return slog.Int(FieldRemoteStatus, status)
}

// Service adds service name field
func (sf *StandardField) Service(service string) slog.Attr {
	return slog.String(FieldService, service)
}

// Version adds version field
func (sf *StandardField) Version(version string) slog.Attr {
	return slog.String(FieldVersion, version)
}

// Error adds error field
func (sf *StandardField) Error(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// CheckStatus adds health check status field
func (sf *StandardField) CheckStatus(status string) slog.Attr {
	return slog.String(FieldCheckStatus, status)
}
