package attio

import (
	"context"
	"fmt"
	"time"

	"github.com/chybatronik/goAttioMCP/internal/handlers"
)

// HealthChecker implements Attio API connectivity checking with timing
type HealthChecker struct {
	client *Client
}

// NewHealthChecker creates a new Attio connectivity checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client}
}

// Name implements the handlers.HealthChecker interface
func (h *HealthChecker) Name() string {
	return "attio"
}

// CheckHealth verifies Attio API connectivity with timing. The workspace
// member listing is the cheapest authenticated call the API offers.
func (h *HealthChecker) CheckHealth(ctx context.Context) handlers.HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := h.client.ListWorkspaceMembers(ctx)
	responseTime := time.Since(start).Milliseconds()

	healthCheck := handlers.HealthCheck{
		Status:         "healthy",
		ResponseTimeMs: responseTime,
	}

	if err != nil {
		healthCheck.Status = "unhealthy"
		healthCheck.Error = fmt.Sprintf("attio connection failed: %v", err)
	}

	return healthCheck
}
