package attio

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/chybatronik/goAttioMCP/internal/logging"
	"github.com/chybatronik/goAttioMCP/internal/validation"
)

// ListTasks fetches tasks, optionally filtered by assignee and deadline.
// The remote endpoint only supports the assignee filter; deadline bounds
// are applied here at day granularity. When any bound is active, a large
// fixed page is requested so the range filter sees the whole working set
// before truncating to the caller's limit.
func (c *Client) ListTasks(ctx context.Context, params ListTasksParams) (*TaskBatch, error) {
	if err := ValidateDateRange(params.DeadlineStart, params.DeadlineEnd); err != nil {
		return nil, err
	}
	if err := validation.ValidateLimit(params.Limit); err != nil {
		return nil, err
	}
	if params.Limit == 0 {
		params.Limit = DefaultTaskLimit
	}

	hasBounds := params.DeadlineStart != "" || params.DeadlineEnd != ""

	fetchLimit := params.Limit
	if hasBounds {
		fetchLimit = taskFetchPage
	}

	query := url.Values{}
	if params.Assignee != "" {
		query.Set("assignee", params.Assignee)
	}
	query.Set("limit", strconv.Itoa(fetchLimit))
	query.Set("offset", "0")

	status, body, err := c.get(ctx, "/tasks", query)
	if err != nil {
		c.logger.AttioError("failed to list tasks", err)
		return nil, err
	}
	if !isSuccess(status) {
		apiErr := remoteError(status, body)
		c.logger.AttioError("task listing failed", apiErr)
		return nil, apiErr
	}

	var batch TaskBatch
	if err := decodeInto(body, &batch); err != nil {
		c.logger.AttioError("failed to decode tasks", err)
		return nil, err
	}
	if batch.Data == nil {
		batch.Data = []json.RawMessage{}
	}

	if hasBounds {
		filtered, err := filterTasksByDeadline(batch.Data, params.DeadlineStart, params.DeadlineEnd)
		if err != nil {
			c.logger.AttioError("failed to filter tasks by deadline", err)
			return nil, err
		}
		batch.Data = filtered
	}

	if len(batch.Data) > params.Limit {
		batch.Data = batch.Data[:params.Limit]
	}

	c.logger.Attio("task listing completed",
		logging.FieldOperation, "list_tasks",
		logging.FieldResultCount, len(batch.Data),
	)
	return &batch, nil
}

// filterTasksByDeadline keeps tasks whose deadline date falls within the
// inclusive bounds. Comparison is at day granularity in UTC, so a deadline
// anywhere on the end date still matches. Tasks without a deadline are
// dropped whenever a bound is active. Order is preserved.
func filterTasksByDeadline(tasks []json.RawMessage, start, end string) ([]json.RawMessage, error) {
	startT, hasStart, err := parseDateBound("start", start)
	if err != nil {
		return nil, err
	}
	endT, hasEnd, err := parseDateBound("end", end)
	if err != nil {
		return nil, err
	}

	kept := make([]json.RawMessage, 0, len(tasks))
	for _, raw := range tasks {
		var peek taskDeadline
		if err := json.Unmarshal(raw, &peek); err != nil {
			return nil, err
		}
		if peek.DeadlineAt == nil {
			continue
		}

		d := peek.DeadlineAt.UTC()
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

		if hasStart && day.Before(startT) {
			continue
		}
		if hasEnd && day.After(endT) {
			continue
		}
		kept = append(kept, raw)
	}
	return kept, nil
}
