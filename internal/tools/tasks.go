package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/chybatronik/goAttioMCP/internal/attio"
	"github.com/chybatronik/goAttioMCP/internal/logging"
)

func registerTaskTools(srv *server.MCPServer, client *attio.Client, logger *logging.Logger) {
	srv.AddTool(
		mcp.NewTool("list_tasks",
			mcp.WithDescription("List tasks in Attio CRM, optionally filtered by assignee and an inclusive deadline date range. Tasks without a deadline are excluded when a deadline bound is given."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("assignee",
				mcp.Description("Workspace member ID the tasks are assigned to"),
			),
			mcp.WithString("deadline_start",
				mcp.Description("Inclusive start date for the deadline filter (YYYY-MM-DD)"),
			),
			mcp.WithString("deadline_end",
				mcp.Description("Inclusive end date for the deadline filter (YYYY-MM-DD)"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results to return (default: 25)"),
			),
		),
		handleListTasks(client, logger),
	)
}

func handleListTasks(client *attio.Client, logger *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, err := limitArg(req, "limit")
		if err != nil {
			return errorResult(err), nil
		}

		batch, err := client.ListTasks(ctx, attio.ListTasksParams{
			Assignee:      stringArg(req, "assignee"),
			DeadlineStart: stringArg(req, "deadline_start"),
			DeadlineEnd:   stringArg(req, "deadline_end"),
			Limit:         limit,
		})
		if err != nil {
			logger.WithOperation("list_tasks").WithError(err).Error("tool call failed")
			return errorResult(err), nil
		}

		return jsonResult(batch)
	}
}
