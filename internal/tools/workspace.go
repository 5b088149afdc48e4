package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/chybatronik/goAttioMCP/internal/attio"
	"github.com/chybatronik/goAttioMCP/internal/logging"
)

func registerWorkspaceTools(srv *server.MCPServer, client *attio.Client, logger *logging.Logger) {
	srv.AddTool(
		mcp.NewTool("get_workspace_member",
			mcp.WithDescription("Get detailed information about a workspace member by ID. Member IDs appear in owner fields and task assignees."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("member_id",
				mcp.Required(),
				mcp.Description("Unique workspace_member_id"),
			),
		),
		handleGetWorkspaceMember(client, logger),
	)

	srv.AddTool(
		mcp.NewTool("list_workspace_members",
			mcp.WithDescription("List workspace members, optionally filtered by a case-insensitive substring matched against first name, last name, full name, or email address."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("contains",
				mcp.Description("Substring to match against member names and email addresses"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results to return (default: 50)"),
			),
		),
		handleListWorkspaceMembers(client, logger),
	)

	srv.AddTool(
		mcp.NewTool("search_workspace_member_by_email",
			mcp.WithDescription("Find the workspace member with an exact email address, compared case-insensitively."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("email",
				mcp.Required(),
				mcp.Description("Email address of the workspace member"),
			),
		),
		handleSearchWorkspaceMemberByEmail(client, logger),
	)
}

func handleGetWorkspaceMember(client *attio.Client, logger *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := client.GetWorkspaceMember(ctx, stringArg(req, "member_id"))
		if err != nil {
			logger.WithOperation("get_workspace_member").WithError(err).Error("tool call failed")
			return errorResult(err), nil
		}

		return rawResult(raw)
	}
}

func handleListWorkspaceMembers(client *attio.Client, logger *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, err := limitArg(req, "limit")
		if err != nil {
			return errorResult(err), nil
		}

		batch, err := client.ListWorkspaceMembers(ctx)
		if err != nil {
			logger.WithOperation("list_workspace_members").WithError(err).Error("tool call failed")
			return errorResult(err), nil
		}

		matched, err := attio.FilterMembers(batch.Data, stringArg(req, "contains"), limit)
		if err != nil {
			return errorResult(err), nil
		}

		return jsonResult(attio.MemberBatch{Data: matched})
	}
}

func handleSearchWorkspaceMemberByEmail(client *attio.Client, logger *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		email := stringArg(req, "email")

		batch, err := client.ListWorkspaceMembers(ctx)
		if err != nil {
			logger.WithOperation("search_workspace_member_by_email").WithError(err).Error("tool call failed")
			return errorResult(err), nil
		}

		member := attio.FindMemberByEmail(batch.Data, email)
		if member == nil {
			return jsonResult(map[string]string{
				"error": fmt.Sprintf("No workspace member found with email: %s", email),
			})
		}

		return jsonResult(map[string]*attio.WorkspaceMember{"data": member})
	}
}
