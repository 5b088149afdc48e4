package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/chybatronik/goAttioMCP/internal/attio"
	"github.com/chybatronik/goAttioMCP/internal/logging"
)

func registerPeopleTools(srv *server.MCPServer, client *attio.Client, logger *logging.Logger) {
	srv.AddTool(
		mcp.NewTool("search_people",
			mcp.WithDescription("Search for people in Attio CRM by name and optionally email."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("query",
				mcp.Description("Person name to search for"),
			),
			mcp.WithString("email",
				mcp.Description("Email for disambiguation (e.g., \"john@example.com\")"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results to return (default: 10)"),
			),
		),
		handleSearchPeople(client, logger),
	)

	srv.AddTool(
		mcp.NewTool("get_person_details",
			mcp.WithDescription("Get detailed information about a specific person by record ID."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("person_id",
				mcp.Required(),
				mcp.Description("Unique record_id for the person (from search results or known ID)"),
			),
		),
		handleGetPersonDetails(client, logger),
	)

	srv.AddTool(
		mcp.NewTool("get_person_notes",
			mcp.WithDescription("Get internal notes associated with a person. Returns an empty list when the person has no notes."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("person_id",
				mcp.Required(),
				mcp.Description("Unique record_id for the person"),
			),
		),
		handleGetPersonNotes(client, logger),
	)
}

func handleSearchPeople(client *attio.Client, logger *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, err := limitArg(req, "limit")
		if err != nil {
			return errorResult(err), nil
		}

		batch, err := client.SearchPeople(ctx, attio.SearchPeopleParams{
			Query: stringArg(req, "query"),
			Email: stringArg(req, "email"),
			Limit: limit,
		})
		if err != nil {
			logger.WithOperation("search_people").WithError(err).Error("tool call failed")
			return errorResult(err), nil
		}

		return jsonResult(batch)
	}
}

func handleGetPersonDetails(client *attio.Client, logger *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := client.GetPerson(ctx, stringArg(req, "person_id"))
		if err != nil {
			logger.WithOperation("get_person_details").WithError(err).Error("tool call failed")
			return errorResult(err), nil
		}

		return rawResult(raw)
	}
}

func handleGetPersonNotes(client *attio.Client, logger *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		batch, err := client.GetPersonNotes(ctx, stringArg(req, "person_id"))
		if err != nil {
			logger.WithOperation("get_person_notes").WithError(err).Error("tool call failed")
			return errorResult(err), nil
		}

		return jsonResult(batch)
	}
}
