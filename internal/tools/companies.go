package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/chybatronik/goAttioMCP/internal/attio"
	"github.com/chybatronik/goAttioMCP/internal/logging"
)

func registerCompanyTools(srv *server.MCPServer, client *attio.Client, logger *logging.Logger) {
	srv.AddTool(
		mcp.NewTool("search_companies",
			mcp.WithDescription("Search for companies in Attio CRM by name, domain, owner, or reminder date range. All criteria are optional and combine with AND."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("name",
				mcp.Description("Company name substring to search for"),
			),
			mcp.WithString("domain",
				mcp.Description("Domain name for disambiguation (e.g., \"openai.com\")"),
			),
			mcp.WithString("owner_id",
				mcp.Description("Workspace member ID to filter by company owner"),
			),
			mcp.WithString("reminder_start",
				mcp.Description("Inclusive start date for the reminder filter (YYYY-MM-DD)"),
			),
			mcp.WithString("reminder_end",
				mcp.Description("Inclusive end date for the reminder filter (YYYY-MM-DD)"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results to return (default: 15)"),
			),
		),
		handleSearchCompanies(client, logger),
	)

	srv.AddTool(
		mcp.NewTool("get_company_details",
			mcp.WithDescription("Get detailed information about a specific company by record ID."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("company_id",
				mcp.Required(),
				mcp.Description("Unique record_id for the company (from search results or known ID)"),
			),
		),
		handleGetCompanyDetails(client, logger),
	)

	srv.AddTool(
		mcp.NewTool("get_company_notes",
			mcp.WithDescription("Get internal notes associated with a company. Returns an empty list when the company has no notes."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithString("company_id",
				mcp.Required(),
				mcp.Description("Unique record_id for the company"),
			),
		),
		handleGetCompanyNotes(client, logger),
	)
}

func handleSearchCompanies(client *attio.Client, logger *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, err := limitArg(req, "limit")
		if err != nil {
			return errorResult(err), nil
		}

		batch, err := client.SearchCompanies(ctx, attio.SearchCompaniesParams{
			Name:          stringArg(req, "name"),
			Domain:        stringArg(req, "domain"),
			OwnerID:       stringArg(req, "owner_id"),
			ReminderStart: stringArg(req, "reminder_start"),
			ReminderEnd:   stringArg(req, "reminder_end"),
			Limit:         limit,
		})
		if err != nil {
			logger.WithOperation("search_companies").WithError(err).Error("tool call failed")
			return errorResult(err), nil
		}

		return jsonResult(batch)
	}
}

func handleGetCompanyDetails(client *attio.Client, logger *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := client.GetCompany(ctx, stringArg(req, "company_id"))
		if err != nil {
			logger.WithOperation("get_company_details").WithError(err).Error("tool call failed")
			return errorResult(err), nil
		}

		return rawResult(raw)
	}
}

func handleGetCompanyNotes(client *attio.Client, logger *logging.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		batch, err := client.GetCompanyNotes(ctx, stringArg(req, "company_id"))
		if err != nil {
			logger.WithOperation("get_company_notes").WithError(err).Error("tool call failed")
			return errorResult(err), nil
		}

		return jsonResult(batch)
	}
}
