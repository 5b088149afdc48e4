package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/chybatronik/goAttioMCP/internal/attio"
	"github.com/chybatronik/goAttioMCP/internal/logging"
)

// serverInstructions is returned in the MCP initialize response so clients
// know when to reach for these tools.
const serverInstructions = `Attio CRM tools for searching and fetching companies, people, notes, ` +
	`tasks, and workspace members. Use search_companies / search_people to find ` +
	`records, then get_company_details / get_person_details with the record_id ` +
	`from the search results. Notes are fetched per record with get_company_notes ` +
	`/ get_person_notes. Workspace members (record owners, task assignees) are ` +
	`resolved with list_workspace_members, search_workspace_member_by_email, and ` +
	`get_workspace_member.`

// NewServer creates the MCP server with every Attio tool registered
func NewServer(client *attio.Client, logger *logging.Logger, version string) *server.MCPServer {
	srv := server.NewMCPServer(
		"attio-mcp",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	registerCompanyTools(srv, client, logger)
	registerPeopleTools(srv, client, logger)
	registerWorkspaceTools(srv, client, logger)
	registerTaskTools(srv, client, logger)

	return srv
}
