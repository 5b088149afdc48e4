// Package tools exposes the Attio client operations as MCP tools.
package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	apperrors "github.com/chybatronik/goAttioMCP/pkg/errors"
)

// stringArg extracts an optional string argument; absent means empty
func stringArg(req mcp.CallToolRequest, key string) string {
	v, _ := req.GetArguments()[key].(string)
	return v
}

// limitArg extracts an optional result limit. JSON numbers arrive as
// float64, so whole-ness is checked explicitly: a fractional or negative
// limit fails validation instead of being silently truncated. Zero means
// "not supplied" and lets the operation apply its default.
func limitArg(req mcp.CallToolRequest, key string) (int, error) {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return 0, nil
	}

	v, ok := raw.(float64)
	if !ok {
		return 0, apperrors.NewValidationError(
			apperrors.ErrCodeInvalidLimit,
			fmt.Sprintf("%s must be a number", key),
		)
	}
	if v != math.Trunc(v) {
		return 0, apperrors.NewValidationError(
			apperrors.ErrCodeInvalidLimit,
			fmt.Sprintf("%s must be a whole number, got %v", key, v),
		)
	}
	if v < 0 {
		return 0, apperrors.NewValidationError(
			apperrors.ErrCodeInvalidLimit,
			fmt.Sprintf("%s must be non-negative, got %v", key, v),
		)
	}
	return int(v), nil
}

// jsonResult serializes a value as indented JSON tool output
func jsonResult(v any) (*mcp.CallToolResult, error) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(string(encoded)), nil
}

// rawResult re-indents a raw remote payload as tool output
func rawResult(raw json.RawMessage) (*mcp.CallToolResult, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return errorResult(err), nil
	}
	return jsonResult(decoded)
}

// errorResult converts a failure into the textual "Error: ..." contract,
// so the calling agent always receives a result rather than a protocol error
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Error: %s", err))
}
