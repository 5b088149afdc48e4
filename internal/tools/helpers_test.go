package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chybatronik/goAttioMCP/pkg/errors"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestLimitArg(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		want    int
		wantErr bool
	}{
		{"absent means default", map[string]any{}, 0, false},
		{"whole number", map[string]any{"limit": float64(25)}, 25, false},
		{"zero", map[string]any{"limit": float64(0)}, 0, false},
		{"fractional", map[string]any{"limit": 2.5}, 0, true},
		{"negative", map[string]any{"limit": float64(-1)}, 0, true},
		{"wrong type", map[string]any{"limit": "ten"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := limitArg(callRequest(tt.args), "limit")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringArg(t *testing.T) {
	req := callRequest(map[string]any{"name": "OpenAI"})

	assert.Equal(t, "OpenAI", stringArg(req, "name"))
	assert.Equal(t, "", stringArg(req, "missing"))
}

func TestErrorResult(t *testing.T) {
	result := errorResult(apperrors.NewCompanyNotFoundError("company-123"))

	require.True(t, result.IsError)
	text := resultText(t, result)
	assert.Equal(t, "Error: Company not found: company-123", text)
}

func TestJSONResult(t *testing.T) {
	result, err := jsonResult(map[string]any{"data": []string{"a"}})
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, `"data"`)
	assert.Contains(t, text, "\n", "output should be indented")
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return content.Text
}
