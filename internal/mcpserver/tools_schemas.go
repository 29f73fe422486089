package mcpserver

import (
	"context"

	"github.com/erraggy/oasquery/render"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type schemaDetailsInput struct {
	SchemaName string `json:"schema_name" jsonschema:"Exact name of the schema under components.schemas (case-sensitive)"`
}

func (h *toolHandler) handleSchemaDetails(ctx context.Context, _ *mcp.CallToolRequest, input schemaDetailsInput) (*mcp.CallToolResult, any, error) {
	if input.SchemaName == "" {
		return requireField("schema_name"), nil, nil
	}
	doc, err := h.acquire(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}
	// An unknown schema name renders as a not-found message, not an error result.
	return textResult(render.SchemaDetails(doc, input.SchemaName)), nil, nil
}
