package mcpserver

import (
	"context"

	"github.com/erraggy/oasquery/index"
	"github.com/erraggy/oasquery/render"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listEndpointsInput struct{}

func (h *toolHandler) handleListEndpoints(ctx context.Context, _ *mcp.CallToolRequest, _ listEndpointsInput) (*mcp.CallToolResult, any, error) {
	doc, err := h.acquire(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}
	return textResult(render.EndpointList(index.Endpoints(doc))), nil, nil
}

type searchEndpointsInput struct {
	Query  string `json:"query,omitempty"  jsonschema:"Case-insensitive substring matched against path\\, summary\\, and description"`
	Tag    string `json:"tag,omitempty"    jsonschema:"Exact tag name (case-sensitive); see list_tags"`
	Method string `json:"method,omitempty" jsonschema:"HTTP method filter (case-insensitive\\, e.g. GET or get)"`
}

func (h *toolHandler) handleSearchEndpoints(ctx context.Context, _ *mcp.CallToolRequest, input searchEndpointsInput) (*mcp.CallToolResult, any, error) {
	doc, err := h.acquire(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}
	records := index.Search(index.Endpoints(doc), index.Filter{
		Query:  input.Query,
		Tag:    input.Tag,
		Method: input.Method,
	})
	return textResult(render.EndpointList(records)), nil, nil
}

type endpointDetailsInput struct {
	Method string `json:"method" jsonschema:"HTTP method (case-insensitive\\, e.g. GET)"`
	Path   string `json:"path"   jsonschema:"Literal path template as written in the spec\\, e.g. /users/{id}"`
}

func (h *toolHandler) handleEndpointDetails(ctx context.Context, _ *mcp.CallToolRequest, input endpointDetailsInput) (*mcp.CallToolResult, any, error) {
	if input.Method == "" {
		return requireField("method"), nil, nil
	}
	if input.Path == "" {
		return requireField("path"), nil, nil
	}
	doc, err := h.acquire(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}
	// An unknown method+path renders as guidance text, not an error result.
	return textResult(render.EndpointDetails(doc, input.Method, input.Path)), nil, nil
}
