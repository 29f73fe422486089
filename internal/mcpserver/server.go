// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes one API's OpenAPI description as query tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/erraggy/oasquery"
	"github.com/erraggy/oasquery/internal/source"
	"github.com/erraggy/oasquery/spec"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasquery MCP server — answers questions about one REST API from its OpenAPI 3.x description.

The server is bound to a single spec source chosen at startup (OASQUERY_SPEC env var or --spec flag): a local file path or an http(s) URL. Every tool call re-reads the source, so the answers always reflect the current document.

Suggested flow:
1. getting_started — API title, base URLs, endpoint/schema/tag counts.
2. list_endpoints or search_endpoints — find operations, grouped by tag. 🔒 marks endpoints that require authentication.
3. get_endpoint_details — parameters, request body, and responses for one METHOD + path.
4. get_schema_details — full JSON structure of a named component schema.

Key settings (env vars in your MCP client config):
- OASQUERY_SPEC — the spec source (required unless --spec is passed)
- OASQUERY_HTTP_TIMEOUT (default: 30s) — timeout for URL fetches
- OASQUERY_ALLOW_PRIVATE_IPS (default: false) — allow fetching specs from private/loopback addresses
- OASQUERY_TAG_SAMPLE (default: 10) — tags listed in getting_started before truncation
- OASQUERY_MAX_SPEC_SIZE (default: 10485760) — maximum document size in bytes`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled. location overrides the
// OASQUERY_SPEC environment variable when non-empty.
func Run(ctx context.Context, location string) error {
	if location == "" {
		location = cfg.Spec
	}
	src, err := source.Detect(location)
	if err != nil {
		return err
	}

	h := &toolHandler{
		src:    src,
		client: source.NewHTTPClient(cfg.HTTPTimeout, cfg.AllowPrivateIPs),
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasquery", Version: oasquery.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, h)
	return server.Run(ctx, &mcp.StdioTransport{})
}

// toolHandler carries the bound spec source and HTTP client shared by all
// tool handlers. It holds no parsed document: every call re-acquires.
type toolHandler struct {
	src    source.Source
	client *http.Client
}

// acquire fetches and parses the bound document for one tool call.
func (h *toolHandler) acquire(ctx context.Context) (*spec.Document, error) {
	return h.src.Fetch(ctx, h.client, cfg.MaxSpecSize)
}

func registerAllTools(server *mcp.Server, h *toolHandler) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "getting_started",
		Description: "Get an orientation summary of the API: title, version, description, base URLs, endpoint counts split by authentication requirement, schema count, and a sample of tags. Call this first when exploring an unfamiliar API.",
	}, h.handleGettingStarted)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_endpoints",
		Description: "List every endpoint in the API, grouped by tag with tag groups in alphabetical order. Endpoints with multiple tags appear under each; endpoints with none appear under a trailing Untagged group. Each line shows 🔒 (auth required) or 🔓 (public), METHOD, path, summary, and a deprecation marker.",
	}, h.handleListEndpoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_endpoints",
		Description: "Search endpoints by free-text query (case-insensitive substring over path, summary, and description), exact tag, and/or HTTP method (case-insensitive). Filters combine conjunctively. Results use the same grouped format as list_endpoints. With no filters, returns all endpoints.",
	}, h.handleSearchEndpoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_endpoint_details",
		Description: "Get the full contract of one endpoint identified by HTTP method (case-insensitive) and literal path as it appears in the spec, e.g. /users/{id}. Returns summary, description, tags, operationId, whether authentication is required, parameters, request body, and responses with their schemas as JSON.",
	}, h.handleEndpointDetails)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_schema_details",
		Description: "Get the full JSON structure of a named schema from components.schemas: type, properties in source order, required fields, enums, and composition (allOf/anyOf/oneOf). The name is case-sensitive; $ref values one level deep are resolved.",
	}, h.handleSchemaDetails)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tags",
		Description: "List every tag used by at least one operation, sorted alphabetically, one per line. Useful for choosing a tag filter for search_endpoints.",
	}, h.handleListTags)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_raw_spec",
		Description: "Get the complete OpenAPI document exactly as its source provides it (YAML or JSON, byte-for-byte). Output can be large; prefer the targeted tools unless the whole document is needed.",
	}, h.handleRawSpec)
}

// textResult wraps rendered text in a successful MCP result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// requireField reports a missing required input field as an error result.
func requireField(name string) *mcp.CallToolResult {
	return errResult(fmt.Errorf("missing required field: %s", name))
}
