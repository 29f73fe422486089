package mcpserver

import (
	"context"

	"github.com/erraggy/oasquery/render"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listTagsInput struct{}

func (h *toolHandler) handleListTags(ctx context.Context, _ *mcp.CallToolRequest, _ listTagsInput) (*mcp.CallToolResult, any, error) {
	doc, err := h.acquire(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}
	tags := render.TagList(doc)
	if tags == "" {
		tags = "No tags are declared in this specification."
	}
	return textResult(tags), nil, nil
}

type rawSpecInput struct{}

func (h *toolHandler) handleRawSpec(ctx context.Context, _ *mcp.CallToolRequest, _ rawSpecInput) (*mcp.CallToolResult, any, error) {
	doc, err := h.acquire(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}
	return textResult(render.RawDocument(doc)), nil, nil
}

type gettingStartedInput struct{}

func (h *toolHandler) handleGettingStarted(ctx context.Context, _ *mcp.CallToolRequest, _ gettingStartedInput) (*mcp.CallToolResult, any, error) {
	doc, err := h.acquire(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}
	return textResult(render.GettingStarted(doc, cfg.TagSample)), nil, nil
}
