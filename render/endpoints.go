package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/erraggy/oasquery/index"
	"github.com/erraggy/oasquery/spec"
)

// UntaggedGroup is the synthetic group name for operations with no tags.
// It is a presentation concept only and never appears in the document-wide
// tag set.
const UntaggedGroup = "Untagged"

// Auth indicators shown before each endpoint line.
const (
	lockedIndicator   = "🔒"
	unlockedIndicator = "🔓"
)

// EndpointList renders endpoint records grouped by tag. Tag groups appear in
// sorted order, each record keeps its index order within its group, and
// untagged records appear exactly once under a trailing Untagged group.
func EndpointList(records []index.EndpointRecord) string {
	if len(records) == 0 {
		return "No endpoints found."
	}

	// Local grouping state, built and discarded within this call.
	groups := make(map[string][]index.EndpointRecord)
	var untagged []index.EndpointRecord
	for _, rec := range records {
		if len(rec.Tags) == 0 {
			untagged = append(untagged, rec)
			continue
		}
		for _, tag := range rec.Tags {
			groups[tag] = append(groups[tag], rec)
		}
	}

	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	var b strings.Builder
	for _, tag := range tags {
		writeGroup(&b, tag, groups[tag])
	}
	if len(untagged) > 0 {
		writeGroup(&b, UntaggedGroup, untagged)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeGroup(b *strings.Builder, heading string, records []index.EndpointRecord) {
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, rec := range records {
		b.WriteString("- ")
		b.WriteString(authIndicator(rec.RequiresAuth))
		fmt.Fprintf(b, " %s %s", rec.Method, rec.Path)
		if rec.Summary != "" {
			fmt.Fprintf(b, " - %s", rec.Summary)
		}
		if rec.Deprecated {
			b.WriteString(" (deprecated)")
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func authIndicator(requiresAuth bool) string {
	if requiresAuth {
		return lockedIndicator
	}
	return unlockedIndicator
}

// EndpointDetails renders a single operation: summary, description, tags,
// operationId, effective authentication requirement, parameters, request
// body, and responses, in that order.
//
// An unknown method+path combination renders a plain not-found message
// naming both; it is a normal result, not a failure.
func EndpointDetails(doc *spec.Document, method, path string) string {
	op, ok := index.FindOperation(doc, method, path)
	if !ok {
		return fmt.Sprintf("No operation found for %s %s. Use the endpoint list to see available endpoints.",
			strings.ToUpper(method), path)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s %s\n\n", strings.ToUpper(method), path)

	if op.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", op.Summary)
	}
	if op.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", op.Description)
	}
	if len(op.Tags) > 0 {
		fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(op.Tags, ", "))
	}
	if op.OperationID != "" {
		fmt.Fprintf(&b, "- Operation ID: %s\n", op.OperationID)
	}
	if op.Deprecated {
		b.WriteString("- Deprecated: Yes\n")
	}
	fmt.Fprintf(&b, "- Authentication required: %s\n", yesNo(index.RequiresAuth(doc, op)))

	if len(op.Parameters) > 0 {
		b.WriteString("\n### Parameters\n\n")
		for _, param := range op.Parameters {
			writeParameter(&b, param)
		}
	}

	if op.RequestBody != nil {
		b.WriteString("\n### Request Body\n\n")
		writeRequestBody(&b, doc, op.RequestBody)
	}

	if op.Responses != nil && (op.Responses.Len() > 0 || op.Responses.Default != nil) {
		b.WriteString("\n### Responses\n")
		for _, code := range op.Responses.Codes() {
			resp, _ := op.Responses.Get(code)
			writeResponse(&b, doc, code, resp)
		}
		if op.Responses.Default != nil {
			writeResponse(&b, doc, "default", op.Responses.Default)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeParameter(b *strings.Builder, param *spec.Parameter) {
	if param.IsRef() {
		fmt.Fprintf(b, "- `%s`\n", param.Ref)
		return
	}
	requirement := "optional"
	if param.Required {
		requirement = "required"
	}
	fmt.Fprintf(b, "- `%s` (%s, %s)", param.Name, param.In, requirement)
	if param.Description != "" {
		fmt.Fprintf(b, " - %s", param.Description)
	}
	b.WriteByte('\n')
}

func writeRequestBody(b *strings.Builder, doc *spec.Document, body *spec.RequestBody) {
	if body.Ref != "" {
		fmt.Fprintf(b, "Reference: `%s`\n", body.Ref)
		return
	}
	fmt.Fprintf(b, "Required: %s\n", yesNo(body.Required))
	if body.Description != "" {
		fmt.Fprintf(b, "\n%s\n", body.Description)
	}
	writeContent(b, doc, body.Content)
}

func writeResponse(b *strings.Builder, doc *spec.Document, code string, resp *spec.Response) {
	fmt.Fprintf(b, "\n#### %s\n\n", code)
	if resp.IsRef() {
		fmt.Fprintf(b, "Reference: `%s`\n", resp.Ref)
		return
	}
	if resp.Description != "" {
		fmt.Fprintf(b, "%s\n", resp.Description)
	}
	writeContent(b, doc, resp.Content)
}

// writeContent renders one fenced schema block per declared content type,
// in sorted content-type order for deterministic output.
func writeContent(b *strings.Builder, doc *spec.Document, content map[string]*spec.MediaType) {
	contentTypes := make([]string, 0, len(content))
	for ct := range content {
		contentTypes = append(contentTypes, ct)
	}
	sort.Strings(contentTypes)

	for _, ct := range contentTypes {
		media := content[ct]
		fmt.Fprintf(b, "\n**%s**\n", ct)
		if media.Schema != nil {
			fmt.Fprintf(b, "\n```json\n%s\n```\n", SchemaJSON(doc, media.Schema))
		}
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
