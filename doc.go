// Package oasquery exposes a REST API's OpenAPI 3.x description to AI agents
// through a small query engine and an MCP (Model Context Protocol) server.
//
// oasquery ingests a raw OpenAPI 3.x document, derives a normalized endpoint
// index, resolves schema references, and renders human- and agent-readable
// views. It does not validate, modify, or call the described API; it only
// answers questions about it.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - spec: the typed shape of an OpenAPI 3.x document, the document loader,
//     and component schema reference resolution
//   - index: the flattened endpoint index, tag aggregation, text/tag/method
//     search, and operation lookup
//   - render: Markdown-like text views of endpoint lists, endpoint details,
//     schemas, and document summaries
//
// # Quick Start
//
// Load a spec and list its endpoints:
//
//	import (
//		"github.com/erraggy/oasquery/index"
//		"github.com/erraggy/oasquery/render"
//		"github.com/erraggy/oasquery/spec"
//	)
//
//	data, _ := os.ReadFile("openapi.yaml")
//	doc, err := spec.Load(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	records := index.Endpoints(doc)
//	fmt.Println(render.EndpointList(records))
//
// Search the index:
//
//	hits := index.Search(records, index.Filter{Query: "login", Method: "post"})
//
// Render a single operation or a named schema:
//
//	fmt.Println(render.EndpointDetails(doc, "POST", "/login"))
//	fmt.Println(render.SchemaDetails(doc, "User"))
//
// # MCP Server
//
// The oasquery binary runs an MCP server over stdio that exposes the same
// queries as tools (list_endpoints, search_endpoints, get_endpoint_details,
// get_schema_details, list_tags, get_raw_spec, getting_started):
//
//	oasquery serve --spec https://api.example.com/openapi.json
//
// The spec source may also be supplied via the OASQUERY_SPEC environment
// variable. Every tool call re-reads the source; there is no caching, so the
// served view always matches the document on disk or at the URL.
//
// # Error Handling
//
// Acquisition and parse failures are returned as errors; nothing can be
// queried without a document. Lookup misses (unknown method+path, unknown
// schema name, unsupported $ref shapes) are not errors: they render as
// descriptive not-found text so an agent can keep going.
//
// # Limitations
//
//   - OpenAPI 2.0 (Swagger) documents are rejected; only 3.x is supported
//   - $ref resolution covers #/components/schemas/<Name> pointers only, one
//     level deep; nested references render as literal $ref text
//   - Documents are read-only: oasquery never validates or rewrites them
package oasquery
