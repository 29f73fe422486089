// Package spec models OpenAPI 3.x documents as typed, immutable data.
//
// The model is deliberately smaller than the full OpenAPI object graph: it
// keeps the parts an introspection engine needs (paths, operations,
// parameters, request/response content, component schemas, security) and
// captures everything else in Extra maps so nothing is silently dropped.
//
// Two orderings from the source document are preserved because they are part
// of the rendered output contract:
//
//   - Paths iterate in document declaration order
//   - Schema properties marshal in document declaration order
//
// Load parses YAML or JSON input (YAML 1.2 is a JSON superset, so a single
// decoder covers both) and rejects anything that is not OpenAPI 3.x.
//
// Documents are read-only after Load. No function in this module mutates a
// loaded document, so a single *Document may be shared freely across
// concurrent readers.
package spec
