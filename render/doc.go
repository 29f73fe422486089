// Package render turns endpoint records, single operations, and schemas into
// Markdown-like text for agent and terminal consumption.
//
// Every function is pure: input documents are never mutated and no state
// survives a call. Lookup misses render as plain not-found messages rather
// than errors, so callers can hand the text straight back to an agent.
package render
