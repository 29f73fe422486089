// Package index derives a flat, searchable endpoint index from a loaded
// OpenAPI document.
//
// Everything here is a pure function of its input: indexing walks paths in
// document order and methods in canonical order, so the same document always
// yields the same ordered records. Nothing is cached and nothing is mutated,
// so indexing and searching are safe to run concurrently over a shared
// document.
package index
