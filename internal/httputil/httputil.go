// Package httputil provides HTTP-related validation utilities and constants.
package httputil

import (
	"strconv"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode    = 100 // Minimum valid HTTP status code
	MaxStatusCode    = 599 // Maximum valid HTTP status code
	WildcardChar     = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
)

// HTTP Method Constants (lowercase, matching OpenAPI path item field names)
const (
	MethodGet     = "get"
	MethodPost    = "post"
	MethodPut     = "put"
	MethodPatch   = "patch"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodTrace   = "trace"
)

// Wildcard boundary characters for validation
const (
	minWildcardBoundary = '1'
	maxWildcardBoundary = '5'
)

// Methods lists the HTTP methods an OpenAPI 3.x path item may declare, in
// canonical declaration order. Endpoint indexing iterates this list, so its
// order is part of the engine's output contract.
var Methods = []string{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodPatch,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodTrace,
}

// IsMethod reports whether s names a known HTTP method, ignoring case.
func IsMethod(s string) bool {
	for _, m := range Methods {
		if strings.EqualFold(s, m) {
			return true
		}
	}
	return false
}

// ValidateStatusCode checks if a status code string is valid according to OpenAPI spec.
// Valid values are:
//   - "default" for default response
//   - Extension fields starting with "x-"
//   - Wildcard patterns: 1XX, 2XX, 3XX, 4XX, 5XX
//   - Numeric codes: 100-599
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}

	if strings.HasPrefix(code, "x-") {
		return true
	}

	if len(code) == StatusCodeLength {
		// Check for wildcard patterns (e.g., "2XX", "4XX")
		if code[1] == WildcardChar && code[2] == WildcardChar {
			firstChar := code[0]
			if firstChar >= minWildcardBoundary && firstChar <= maxWildcardBoundary {
				return true
			}
		}

		// Check for numeric codes
		if code[0] >= '0' && code[0] <= '9' &&
			code[1] >= '0' && code[1] <= '9' &&
			code[2] >= '0' && code[2] <= '9' {
			statusCode, err := strconv.Atoi(code)
			if err == nil && statusCode >= MinStatusCode && statusCode <= MaxStatusCode {
				return true
			}
		}
	}

	return false
}
