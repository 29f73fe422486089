package index

import (
	"slices"
	"strings"
)

// Filter holds the optional search criteria for the endpoint index. Zero
// values mean "no filter": an empty Filter matches every record.
type Filter struct {
	// Query matches case-insensitively as a substring of the record's path,
	// summary, or description.
	Query string
	// Tag matches exactly (case-sensitive) against the record's tag list.
	Tag string
	// Method matches the HTTP method, ignoring case.
	Method string
}

// IsZero reports whether no filter criteria are set.
func (f Filter) IsZero() bool {
	return f.Query == "" && f.Tag == "" && f.Method == ""
}

// Search filters endpoint records, preserving their original relative order.
// Filters are conjunctive: a record must satisfy every supplied criterion.
// With no criteria the input is returned unchanged. Records missing a field
// simply fail that criterion; nothing here errors.
func Search(records []EndpointRecord, f Filter) []EndpointRecord {
	if f.IsZero() {
		return records
	}

	query := strings.ToLower(f.Query)
	var matched []EndpointRecord
	for _, rec := range records {
		if query != "" && !matchQuery(rec, query) {
			continue
		}
		if f.Tag != "" && !slices.Contains(rec.Tags, f.Tag) {
			continue
		}
		if f.Method != "" && !strings.EqualFold(rec.Method, f.Method) {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}

// matchQuery checks the lowercased query against path, summary, and
// description.
func matchQuery(rec EndpointRecord, query string) bool {
	return strings.Contains(strings.ToLower(rec.Path), query) ||
		strings.Contains(strings.ToLower(rec.Summary), query) ||
		strings.Contains(strings.ToLower(rec.Description), query)
}
