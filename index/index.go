package index

import (
	"sort"
	"strings"

	"github.com/erraggy/oasquery/spec"
)

// EndpointRecord is the flattened, derived representation of one operation.
// Records are built fresh on every call to Endpoints and never mutated after
// creation.
type EndpointRecord struct {
	Method       string   `json:"method"` // uppercased
	Path         string   `json:"path"`
	Summary      string   `json:"summary,omitempty"`
	Description  string   `json:"description,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	OperationID  string   `json:"operation_id,omitempty"`
	Deprecated   bool     `json:"deprecated,omitempty"`
	RequiresAuth bool     `json:"requires_auth"`
}

// Endpoints flattens the document's path/method tree into an ordered list of
// endpoint records: paths in document declaration order, methods in canonical
// order within each path, one record per present operation.
func Endpoints(doc *spec.Document) []EndpointRecord {
	var records []EndpointRecord
	for _, path := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(path)
		for _, mo := range item.Operations() {
			records = append(records, EndpointRecord{
				Method:       strings.ToUpper(mo.Method),
				Path:         path,
				Summary:      mo.Operation.Summary,
				Description:  mo.Operation.Description,
				Tags:         mo.Operation.Tags,
				OperationID:  mo.Operation.OperationID,
				Deprecated:   mo.Operation.Deprecated,
				RequiresAuth: RequiresAuth(doc, mo.Operation),
			})
		}
	}
	return records
}

// RequiresAuth resolves the effective security requirements for an operation.
//
// An operation's own security list, when the field is present (even empty),
// overrides the document's global security; only when the operation declares
// no security field at all does the global list apply. Authentication is
// required iff the effective list is non-empty.
func RequiresAuth(doc *spec.Document, op *spec.Operation) bool {
	if op.SecurityDeclared() {
		return len(op.Security) > 0
	}
	return len(doc.Security) > 0
}

// Tags returns the set union of every operation's declared tags, sorted
// ascending with no duplicates. Untagged operations contribute nothing.
func Tags(doc *spec.Document) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, path := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(path)
		for _, mo := range item.Operations() {
			for _, tag := range mo.Operation.Tags {
				if !seen[tag] {
					seen[tag] = true
					tags = append(tags, tag)
				}
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// FindOperation looks up a single operation by method and path. The method
// matches case-insensitively; the path must match the document's path string
// literally (no template normalization: /users/{id} must be queried as such).
func FindOperation(doc *spec.Document, method, path string) (*spec.Operation, bool) {
	item, ok := doc.Paths.Get(path)
	if !ok {
		return nil, false
	}
	op := item.Operation(method)
	if op == nil {
		return nil, false
	}
	return op, true
}
