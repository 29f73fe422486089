package render

import (
	"encoding/json"
	"fmt"

	"github.com/erraggy/oasquery/spec"
)

// SchemaJSON renders a schema as pretty-printed JSON with property order
// matching the source document.
//
// Reference-shaped schemas are resolved exactly one level through
// components.schemas before rendering; nested references inside the resolved
// schema remain literal $ref text. Unresolvable references render as the
// bare pointer object so the agent can still see where it points.
func SchemaJSON(doc *spec.Document, s *spec.Schema) string {
	if s.IsRef() {
		if resolved, ok := doc.ResolveSchemaRef(s.Ref); ok {
			s = resolved
		}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Sprintf("(failed to render schema: %v)", err)
	}
	return string(data)
}

// SchemaDetails renders a named component schema: a heading with the schema
// name followed by its full structure as pretty-printed JSON.
//
// An unknown name renders a plain not-found message naming it; it is a
// normal result, not a failure.
func SchemaDetails(doc *spec.Document, name string) string {
	s, ok := doc.SchemaByName(name)
	if !ok {
		return fmt.Sprintf("Schema %q not found in components.schemas.", name)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Sprintf("(failed to render schema %q: %v)", name, err)
	}
	return fmt.Sprintf("## Schema: %s\n\n```json\n%s\n```", name, data)
}
