package spec

import "strings"

// schemaRefPrefix is the only reference shape the resolver accepts.
// External files, other component kinds, and deeper pointers are out of
// scope: callers must tolerate unresolved references, so anything else
// reports not-found instead of failing.
const schemaRefPrefix = "#/components/schemas/"

// SchemaRefName extracts the component schema name from a local schema
// reference. It returns ok=false for any other reference shape: different
// roots, different component kinds, nested pointers, or malformed input.
func SchemaRefName(ref string) (string, bool) {
	name, found := strings.CutPrefix(ref, schemaRefPrefix)
	if !found || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

// SchemaByName looks up a named schema in components.schemas.
func (d *Document) SchemaByName(name string) (*Schema, bool) {
	if d.Components == nil {
		return nil, false
	}
	s, ok := d.Components.Schemas[name]
	return s, ok
}

// ResolveSchemaRef resolves a reference of the shape
// #/components/schemas/<Name> to the schema it points to.
//
// Resolution is non-recursive: the returned schema may itself contain nested
// references in its properties, items, or composition members, and the
// caller chooses whether to resolve further. Rendering performs exactly one
// level and embeds remaining references as literal $ref text, which bounds
// rendering cost and sidesteps cycle detection for self-referential schemas.
func (d *Document) ResolveSchemaRef(ref string) (*Schema, bool) {
	name, ok := SchemaRefName(ref)
	if !ok {
		return nil, false
	}
	return d.SchemaByName(name)
}

// SchemaCount returns the number of named schemas in components.schemas.
func (d *Document) SchemaCount() int {
	if d.Components == nil {
		return 0
	}
	return len(d.Components.Schemas)
}
