package spec

import (
	"go.yaml.in/yaml/v4"
)

// Schema represents a JSON Schema as used by OpenAPI 3.x documents.
//
// A schema node is a tagged union: either a reference (Ref is non-empty and
// the other fields are ignored) or an inline schema. Every consumption site
// must branch on IsRef before reading the inline fields; this prevents a
// reference from being silently misread as an empty inline schema.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`

	// Type validation
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // e.g., "date-time", "email", "uri"
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Object validation
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	AdditionalProperties any                `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *Schema or bool

	// Array validation
	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`

	// OAS specific fields
	Nullable   bool `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0 only
	ReadOnly   bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly  bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	// and any other fields not explicitly modeled
	Extra map[string]any `yaml:",inline" json:"-"`

	// propOrder records the property declaration order from the source
	// document. Schema rendering follows it instead of alphabetizing.
	propOrder []string
}

// UnmarshalYAML decodes the schema and records the declaration order of its
// properties, which rendering preserves.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	type alias Schema
	if err := node.Decode((*alias)(s)); err != nil {
		return err
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "properties" {
			continue
		}
		props := node.Content[i+1]
		if props.Kind != yaml.MappingNode {
			break
		}
		s.propOrder = make([]string, 0, len(props.Content)/2)
		for j := 0; j+1 < len(props.Content); j += 2 {
			s.propOrder = append(s.propOrder, props.Content[j].Value)
		}
		break
	}
	return nil
}

// IsRef reports whether the schema is reference-shaped ($ref) rather than
// declared inline.
func (s *Schema) IsRef() bool {
	return s.Ref != ""
}

// PropertyNames returns the property names in source declaration order,
// followed by any names present in Properties but missing from the recorded
// order (possible only for programmatically built schemas), sorted for
// determinism. Callers must not modify the returned slice.
func (s *Schema) PropertyNames() []string {
	if len(s.Properties) == 0 {
		return nil
	}
	if len(s.propOrder) == len(s.Properties) {
		return s.propOrder
	}
	return mergeKeyOrder(s.propOrder, s.Properties)
}
