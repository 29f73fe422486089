package spec

// Parameter describes a single operation parameter
type Parameter struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Name and In use omitempty because parameters can be defined via $ref.
	// When a parameter uses $ref, these fields should be empty in the
	// referencing object (the actual values are in the referenced definition).
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	Schema  *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any     `yaml:"example,omitempty" json:"example,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// IsRef reports whether the parameter is reference-shaped ($ref) rather than
// declared inline.
func (p *Parameter) IsRef() bool {
	return p.Ref != ""
}
