package spec

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasquery/internal/httputil"
)

// Paths holds the relative paths to the individual endpoints, preserving
// document declaration order. The order is part of the engine's output
// contract: endpoint indexing and list rendering follow it.
type Paths struct {
	order []string
	items map[string]*PathItem
}

// UnmarshalYAML decodes the paths object from a mapping node, recording the
// key order as it appears in the source document.
func (p *Paths) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("paths: expected a mapping, got %v", node.Kind)
	}

	p.items = make(map[string]*PathItem, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		// Specification extensions are legal under paths but carry no endpoints.
		if strings.HasPrefix(key, "x-") {
			continue
		}
		var item PathItem
		if err := node.Content[i+1].Decode(&item); err != nil {
			return fmt.Errorf("path %q: %w", key, err)
		}
		if _, dup := p.items[key]; !dup {
			p.order = append(p.order, key)
		}
		p.items[key] = &item
	}
	return nil
}

// Keys returns the path strings in document declaration order.
// Callers must not modify the returned slice.
func (p *Paths) Keys() []string {
	if p == nil {
		return nil
	}
	return p.order
}

// Get returns the path item for an exact path string.
func (p *Paths) Get(path string) (*PathItem, bool) {
	if p == nil {
		return nil, false
	}
	item, ok := p.items[path]
	return item, ok
}

// Len returns the number of paths in the document.
func (p *Paths) Len() int {
	if p == nil {
		return 0
	}
	return len(p.order)
}

// MarshalJSON emits the paths object with keys in document order.
func (p *Paths) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	for _, key := range p.Keys() {
		if err := w.field(key, p.items[key]); err != nil {
			return nil, err
		}
	}
	return w.finish(), nil
}

// PathItem describes the operations available on a single path.
// Field order matches the canonical method order used by endpoint indexing.
type PathItem struct {
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Post        *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Put         *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Patch       *Operation   `yaml:"patch,omitempty" json:"patch,omitempty"`
	Delete      *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation   `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation   `yaml:"head,omitempty" json:"head,omitempty"`
	Trace       *Operation   `yaml:"trace,omitempty" json:"trace,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation returns the operation declared for an HTTP method, matching the
// method name case-insensitively. Returns nil for unknown or absent methods.
func (p *PathItem) Operation(method string) *Operation {
	switch strings.ToLower(method) {
	case httputil.MethodGet:
		return p.Get
	case httputil.MethodPost:
		return p.Post
	case httputil.MethodPut:
		return p.Put
	case httputil.MethodPatch:
		return p.Patch
	case httputil.MethodDelete:
		return p.Delete
	case httputil.MethodOptions:
		return p.Options
	case httputil.MethodHead:
		return p.Head
	case httputil.MethodTrace:
		return p.Trace
	default:
		return nil
	}
}

// MethodOperation pairs an HTTP method name with its declared operation.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operations returns the path item's declared operations in canonical method
// order. Absent methods are skipped.
func (p *PathItem) Operations() []MethodOperation {
	var ops []MethodOperation
	for _, method := range httputil.Methods {
		if op := p.Operation(method); op != nil {
			ops = append(ops, MethodOperation{Method: method, Operation: op})
		}
	}
	return ops
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags        []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string                `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody          `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   *Responses            `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated  bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security    []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`

	// securityPresent records whether the source document declared a security
	// field on this operation, even an empty one. An explicit empty list
	// overrides document-level security; an absent field does not.
	securityPresent bool
}

// UnmarshalYAML decodes the operation and records whether a security field
// was present in the source, since an empty list and an absent field have
// different meanings for authentication detection.
func (o *Operation) UnmarshalYAML(node *yaml.Node) error {
	type alias Operation
	if err := node.Decode((*alias)(o)); err != nil {
		return err
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "security" {
			o.securityPresent = true
			break
		}
	}
	return nil
}

// SecurityDeclared reports whether the operation declares its own security
// field. When true, Operation.Security (even if empty) replaces the
// document-level security requirements for this operation.
func (o *Operation) SecurityDeclared() bool {
	return o.securityPresent
}

// RequestBody describes a single request body
type RequestBody struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Content uses omitempty because request bodies can be defined via $ref.
	Content  map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// MediaType provides the schema and examples for one content type
type MediaType struct {
	Schema  *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any     `yaml:"example,omitempty" json:"example,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Responses is a container for the expected responses of an operation,
// preserving the status code order from the source document.
type Responses struct {
	Default *Response

	order []string
	codes map[string]*Response

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// UnmarshalYAML decodes the responses object, validating status codes during
// parsing. This prevents invalid fields from being captured silently and
// provides clearer error messages.
func (r *Responses) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("responses: expected a mapping, got %v", node.Kind)
	}

	r.codes = make(map[string]*Response, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		switch {
		case key == "default":
			var resp Response
			if err := node.Content[i+1].Decode(&resp); err != nil {
				return fmt.Errorf("default response: %w", err)
			}
			r.Default = &resp
		case strings.HasPrefix(key, "x-"):
			var v any
			if err := node.Content[i+1].Decode(&v); err != nil {
				return fmt.Errorf("responses extension %q: %w", key, err)
			}
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[key] = v
		default:
			if !httputil.ValidateStatusCode(key) {
				return fmt.Errorf("invalid status code %q in responses: must be a valid HTTP status code (e.g., \"200\", \"404\"), wildcard pattern (e.g., \"2XX\"), or extension field (e.g., \"x-custom\")", key)
			}
			var resp Response
			if err := node.Content[i+1].Decode(&resp); err != nil {
				return fmt.Errorf("response for status code %s: %w", key, err)
			}
			if _, dup := r.codes[key]; !dup {
				r.order = append(r.order, key)
			}
			r.codes[key] = &resp
		}
	}
	return nil
}

// Codes returns the declared status codes in document order, excluding
// "default". Callers must not modify the returned slice.
func (r *Responses) Codes() []string {
	if r == nil {
		return nil
	}
	return r.order
}

// Get returns the response declared for a status code.
func (r *Responses) Get(code string) (*Response, bool) {
	if r == nil {
		return nil, false
	}
	resp, ok := r.codes[code]
	return resp, ok
}

// Len returns the number of declared status codes, excluding "default".
func (r *Responses) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// MarshalJSON emits the responses object with status codes in document order.
func (r *Responses) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	if r.Default != nil {
		if err := w.field("default", r.Default); err != nil {
			return nil, err
		}
	}
	for _, code := range r.order {
		if err := w.field(code, r.codes[code]); err != nil {
			return nil, err
		}
	}
	if err := w.extras(r.Extra); err != nil {
		return nil, err
	}
	return w.finish(), nil
}

// Response describes a single response from an API operation
type Response struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Description uses omitempty because responses can be defined via $ref.
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// IsRef reports whether the response is reference-shaped ($ref) rather than
// declared inline.
func (r *Response) IsRef() bool {
	return r.Ref != ""
}
