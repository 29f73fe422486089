package spec

// Document represents an OpenAPI Specification 3.x document.
// Supports OAS 3.0.x and 3.1.x.
// References:
// - OAS 3.0.0: https://spec.openapis.org/oas/v3.0.0.html
// - OAS 3.1.0: https://spec.openapis.org/oas/v3.1.0.html
type Document struct {
	OpenAPI    string                `yaml:"openapi" json:"openapi"` // Required: "3.0.x" or "3.1.x"
	Info       *Info                 `yaml:"info" json:"info"`       // Required
	Servers    []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      *Paths                `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components           `yaml:"components,omitempty" json:"components,omitempty"`
	Security   []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Tags       []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`

	// raw holds the verbatim source bytes, set by Load.
	raw []byte
	// format is the detected source format, set by Load.
	format SourceFormat
}

// Raw returns the verbatim source bytes the document was loaded from.
// Callers must not modify the returned slice.
func (d *Document) Raw() []byte {
	return d.raw
}

// Format returns the detected format of the source document.
func (d *Document) Format() SourceFormat {
	return d.format
}

// Components holds reusable objects for different aspects of the document.
// Only the component kinds the query engine consumes are modeled; everything
// else lands in Extra.
type Components struct {
	Schemas         map[string]*Schema         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	// Extra captures specification extensions and unmodeled component kinds
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info provides metadata about the API
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Server represents a Server object (OAS 3.0+)
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SecurityRequirement lists the required security schemes to execute an operation.
// Maps security scheme names to scopes (if applicable).
type SecurityRequirement map[string][]string

// SecurityScheme defines a security scheme that can be used by the operations.
// oasquery only detects authentication requirements; it never executes them.
type SecurityScheme struct {
	Type        string `yaml:"type,omitempty" json:"type,omitempty"` // "apiKey", "http", "oauth2", "openIdConnect"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Type: apiKey
	Name string `yaml:"name,omitempty" json:"name,omitempty"` // Header, query, or cookie parameter name
	In   string `yaml:"in,omitempty" json:"in,omitempty"`     // "query", "header", "cookie"

	// Type: http
	Scheme       string `yaml:"scheme,omitempty" json:"scheme,omitempty"`             // e.g., "basic", "bearer"
	BearerFormat string `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"` // e.g., "JWT"

	// Type: openIdConnect
	OpenIDConnectURL string `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
