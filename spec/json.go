package spec

import (
	"bytes"
	"encoding/json"
	"slices"
)

// objectWriter assembles a JSON object with caller-controlled key order.
// Go's encoding/json sorts map keys alphabetically, which would destroy the
// source document ordering this package preserves.
type objectWriter struct {
	buf bytes.Buffer
	n   int
}

func newObjectWriter() *objectWriter {
	w := &objectWriter{}
	w.buf.WriteByte('{')
	return w
}

// field marshals v and appends it under name.
func (w *objectWriter) field(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.raw(name, data)
	return nil
}

// raw appends pre-marshaled JSON under name.
func (w *objectWriter) raw(name string, data []byte) {
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	w.n++
	key, _ := json.Marshal(name) // strings always marshal
	w.buf.Write(key)
	w.buf.WriteByte(':')
	w.buf.Write(data)
}

// extras appends extension fields in sorted key order for determinism.
func (w *objectWriter) extras(extra map[string]any) error {
	if len(extra) == 0 {
		return nil
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := w.field(k, extra[k]); err != nil {
			return err
		}
	}
	return nil
}

func (w *objectWriter) finish() []byte {
	w.buf.WriteByte('}')
	return w.buf.Bytes()
}

// mergeKeyOrder returns keys in recorded source order, with any extra keys
// from m appended in sorted order for determinism.
func mergeKeyOrder(order []string, m map[string]*Schema) []string {
	seen := make(map[string]bool, len(order))
	merged := make([]string, 0, len(m))
	for _, k := range order {
		if _, ok := m[k]; ok && !seen[k] {
			merged = append(merged, k)
			seen[k] = true
		}
	}
	var extra []string
	for k := range m {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return append(merged, extra...)
}

// MarshalJSON implements custom JSON marshaling for Schema. It emits fields
// in conventional OpenAPI order and properties in source declaration order,
// and flattens Extra fields into the top-level object (encoding/json has no
// equivalent of yaml:",inline").
func (s *Schema) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()

	// Reference-shaped schemas render as the bare pointer.
	if s.IsRef() {
		if err := w.field("$ref", s.Ref); err != nil {
			return nil, err
		}
		if s.Description != "" {
			if err := w.field("description", s.Description); err != nil {
				return nil, err
			}
		}
		return w.finish(), nil
	}

	if s.Title != "" {
		if err := w.field("title", s.Title); err != nil {
			return nil, err
		}
	}
	if s.Description != "" {
		if err := w.field("description", s.Description); err != nil {
			return nil, err
		}
	}
	if s.Type != "" {
		if err := w.field("type", s.Type); err != nil {
			return nil, err
		}
	}
	if s.Format != "" {
		if err := w.field("format", s.Format); err != nil {
			return nil, err
		}
	}
	if s.Nullable {
		if err := w.field("nullable", s.Nullable); err != nil {
			return nil, err
		}
	}
	if len(s.Enum) > 0 {
		if err := w.field("enum", s.Enum); err != nil {
			return nil, err
		}
	}
	if s.Default != nil {
		if err := w.field("default", s.Default); err != nil {
			return nil, err
		}
	}
	if s.Example != nil {
		if err := w.field("example", s.Example); err != nil {
			return nil, err
		}
	}
	if len(s.Properties) > 0 {
		props := newObjectWriter()
		for _, name := range s.PropertyNames() {
			if err := props.field(name, s.Properties[name]); err != nil {
				return nil, err
			}
		}
		w.raw("properties", props.finish())
	}
	if len(s.Required) > 0 {
		if err := w.field("required", s.Required); err != nil {
			return nil, err
		}
	}
	if s.AdditionalProperties != nil {
		if err := w.field("additionalProperties", s.AdditionalProperties); err != nil {
			return nil, err
		}
	}
	if s.Items != nil {
		if err := w.field("items", s.Items); err != nil {
			return nil, err
		}
	}
	if len(s.AllOf) > 0 {
		if err := w.field("allOf", s.AllOf); err != nil {
			return nil, err
		}
	}
	if len(s.AnyOf) > 0 {
		if err := w.field("anyOf", s.AnyOf); err != nil {
			return nil, err
		}
	}
	if len(s.OneOf) > 0 {
		if err := w.field("oneOf", s.OneOf); err != nil {
			return nil, err
		}
	}
	if s.ReadOnly {
		if err := w.field("readOnly", s.ReadOnly); err != nil {
			return nil, err
		}
	}
	if s.WriteOnly {
		if err := w.field("writeOnly", s.WriteOnly); err != nil {
			return nil, err
		}
	}
	if s.Deprecated {
		if err := w.field("deprecated", s.Deprecated); err != nil {
			return nil, err
		}
	}
	if err := w.extras(s.Extra); err != nil {
		return nil, err
	}
	return w.finish(), nil
}
