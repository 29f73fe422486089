package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/erraggy/oasquery/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaDetails(t *testing.T) {
	doc := loadFixture(t)
	out := SchemaDetails(doc, "User")

	require.True(t, strings.HasPrefix(out, "## Schema: User"), out)
	require.Contains(t, out, "```json")

	// The fenced block is valid JSON carrying the schema structure.
	start := strings.Index(out, "```json\n") + len("```json\n")
	end := strings.LastIndex(out, "\n```")
	require.Greater(t, end, start)

	var decoded struct {
		Type       string          `json:"type"`
		Properties json.RawMessage `json:"properties"`
		Required   []string        `json:"required"`
	}
	require.NoError(t, json.Unmarshal([]byte(out[start:end]), &decoded))
	assert.Equal(t, "object", decoded.Type)
	assert.Equal(t, []string{"email"}, decoded.Required)
	assert.Contains(t, string(decoded.Properties), "username")
}

func TestSchemaDetailsNotFound(t *testing.T) {
	doc := loadFixture(t)
	assert.Equal(t, `Schema "Ghost" not found in components.schemas.`, SchemaDetails(doc, "Ghost"))
	// Lookup is case-sensitive.
	assert.Equal(t, `Schema "user" not found in components.schemas.`, SchemaDetails(doc, "user"))
}

func TestSchemaJSONResolvesOneLevel(t *testing.T) {
	doc := loadFixture(t)

	user, ok := doc.SchemaByName("User")
	require.True(t, ok)
	out := SchemaJSON(doc, user)
	assert.Contains(t, out, `"username"`)

	// A ref-shaped schema resolves through components.schemas.
	ref := refSchema(t, "#/components/schemas/Credentials")
	out = SchemaJSON(doc, ref)
	assert.Contains(t, out, `"password"`)
	assert.NotContains(t, out, `"$ref": "#/components/schemas/Credentials"`)

	// Unresolvable refs render as the bare pointer.
	out = SchemaJSON(doc, refSchema(t, "#/components/schemas/Ghost"))
	assert.Contains(t, out, "#/components/schemas/Ghost")
}

func refSchema(t *testing.T, ref string) *spec.Schema {
	t.Helper()
	return &spec.Schema{Ref: ref}
}
