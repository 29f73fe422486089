package index

import (
	"testing"

	"github.com/erraggy/oasquery/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureYAML = `openapi: 3.0.3
info:
  title: Fixture API
  version: 2.0.0
security:
  - bearerAuth: []
paths:
  /users:
    get:
      tags: [Users]
      summary: List users
      operationId: listUsers
      responses:
        "200":
          description: OK
    post:
      tags: [Users, Admin]
      summary: Create a user
      operationId: createUser
      responses:
        "201":
          description: Created
  /login:
    post:
      tags: [Auth]
      summary: Exchange credentials for a token
      description: Returns a bearer token for subsequent requests.
      operationId: login
      security: []
      responses:
        "200":
          description: A token
  /health:
    get:
      summary: Liveness probe
      deprecated: true
      security: []
      responses:
        "200":
          description: OK
  /admin/audit:
    get:
      tags: [Admin]
      summary: Read the audit log
      security:
        - bearerAuth: [admin]
      responses:
        "200":
          description: OK
components:
  securitySchemes:
    bearerAuth:
      type: http
      scheme: bearer
`

func loadFixture(t *testing.T) *spec.Document {
	t.Helper()
	doc, err := spec.Load([]byte(fixtureYAML))
	require.NoError(t, err)
	return doc
}

func TestEndpointsOrderAndShape(t *testing.T) {
	doc := loadFixture(t)
	records := Endpoints(doc)
	require.Len(t, records, 5)

	// Paths in document order, methods in canonical order within a path.
	assert.Equal(t, "GET", records[0].Method)
	assert.Equal(t, "/users", records[0].Path)
	assert.Equal(t, "POST", records[1].Method)
	assert.Equal(t, "/users", records[1].Path)
	assert.Equal(t, "/login", records[2].Path)
	assert.Equal(t, "/health", records[3].Path)
	assert.Equal(t, "/admin/audit", records[4].Path)

	assert.Equal(t, "listUsers", records[0].OperationID)
	assert.Equal(t, []string{"Users", "Admin"}, records[1].Tags)
	assert.True(t, records[3].Deprecated)
	assert.Empty(t, records[3].Tags)
}

func TestRequiresAuthOverrideRules(t *testing.T) {
	doc := loadFixture(t)
	records := Endpoints(doc)

	byPath := make(map[string]EndpointRecord)
	for _, rec := range records {
		byPath[rec.Method+" "+rec.Path] = rec
	}

	// No operation security field: global applies.
	assert.True(t, byPath["GET /users"].RequiresAuth)
	// Explicit empty security overrides the global requirement.
	assert.False(t, byPath["POST /login"].RequiresAuth)
	assert.False(t, byPath["GET /health"].RequiresAuth)
	// Non-empty operation security requires auth regardless of global.
	assert.True(t, byPath["GET /admin/audit"].RequiresAuth)
}

func TestRequiresAuthWithoutGlobalSecurity(t *testing.T) {
	doc, err := spec.Load([]byte(`openapi: 3.0.3
info:
  title: Open API
  version: 1.0.0
paths:
  /public:
    get:
      responses:
        "200":
          description: OK
  /secret:
    get:
      security:
        - apiKey: []
      responses:
        "200":
          description: OK
components:
  securitySchemes:
    apiKey:
      type: apiKey
      name: X-API-Key
      in: header
`))
	require.NoError(t, err)

	records := Endpoints(doc)
	require.Len(t, records, 2)
	assert.False(t, records[0].RequiresAuth)
	assert.True(t, records[1].RequiresAuth)
}

func TestTagsSortedUnion(t *testing.T) {
	doc := loadFixture(t)
	// Admin appears on two operations but is listed once; untagged /health
	// contributes nothing.
	assert.Equal(t, []string{"Admin", "Auth", "Users"}, Tags(doc))
}

func TestTagsEmptyWhenNoneDeclared(t *testing.T) {
	doc, err := spec.Load([]byte(`openapi: 3.0.3
info:
  title: Untagged
  version: 1.0.0
paths:
  /ping:
    get:
      responses:
        "200":
          description: OK
`))
	require.NoError(t, err)
	assert.Empty(t, Tags(doc))
}

func TestFindOperation(t *testing.T) {
	doc := loadFixture(t)

	op, ok := FindOperation(doc, "get", "/users")
	require.True(t, ok)
	assert.Equal(t, "listUsers", op.OperationID)

	// Method is case-insensitive.
	op, ok = FindOperation(doc, "POST", "/login")
	require.True(t, ok)
	assert.Equal(t, "login", op.OperationID)

	// Path is literal: no template normalization or fuzzy matching.
	_, ok = FindOperation(doc, "get", "/users/")
	assert.False(t, ok)
	_, ok = FindOperation(doc, "delete", "/users")
	assert.False(t, ok)
	_, ok = FindOperation(doc, "get", "/missing")
	assert.False(t, ok)
}
