package spec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreYAML = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.4.0
  description: Pets and their people.
servers:
  - url: https://api.example.com/v1
    description: Production
security:
  - bearerAuth: []
tags:
  - name: Pets
    description: Pet management
paths:
  /pets:
    get:
      tags: [Pets]
      summary: List pets
      operationId: listPets
      parameters:
        - name: limit
          in: query
          description: Maximum number of pets to return
          schema:
            type: integer
      responses:
        "200":
          description: A paged list of pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: "#/components/schemas/Pet"
    post:
      tags: [Pets]
      summary: Create a pet
      operationId: createPet
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/Pet"
      responses:
        "201":
          description: Created
  /login:
    post:
      tags: [Auth]
      summary: Exchange credentials for a token
      operationId: login
      responses:
        "200":
          description: A token
  /status:
    get:
      summary: Service status
      security: []
      responses:
        "200":
          description: OK
        default:
          description: Unexpected error
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
        id:
          type: integer
          format: int64
        tag:
          type: string
      required: [name, id]
  securitySchemes:
    bearerAuth:
      type: http
      scheme: bearer
      bearerFormat: JWT
`

func TestLoadYAML(t *testing.T) {
	doc, err := Load([]byte(petstoreYAML))
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, SourceFormatYAML, doc.Format())
	assert.Equal(t, []byte(petstoreYAML), doc.Raw())

	require.NotNil(t, doc.Info)
	assert.Equal(t, "Petstore", doc.Info.Title)
	assert.Equal(t, "1.4.0", doc.Info.Version)

	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://api.example.com/v1", doc.Servers[0].URL)

	require.NotNil(t, doc.Components)
	assert.Equal(t, 1, doc.SchemaCount())
	require.Contains(t, doc.Components.SecuritySchemes, "bearerAuth")
	assert.Equal(t, "http", doc.Components.SecuritySchemes["bearerAuth"].Type)
}

func TestLoadJSON(t *testing.T) {
	data := []byte(`{
  "openapi": "3.1.0",
  "info": {"title": "Minimal", "version": "0.1.0"},
  "paths": {
    "/ping": {
      "get": {
        "responses": {"200": {"description": "pong"}}
      }
    }
  }
}`)
	doc, err := Load(data)
	require.NoError(t, err)

	assert.Equal(t, SourceFormatJSON, doc.Format())
	assert.Equal(t, "3.1.0", doc.OpenAPI)
	require.NotNil(t, doc.Paths)
	assert.Equal(t, []string{"/ping"}, doc.Paths.Keys())
}

func TestLoadRejectsSwagger2(t *testing.T) {
	data := []byte(`swagger: "2.0"
info:
  title: Legacy
  version: 1.0.0
paths: {}
`)
	_, err := Load(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OpenAPI 2.0 (Swagger) documents are not supported")
}

func TestLoadRejectsMissingVersion(t *testing.T) {
	_, err := Load([]byte("info:\n  title: Nothing\n  version: 0.0.1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required 'openapi' version field")
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	_, err := Load([]byte("openapi: 4.0.0\ninfo:\n  title: Future\n  version: 1.0.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported OpenAPI version")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("openapi: 3.0.0\npaths: [::bad"))
	require.Error(t, err)
}

func TestPathsPreserveDocumentOrder(t *testing.T) {
	// Deliberately non-alphabetical source order.
	data := []byte(`openapi: 3.0.3
info:
  title: Ordered
  version: 1.0.0
paths:
  /zebras:
    get:
      responses:
        "200":
          description: OK
  /apples:
    get:
      responses:
        "200":
          description: OK
  /mangos:
    get:
      responses:
        "200":
          description: OK
`)
	doc, err := Load(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"/zebras", "/apples", "/mangos"}, doc.Paths.Keys())

	item, ok := doc.Paths.Get("/apples")
	require.True(t, ok)
	assert.NotNil(t, item.Get)

	_, ok = doc.Paths.Get("/bananas")
	assert.False(t, ok)
}

func TestPathItemOperationsCanonicalOrder(t *testing.T) {
	data := []byte(`openapi: 3.0.3
info:
  title: Methods
  version: 1.0.0
paths:
  /things:
    delete:
      responses:
        "204":
          description: Deleted
    get:
      responses:
        "200":
          description: OK
    post:
      responses:
        "201":
          description: Created
`)
	doc, err := Load(data)
	require.NoError(t, err)

	item, ok := doc.Paths.Get("/things")
	require.True(t, ok)

	ops := item.Operations()
	require.Len(t, ops, 3)
	// get, post, delete regardless of source order.
	assert.Equal(t, "get", ops[0].Method)
	assert.Equal(t, "post", ops[1].Method)
	assert.Equal(t, "delete", ops[2].Method)
}

func TestOperationSecurityDeclared(t *testing.T) {
	doc, err := Load([]byte(petstoreYAML))
	require.NoError(t, err)

	// /pets get: no security field at all.
	pets, ok := doc.Paths.Get("/pets")
	require.True(t, ok)
	assert.False(t, pets.Get.SecurityDeclared())

	// /status get: security: [] is present but empty.
	status, ok := doc.Paths.Get("/status")
	require.True(t, ok)
	assert.True(t, status.Get.SecurityDeclared())
	assert.Empty(t, status.Get.Security)
}

func TestResponsesCodesAndDefault(t *testing.T) {
	doc, err := Load([]byte(petstoreYAML))
	require.NoError(t, err)

	status, ok := doc.Paths.Get("/status")
	require.True(t, ok)
	resps := status.Get.Responses
	require.NotNil(t, resps)

	assert.Equal(t, []string{"200"}, resps.Codes())
	require.NotNil(t, resps.Default)
	assert.Equal(t, "Unexpected error", resps.Default.Description)

	resp, ok := resps.Get("200")
	require.True(t, ok)
	assert.Equal(t, "OK", resp.Description)
}

func TestResponsesRejectInvalidStatusCode(t *testing.T) {
	data := []byte(`openapi: 3.0.3
info:
  title: Bad codes
  version: 1.0.0
paths:
  /things:
    get:
      responses:
        "999":
          description: Not a status code
`)
	_, err := Load(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "999")
}

func TestExtensionsCaptured(t *testing.T) {
	data := []byte(`openapi: 3.0.3
info:
  title: Extended
  version: 1.0.0
x-audience: internal
paths:
  /things:
    get:
      x-rate-limit: 100
      responses:
        "200":
          description: OK
`)
	doc, err := Load(data)
	require.NoError(t, err)

	assert.Equal(t, "internal", doc.Extra["x-audience"])

	item, ok := doc.Paths.Get("/things")
	require.True(t, ok)
	assert.Equal(t, 100, item.Get.Extra["x-rate-limit"])
}

func TestLoadReader(t *testing.T) {
	doc, err := LoadReader(strings.NewReader(petstoreYAML))
	require.NoError(t, err)
	assert.Equal(t, "Petstore", doc.Info.Title)
}
