// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oacontract/parser"
)

// PetstoreYAML is a small but complete OAS 3.0 document: named schemas with
// composition, a path-level parameter reference, request bodies and a shared
// error response.
const PetstoreYAML = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      summary: List all pets
      parameters:
        - name: limit
          in: query
          schema:
            type: integer
            maximum: 100
      responses:
        "200":
          description: A list of pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/Pet'
        default:
          $ref: '#/components/responses/Error'
    post:
      operationId: createPet
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/NewPet'
      responses:
        "201":
          description: Created
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
  /pets/{petId}:
    parameters:
      - $ref: '#/components/parameters/PetId'
    get:
      operationId: show-pet-by-id
      responses:
        "200":
          description: A pet
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
components:
  parameters:
    PetId:
      name: petId
      in: path
      required: true
      schema:
        type: string
  responses:
    Error:
      description: Unexpected error
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/Error'
  schemas:
    Pet:
      allOf:
        - $ref: '#/components/schemas/NewPet'
        - type: object
          required: [id]
          properties:
            id:
              type: integer
              format: int64
    NewPet:
      type: object
      required: [name]
      properties:
        name:
          type: string
        tag:
          type: string
    Error:
      type: object
      required: [code, message]
      properties:
        code:
          type: integer
        message:
          type: string
`

// ParseYAML parses src as an OpenAPI document and fails the test on error.
func ParseYAML(t *testing.T, src string) *parser.Document {
	t.Helper()

	result, err := parser.New().ParseBytes([]byte(src))
	if err != nil {
		t.Fatalf("Failed to parse document: %v", err)
	}
	return result.Document
}

// NewPetstoreDocument parses PetstoreYAML.
func NewPetstoreDocument(t *testing.T) *parser.Document {
	t.Helper()
	return ParseYAML(t, PetstoreYAML)
}

// SchemasYAML wraps a components.schemas body in a minimal document.
// The body must already be indented by four spaces.
func SchemasYAML(body string) string {
	return "openapi: 3.0.3\ninfo:\n  title: Test API\n  version: 1.0.0\ncomponents:\n  schemas:\n" + body
}

// WriteTempFile writes content to name inside a test temp directory and
// returns the full path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}

// WriteTempYAML marshals doc to YAML and writes it to a temporary file.
// The file is automatically cleaned up when the test completes.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "test.yaml", string(data))
}

// WriteTempJSON marshals doc to JSON and writes it to a temporary file.
// The file is automatically cleaned up when the test completes.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "test.json", string(data))
}
