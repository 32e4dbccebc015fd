package parser

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oacontract/oaserrors"
)

func parseYAML(t *testing.T, src string) *Document {
	t.Helper()
	result, err := New().ParseBytes([]byte(src))
	require.NoError(t, err)
	return result.Document
}

func TestParseFile(t *testing.T) {
	result, err := New().Parse("../testdata/petstore.yaml")
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", result.Version)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "../testdata/petstore.yaml", result.SourcePath)
	assert.Positive(t, result.SourceSize)

	doc := result.Document
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Petstore API", doc.Info.Title)
	assert.Equal(t, []string{"Pet", "NewPet", "Error"}, slices.Collect(doc.Components.Schemas.Keys()))
	assert.Equal(t, []string{"/pets", "/pets/{petId}"}, slices.Collect(doc.Paths.Keys()))
}

func TestParseFileMissing(t *testing.T) {
	_, err := New().Parse("../testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestParsePreservesOrder(t *testing.T) {
	doc := parseYAML(t, `
openapi: 3.0.0
info: {title: t, version: "1"}
paths: {}
components:
  schemas:
    Zebra:
      type: object
      properties:
        z: {type: string}
        a: {type: string}
        m: {type: string}
    Apple:
      type: string
    Mango:
      type: number
`)
	assert.Equal(t, []string{"Zebra", "Apple", "Mango"}, slices.Collect(doc.Components.Schemas.Keys()))

	zebra, ok := doc.Components.Schemas.Get("Zebra")
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, slices.Collect(zebra.Properties.Keys()))
}

func TestParseJSON(t *testing.T) {
	result, err := New().ParseBytes([]byte(`{
  "openapi": "3.0.1",
  "info": {"title": "t", "version": "1"},
  "paths": {},
  "components": {"schemas": {"B": {"type": "string"}, "A": {"type": "integer"}}}
}`))
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, "ParseBytes.json", result.SourcePath)
	assert.Equal(t, []string{"B", "A"}, slices.Collect(result.Document.Components.Schemas.Keys()))
}

func TestParseSchemaFields(t *testing.T) {
	doc := parseYAML(t, `
openapi: 3.0.3
info: {title: t, version: "1"}
paths: {}
components:
  schemas:
    Scalar:
      type: string
      format: email
      minLength: 2
      maxLength: 10
      pattern: "^a"
      nullable: true
      default: null
    Multi:
      type: [string, "null"]
    NoType:
      type: null
    Numbers:
      type: number
      minimum: 1
      maximum: 5.5
      exclusiveMinimum: true
      multipleOf: 0.5
    Numeric31:
      type: number
      exclusiveMinimum: 0
      exclusiveMaximum: 10
    OpenRecord:
      type: object
      additionalProperties: true
    ClosedObject:
      type: object
      additionalProperties: false
    TypedRecord:
      type: object
      additionalProperties:
        type: integer
    Enum:
      type: string
      enum: [a, null, b]
    EmptyEnum:
      enum: []
    Array:
      type: array
      items: {$ref: "#/components/schemas/Scalar"}
      minItems: 1
      maxItems: 3
    Composite:
      oneOf:
        - $ref: "#/components/schemas/Scalar"
        - type: integer
      x-internal: true
`)
	schemas := doc.Components.Schemas
	get := func(name string) *Schema {
		s, ok := schemas.Get(name)
		require.True(t, ok, name)
		return s
	}

	scalar := get("Scalar")
	assert.Equal(t, []string{"string"}, scalar.Type)
	assert.Equal(t, "email", scalar.Format)
	assert.Equal(t, 2, *scalar.MinLength)
	assert.Equal(t, 10, *scalar.MaxLength)
	assert.Equal(t, "^a", scalar.Pattern)
	assert.True(t, scalar.Nullable)
	assert.True(t, scalar.HasDefault)
	assert.Nil(t, scalar.Default)

	assert.Equal(t, []string{"string", "null"}, get("Multi").Type)
	assert.Nil(t, get("NoType").Type)

	numbers := get("Numbers")
	assert.InDelta(t, 1.0, *numbers.Minimum, 0)
	assert.InDelta(t, 5.5, *numbers.Maximum, 0)
	assert.True(t, numbers.ExclusiveMinimum)
	assert.False(t, numbers.ExclusiveMaximum)
	assert.InDelta(t, 0.5, *numbers.MultipleOf, 0)

	numeric31 := get("Numeric31")
	assert.False(t, numeric31.ExclusiveMinimum)
	require.NotNil(t, numeric31.ExclusiveMinimumValue)
	assert.InDelta(t, 0.0, *numeric31.ExclusiveMinimumValue, 0)
	require.NotNil(t, numeric31.ExclusiveMaximumValue)
	assert.InDelta(t, 10.0, *numeric31.ExclusiveMaximumValue, 0)

	assert.Equal(t, &AdditionalProperties{Allowed: true}, get("OpenRecord").AdditionalProperties)
	assert.Equal(t, &AdditionalProperties{Allowed: false}, get("ClosedObject").AdditionalProperties)
	typed := get("TypedRecord").AdditionalPropertiesSchema()
	require.NotNil(t, typed)
	assert.Equal(t, []string{"integer"}, typed.Type)

	enum := get("Enum")
	assert.True(t, enum.HasEnum)
	assert.Equal(t, []any{"a", nil, "b"}, enum.Enum)

	empty := get("EmptyEnum")
	assert.True(t, empty.HasEnum)
	assert.Empty(t, empty.Enum)

	array := get("Array")
	require.NotNil(t, array.Items)
	assert.True(t, array.Items.IsRef())
	assert.Equal(t, 1, *array.MinItems)
	assert.Equal(t, 3, *array.MaxItems)

	composite := get("Composite")
	require.Len(t, composite.OneOf, 2)
	assert.Equal(t, "#/components/schemas/Scalar", composite.OneOf[0].Ref)
	assert.True(t, composite.OneOf[1].HasType("integer"))
	assert.Equal(t, true, composite.Extensions["x-internal"])
}

func TestParsePathItems(t *testing.T) {
	doc := parseYAML(t, `
openapi: 3.0.3
info: {title: t, version: "1"}
paths:
  /hello:
    summary: greeting
    parameters:
      - name: trace
        in: header
        schema: {type: string}
    x-owner: team
    get:
      responses:
        "200": {description: ok}
    invalid:
      responses:
        "200": {description: ok}
  /empty:
  /ref:
    $ref: "#/components/pathItems/Shared"
components:
  pathItems:
    Shared:
      delete:
        responses:
          "204": {description: gone}
`)
	hello, ok := doc.Paths.Get("/hello")
	require.True(t, ok)
	assert.Equal(t, "greeting", hello.Summary)
	require.Len(t, hello.Parameters, 1)
	assert.Equal(t, ParamInHeader, hello.Parameters[0].In)
	assert.Equal(t, []string{"get", "invalid"}, slices.Collect(hello.Operations.Keys()))
	assert.Equal(t, "team", hello.Extensions["x-owner"])

	empty, ok := doc.Paths.Get("/empty")
	require.True(t, ok)
	assert.Nil(t, empty)

	ref, ok := doc.Paths.Get("/ref")
	require.True(t, ok)
	assert.Equal(t, "#/components/pathItems/Shared", ref.Ref)
	assert.Equal(t, 1, doc.Components.PathItems.Len())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{name: "empty", src: "   \n", wantMsg: "document is empty"},
		{name: "invalid yaml", src: "openapi: [unclosed", wantMsg: "failed to parse"},
		{name: "not an object", src: "- a\n- b\n", wantMsg: "document root must be an object"},
		{name: "missing version", src: "info: {title: t}\n", wantMsg: "missing openapi version"},
		{name: "swagger", src: "openapi: \"2.0\"\n", wantMsg: "unsupported OpenAPI version"},
		{
			name:    "tuple items",
			src:     "openapi: 3.0.0\ncomponents:\n  schemas:\n    T:\n      type: array\n      items:\n        - type: string\n",
			wantMsg: "tuple items are not supported",
		},
		{
			name:    "bad minLength",
			src:     "openapi: 3.0.0\ncomponents:\n  schemas:\n    T:\n      type: string\n      minLength: abc\n",
			wantMsg: "minLength must be an integer",
		},
		{
			name:    "schemas not an object",
			src:     "openapi: 3.0.0\ncomponents:\n  schemas: [a]\n",
			wantMsg: "components.schemas must be an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().ParseBytes([]byte(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrParse)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseErrorHasPosition(t *testing.T) {
	_, err := New().ParseBytes([]byte("openapi: 3.0.0\ncomponents:\n  schemas:\n    T:\n      minLength: abc\n"))
	var pe *oaserrors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 5, pe.Line)
	assert.Equal(t, "ParseBytes", pe.Path)
}

func TestParseWithOptions(t *testing.T) {
	t.Run("reader with source name", func(t *testing.T) {
		result, err := ParseWithOptions(
			WithReader(strings.NewReader("openapi: 3.0.0\ninfo: {title: t, version: '1'}\n")),
			WithSourceName("inline-api"),
		)
		require.NoError(t, err)
		assert.Equal(t, "inline-api", result.SourcePath)
	})

	t.Run("reader default name", func(t *testing.T) {
		result, err := ParseWithOptions(WithReader(strings.NewReader("openapi: 3.0.0\n")))
		require.NoError(t, err)
		assert.Equal(t, "ParseReader.yaml", result.SourcePath)
	})

	t.Run("file path", func(t *testing.T) {
		result, err := ParseWithOptions(WithFilePath("../testdata/petstore.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 3, result.Document.Components.Schemas.Len())
	})

	t.Run("no source", func(t *testing.T) {
		_, err := ParseWithOptions()
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("two sources", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("openapi: 3.0.0")), WithFilePath("x.yaml"))
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("nil reader", func(t *testing.T) {
		_, err := ParseWithOptions(WithReader(nil))
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("nil bytes", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes(nil))
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})
}

func TestFirstSchema(t *testing.T) {
	doc := parseYAML(t, `
openapi: 3.0.3
components:
  requestBodies:
    Upload:
      content:
        text/plain: {}
        multipart/form-data:
          schema: {type: object}
        application/json:
          schema: {type: string}
    Plain:
      content:
        text/plain:
          schema: {type: string}
`)
	upload, _ := doc.Components.RequestBodies.Get("Upload")
	mediaType, schema := FirstSchema(upload.Content)
	assert.Equal(t, "application/json", mediaType)
	assert.True(t, schema.HasType("string"))

	plain, _ := doc.Components.RequestBodies.Get("Plain")
	mediaType, schema = FirstSchema(plain.Content)
	assert.Equal(t, "text/plain", mediaType)
	assert.NotNil(t, schema)

	mediaType, schema = FirstSchema(nil)
	assert.Empty(t, mediaType)
	assert.Nil(t, schema)
}
