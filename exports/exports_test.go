package exports

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oacontract/internal/testutil"
	"github.com/erraggy/oacontract/oaserrors"
	"github.com/erraggy/oacontract/parser"
	"github.com/erraggy/oacontract/resolver"
)

func identifiers(t *Table) []string {
	var out []string
	for _, e := range t.Entries() {
		out = append(out, e.Identifier)
	}
	return out
}

func TestBuildPetstore(t *testing.T) {
	doc := testutil.NewPetstoreDocument(t)

	table, err := Build(resolver.New(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"NewPet", "Pet", "Error"}, identifiers(table))
	assert.Equal(t, 3, table.Len())

	pet, ok := table.Lookup("#/components/schemas/Pet")
	require.True(t, ok)
	assert.Equal(t, "Pet", pet.Name)
	assert.Equal(t, 1, pet.Index)
	assert.Len(t, pet.Schema.AllOf, 2)

	id, ok := table.Identifier("#/components/schemas/NewPet")
	assert.True(t, ok)
	assert.Equal(t, "NewPet", id)

	_, ok = table.Lookup("#/components/schemas/Missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"#/components/schemas/NewPet"}, table.Graph().Edges("#/components/schemas/Pet"))
	assert.Empty(t, table.Collisions())
}

func TestBuildOrderRespectsDependencies(t *testing.T) {
	doc := testutil.ParseYAML(t, testutil.SchemasYAML(`    Order:
      type: object
      properties:
        lines:
          type: array
          items:
            $ref: '#/components/schemas/Line'
        customer:
          $ref: '#/components/schemas/Customer'
    Line:
      type: object
      properties:
        product:
          $ref: '#/components/schemas/Product'
    Customer:
      type: string
    Product:
      type: string
`))

	table, err := Build(resolver.New(doc))
	require.NoError(t, err)

	position := make(map[string]int)
	for _, e := range table.Entries() {
		position[e.Ref] = e.Index
	}
	for ref := range table.All() {
		for _, dep := range table.Graph().Edges(ref) {
			assert.Less(t, position[dep], position[ref], "%s must come after %s", ref, dep)
		}
	}
	assert.Equal(t, []string{"Product", "Line", "Customer", "Order"}, identifiers(table))
}

func TestBuildNormalizesIdentifiers(t *testing.T) {
	doc := testutil.ParseYAML(t, testutil.SchemasYAML(`    pet-summary:
      type: string
    2fa_token:
      type: string
`))

	table, err := Build(resolver.New(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"PetSummary", "_2faToken"}, identifiers(table))

	e, ok := table.Lookup("#/components/schemas/pet-summary")
	require.True(t, ok)
	assert.Equal(t, "pet-summary", e.Name)
}

func TestBuildReportsCollisions(t *testing.T) {
	doc := testutil.ParseYAML(t, testutil.SchemasYAML(`    pet_store:
      type: string
    PetStore:
      type: string
    Other:
      type: string
`))

	var buf bytes.Buffer
	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))

	table, err := Build(resolver.New(doc), WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []Collision{{
		Identifier: "PetStore",
		Refs:       []string{"#/components/schemas/pet_store", "#/components/schemas/PetStore"},
	}}, table.Collisions())
	assert.Contains(t, buf.String(), "identifier collision")
	assert.Contains(t, buf.String(), "identifier=PetStore")
}

func TestBuildCircularDependency(t *testing.T) {
	doc := testutil.ParseYAML(t, testutil.SchemasYAML(`    A:
      type: object
      properties:
        b:
          $ref: '#/components/schemas/B'
    B:
      type: array
      items:
        $ref: '#/components/schemas/A'
`))

	_, err := Build(resolver.New(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrCircularDependency)

	var cycle *oaserrors.CircularDependencyError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, cycle.Path[0], cycle.Path[len(cycle.Path)-1])
}

func TestBuildDanglingReference(t *testing.T) {
	doc := testutil.ParseYAML(t, testutil.SchemasYAML(`    A:
      $ref: '#/components/schemas/Missing'
`))

	_, err := Build(resolver.New(doc))
	assert.ErrorIs(t, err, oaserrors.ErrUnresolvableReference)
}

func TestBuildWithoutComponents(t *testing.T) {
	doc := testutil.ParseYAML(t, "openapi: 3.0.3\ninfo:\n  title: T\n  version: '1'\n")

	table, err := Build(resolver.New(doc))
	require.NoError(t, err)
	assert.Zero(t, table.Len())
}

func TestBuildNilResolver(t *testing.T) {
	_, err := Build(nil)
	assert.EqualError(t, err, "exports: document is nil")
}

func TestNilTable(t *testing.T) {
	var table *Table
	_, ok := table.Lookup("#/components/schemas/A")
	assert.False(t, ok)
	assert.Zero(t, table.Len())
	assert.Nil(t, table.Entries())
	assert.Nil(t, table.Graph())
	for range table.All() {
		t.Fatal("nil table yielded an entry")
	}
}

func TestBuildSuffixesReservedIdentifiers(t *testing.T) {
	doc := testutil.ParseYAML(t, testutil.SchemasYAML(`    file:
      type: object
      properties:
        data:
          type: string
          format: binary
    Upload:
      type: object
      properties:
        file:
          $ref: '#/components/schemas/file'
    UploadSchema:
      type: string
`))

	var buf bytes.Buffer
	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))

	table, err := Build(resolver.New(doc), WithLogger(logger), WithReserved("Upload"))
	require.NoError(t, err)

	assert.Equal(t, []string{"FileSchema", "UploadSchema", "UploadSchema"}, identifiers(table))
	assert.Equal(t, []Rename{
		{Ref: "#/components/schemas/file", From: "File", To: "FileSchema"},
		{Ref: "#/components/schemas/Upload", From: "Upload", To: "UploadSchema"},
	}, table.Renames())
	assert.Equal(t, []Collision{{
		Identifier: "UploadSchema",
		Refs:       []string{"#/components/schemas/Upload", "#/components/schemas/UploadSchema"},
	}}, table.Collisions())
	assert.Contains(t, buf.String(), "reserved identifier")
	assert.Contains(t, buf.String(), "exported_as=FileSchema")
}

func TestBuildWithoutReservedNames(t *testing.T) {
	table, err := Build(resolver.New(testutil.NewPetstoreDocument(t)))
	require.NoError(t, err)
	assert.Empty(t, table.Renames())
}
