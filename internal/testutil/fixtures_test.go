package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oacontract/parser"
)

func TestNewPetstoreDocument(t *testing.T) {
	doc := NewPetstoreDocument(t)

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Petstore", doc.Info.Title)
	assert.Equal(t, []string{"Pet", "NewPet", "Error"}, slices.Collect(doc.Components.Schemas.Keys()))
	assert.Equal(t, []string{"/pets", "/pets/{petId}"}, slices.Collect(doc.Paths.Keys()))
}

func TestSchemasYAML(t *testing.T) {
	doc := ParseYAML(t, SchemasYAML("    A:\n      type: string\n"))
	a, ok := doc.Components.Schemas.Get("A")
	require.True(t, ok)
	assert.True(t, a.HasType("string"))
}

func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, map[string]any{
		"openapi": "3.0.0",
		"info":    map[string]any{"title": "T", "version": "1"},
	})

	result, err := parser.New().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "T", result.Document.Info.Title)
	assert.Equal(t, parser.SourceFormatYAML, result.SourceFormat)
}

func TestWriteTempJSON(t *testing.T) {
	path := WriteTempJSON(t, map[string]any{"openapi": "3.0.0"})

	result, err := parser.New().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, parser.SourceFormatJSON, result.SourceFormat)
}
