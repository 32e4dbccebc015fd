package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oacontract/internal/testutil"
	"github.com/erraggy/oacontract/oaserrors"
)

func TestSetupGraphFlags(t *testing.T) {
	captureStreams(t, "")
	fs, flags := SetupGraphFlags()
	require.NoError(t, fs.Parse([]string{"api.yaml"}))
	assert.Equal(t, FormatText, flags.Format)
	assert.False(t, flags.Verbose)

	fs, flags = SetupGraphFlags()
	require.NoError(t, fs.Parse([]string{"--format", "json", "--verbose", "api.yaml"}))
	assert.Equal(t, FormatJSON, flags.Format)
	assert.True(t, flags.Verbose)
}

func TestHandleGraph(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, _ := captureStreams(t, "")
		path := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)

		require.NoError(t, HandleGraph([]string{path}))

		want := "3 schemas in emission order:\n" +
			"  1. NewPet\n" +
			"  2. Pet\n" +
			"       -> #/components/schemas/NewPet\n" +
			"  3. Error\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("json", func(t *testing.T) {
		out, _ := captureStreams(t, "")
		path := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)

		require.NoError(t, HandleGraph([]string{"--format", "json", path}))

		var got GraphOutput
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		require.Len(t, got.Schemas, 3)
		assert.Equal(t, "Pet", got.Schemas[1].Identifier)
		assert.Equal(t, []string{"#/components/schemas/NewPet"}, got.Schemas[1].Dependencies)
		assert.Empty(t, got.Collisions)
	})

	t.Run("yaml from stdin with collisions", func(t *testing.T) {
		out, _ := captureStreams(t, testutil.SchemasYAML(`    pet-item: {type: string}
    pet_item: {type: integer}
`))

		require.NoError(t, HandleGraph([]string{"--format", "yaml", StdinFilePath}))

		var got GraphOutput
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
		require.Len(t, got.Collisions, 1)
		assert.Equal(t, []string{
			"#/components/schemas/pet-item",
			"#/components/schemas/pet_item",
		}, got.Collisions[0].Refs)
	})

	t.Run("cycle", func(t *testing.T) {
		captureStreams(t, "")
		path := testutil.WriteTempFile(t, "cycle.yaml", testutil.SchemasYAML(`    A:
      type: object
      properties:
        b:
          $ref: '#/components/schemas/B'
    B:
      type: array
      items:
        $ref: '#/components/schemas/A'
`))
		err := HandleGraph([]string{path})
		assert.ErrorIs(t, err, oaserrors.ErrCircularDependency)
		assert.ErrorContains(t, err, "building export table")
	})

	t.Run("invalid format", func(t *testing.T) {
		captureStreams(t, "")
		assert.ErrorContains(t, HandleGraph([]string{"--format", "xml", "api.yaml"}), "invalid format 'xml'")
	})

	t.Run("no arguments", func(t *testing.T) {
		captureStreams(t, "")
		assert.ErrorContains(t, HandleGraph(nil), "graph command requires exactly one file path")
	})
}
