package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oacontract/internal/testutil"
)

func TestGenerateTool_Inline(t *testing.T) {
	specCache.reset()
	input := generateInput{Spec: specInput{Content: testutil.PetstoreYAML}}

	result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, "Petstore", output.Title)
	assert.Equal(t, "contract", output.ContractName)
	assert.Equal(t, 3, output.Schemas)
	assert.Equal(t, 3, output.Operations)
	assert.Contains(t, output.Module, "export const contract = c.router({")
	assert.Empty(t, output.WrittenTo)

	require.Len(t, output.Issues, 1)
	assert.Equal(t, "info", output.Issues[0].Severity)
	assert.Equal(t, "paths./pets.get.responses.default", output.Issues[0].Path)
	assert.Equal(t, 1, output.InfoCount)
}

func TestGenerateTool_WritesOutput(t *testing.T) {
	specCache.reset()
	path := filepath.Join(t.TempDir(), "contract.ts")
	input := generateInput{
		Spec:         specInput{File: testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)},
		ContractName: "petstore",
		ZodImport:    "zod/v4",
		Output:       path,
	}

	result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, output.Module)
	assert.Equal(t, "petstore", output.ContractName)

	data, err := os.ReadFile(output.WrittenTo)
	require.NoError(t, err)
	assert.Contains(t, string(data), `import { z } from "zod/v4";`)
	assert.Contains(t, string(data), "export const petstore = c.router({")
}

func TestGenerateTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input generateInput
		want  string
	}{
		{
			name:  "invalid document",
			input: generateInput{Spec: specInput{Content: "not valid yaml: ["}},
		},
		{
			name:  "no input",
			input: generateInput{},
			want:  "exactly one of file or content must be provided",
		},
		{
			name:  "bad contract name",
			input: generateInput{Spec: specInput{Content: testutil.PetstoreYAML}, ContractName: "1st"},
			want:  "must be a valid identifier",
		},
		{
			name: "missing output directory",
			input: generateInput{
				Spec:   specInput{Content: testutil.PetstoreYAML},
				Output: filepath.Join(t.TempDir(), "missing", "contract.ts"),
			},
			want: "output directory does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specCache.reset()
			result, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			if tt.want != "" {
				text := result.Content[0].(*mcp.TextContent).Text
				assert.Contains(t, text, tt.want)
			}
		})
	}
}
