package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oacontract/internal/testutil"
	"github.com/erraggy/oacontract/parser"
)

// captureStreams swaps the package streams for buffers until the test ends.
func captureStreams(t *testing.T, in string) (out, errOut *bytes.Buffer) {
	t.Helper()
	oldIn, oldOut, oldErr := stdin, stdout, stderr
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	stdin, stdout, stderr = strings.NewReader(in), out, errOut
	t.Cleanup(func() {
		stdin, stdout, stderr = oldIn, oldOut, oldErr
	})
	return out, errOut
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]int{"schemas": 3}

	t.Run("json", func(t *testing.T) {
		out, _ := captureStreams(t, "")
		require.NoError(t, OutputStructured(data, FormatJSON))
		var got map[string]int
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("yaml", func(t *testing.T) {
		out, _ := captureStreams(t, "")
		require.NoError(t, OutputStructured(data, FormatYAML))
		var got map[string]int
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("text is rejected", func(t *testing.T) {
		captureStreams(t, "")
		assert.EqualError(t, OutputStructured(data, FormatText), "invalid format for structured output: text")
	})
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "openapi.yaml")

	assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "contract.ts"), []string{input}))
	assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "contract.ts"), []string{StdinFilePath}))
	assert.ErrorContains(t, ValidateOutputPath(input, []string{input}), "would overwrite input file")
}

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "api.yaml", FormatSpecPath("api.yaml"))
}

func TestParseSpec(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		captureStreams(t, "")
		path := testutil.WriteTempFile(t, "petstore.yaml", testutil.PetstoreYAML)
		result, err := ParseSpec(path, parser.NopLogger{})
		require.NoError(t, err)
		assert.Equal(t, "3.0.3", result.Version)
		assert.Equal(t, path, result.SourcePath)
	})

	t.Run("stdin", func(t *testing.T) {
		captureStreams(t, testutil.PetstoreYAML)
		result, err := ParseSpec(StdinFilePath, parser.NopLogger{})
		require.NoError(t, err)
		assert.Equal(t, "Petstore", result.Document.Info.Title)
	})

	t.Run("missing file", func(t *testing.T) {
		captureStreams(t, "")
		_, err := ParseSpec(filepath.Join(t.TempDir(), "missing.yaml"), parser.NopLogger{})
		assert.ErrorContains(t, err, "parsing ")
	})
}

func TestNewLogger(t *testing.T) {
	_, errOut := captureStreams(t, "")

	NewLogger(false).Debug("hidden")
	assert.Empty(t, errOut.String())

	NewLogger(true).Debug("shown", "schemas", 3)
	assert.Contains(t, errOut.String(), "level=DEBUG")
	assert.Contains(t, errOut.String(), "schemas=3")
}
