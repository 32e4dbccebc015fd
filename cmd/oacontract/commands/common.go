// Package commands provides CLI command handlers for oacontract.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oacontract"
	"github.com/erraggy/oacontract/internal/cliutil"
	"github.com/erraggy/oacontract/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to stdout in the specified format (json or yaml).
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(stdout, "%s\n", bytes)
	return nil
}

// ValidateOutputPath checks that writing to outputPath will not overwrite
// one of the inputs.
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for the input document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// ParseSpec parses the document at specPath, or stdin when specPath is "-".
func ParseSpec(specPath string, logger parser.Logger) (*parser.ParseResult, error) {
	opts := []parser.Option{parser.WithLogger(logger)}
	if specPath == StdinFilePath {
		opts = append(opts, parser.WithReader(stdin), parser.WithSourceName("<stdin>"))
	} else {
		opts = append(opts, parser.WithFilePath(specPath))
	}
	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}
	return result, nil
}

// NewLogger returns a debug-level slog logger on stderr when verbose is set
// and a no-op logger otherwise.
func NewLogger(verbose bool) parser.Logger {
	if !verbose {
		return parser.NopLogger{}
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(handler))
}

// OutputSpecHeader writes the version and document summary to stderr.
func OutputSpecHeader(specPath string, result *parser.ParseResult) {
	cliutil.Writef(stderr, "oacontract version: %s\n", oacontract.Version())
	cliutil.Writef(stderr, "Specification: %s\n", FormatSpecPath(specPath))
	cliutil.Writef(stderr, "OAS Version: %s\n", result.Version)
	cliutil.Writef(stderr, "Source Size: %d bytes\n", result.SourceSize)
	cliutil.Writef(stderr, "Load Time: %v\n", result.LoadTime)
}
