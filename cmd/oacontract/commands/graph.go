package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oacontract/exports"
	"github.com/erraggy/oacontract/internal/cliutil"
	"github.com/erraggy/oacontract/resolver"
)

// GraphFlags contains flags for the graph command
type GraphFlags struct {
	Format  string
	Verbose bool
}

// GraphNode is one schema in the graph command output.
type GraphNode struct {
	Name         string   `json:"name" yaml:"name"`
	Identifier   string   `json:"identifier" yaml:"identifier"`
	Ref          string   `json:"ref" yaml:"ref"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// GraphCollision reports component references sharing one identifier.
type GraphCollision struct {
	Identifier string   `json:"identifier" yaml:"identifier"`
	Refs       []string `json:"refs" yaml:"refs"`
}

// GraphOutput is the structured form of the graph command output.
type GraphOutput struct {
	Schemas    []GraphNode      `json:"schemas" yaml:"schemas"`
	Collisions []GraphCollision `json:"collisions,omitempty" yaml:"collisions,omitempty"`
}

// SetupGraphFlags creates and configures a FlagSet for the graph command.
func SetupGraphFlags() (*flag.FlagSet, *GraphFlags) {
	fs := flag.NewFlagSet("graph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &GraphFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log pipeline progress to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oacontract graph [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Print component schemas in emission order with their dependencies.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oacontract graph openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oacontract graph --format json openapi.yaml | jq '.schemas[].identifier'\n")
	}

	return fs, flags
}

// HandleGraph executes the graph command
func HandleGraph(args []string) error {
	fs, flags := SetupGraphFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("graph command requires exactly one file path or '-' for stdin")
	}
	specPath := fs.Arg(0)

	logger := NewLogger(flags.Verbose)
	parseResult, err := ParseSpec(specPath, logger)
	if err != nil {
		return err
	}

	table, err := exports.Build(resolver.New(parseResult.Document), exports.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("building export table: %w", err)
	}

	out := buildGraphOutput(table)
	if flags.Format != FormatText {
		return OutputStructured(out, flags.Format)
	}

	cliutil.Writef(stdout, "%d schemas in emission order:\n", len(out.Schemas))
	for i, node := range out.Schemas {
		cliutil.Writef(stdout, "  %d. %s", i+1, node.Name)
		if node.Identifier != node.Name {
			cliutil.Writef(stdout, " (%s)", node.Identifier)
		}
		cliutil.Writef(stdout, "\n")
		for _, dep := range node.Dependencies {
			cliutil.Writef(stdout, "       -> %s\n", dep)
		}
	}
	if len(out.Collisions) > 0 {
		cliutil.Writef(stdout, "\nIdentifier collisions:\n")
		for _, c := range out.Collisions {
			cliutil.Writef(stdout, "  %s: %v\n", c.Identifier, c.Refs)
		}
	}
	return nil
}

func buildGraphOutput(table *exports.Table) GraphOutput {
	graph := table.Graph()
	entries := table.Entries()
	out := GraphOutput{Schemas: make([]GraphNode, 0, len(entries))}
	for _, e := range entries {
		out.Schemas = append(out.Schemas, GraphNode{
			Name:         e.Name,
			Identifier:   e.Identifier,
			Ref:          e.Ref,
			Dependencies: graph.Edges(e.Ref),
		})
	}
	for _, c := range table.Collisions() {
		out.Collisions = append(out.Collisions, GraphCollision{Identifier: c.Identifier, Refs: c.Refs})
	}
	return out
}
