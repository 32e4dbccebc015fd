package main

import (
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"

	"github.com/erraggy/oacontract"
	"github.com/erraggy/oacontract/cmd/oacontract/commands"
	"github.com/erraggy/oacontract/internal/cliutil"
)

var validCommands = []string{"generate", "graph", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oacontract %s\n", oacontract.Version())
		if len(os.Args) > 2 && os.Args[2] == "--verbose" {
			fmt.Println(oacontract.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		err = commands.HandleGenerate(os.Args[2:])
	case "graph":
		err = commands.HandleGraph(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest valid command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, cmd := range validCommands {
		if d := levenshtein.ComputeDistance(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

func printUsage() {
	w := os.Stdout
	cliutil.Writef(w, `oacontract - generate ts-rest contracts from OpenAPI 3.0 documents

Usage:
  oacontract <command> [flags] <file|->

Commands:
  generate    Emit a TypeScript module with zod validators and a ts-rest router
  graph       Show component schemas in emission order with their dependencies
  mcp         Serve the generator as MCP tools over stdio
  version     Show version information (--verbose for build details)
  help        Show this help message

Run 'oacontract <command> --help' for more information on a command.
`)
}
