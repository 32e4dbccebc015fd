package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oacontract/contract"
	"github.com/erraggy/oacontract/internal/cliutil"
	"github.com/erraggy/oacontract/internal/pathutil"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output       string
	ContractName string
	ZodImport    string
	Concurrency  int
	Quiet        bool
	Verbose      bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file for the module (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file for the module (default: stdout)")
	fs.StringVar(&flags.ContractName, "n", contract.DefaultContractName, "exported name of the router constant")
	fs.StringVar(&flags.ContractName, "name", contract.DefaultContractName, "exported name of the router constant")
	fs.StringVar(&flags.ZodImport, "zod-import", contract.DefaultZodImport, "module specifier z is imported from")
	fs.IntVar(&flags.Concurrency, "concurrency", 0, "parallel compilation limit (0 = GOMAXPROCS)")
	fs.BoolVar(&flags.Quiet, "q", false, "don't print the summary and issues")
	fs.BoolVar(&flags.Quiet, "quiet", false, "don't print the summary and issues")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log pipeline progress to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oacontract generate [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Generate a ts-rest contract with zod validators from an OpenAPI 3.0 document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oacontract generate openapi.yaml > src/contract.ts\n")
		cliutil.Writef(fs.Output(), "  oacontract generate -o src/contract.ts -n petstore petstore.yaml\n")
		cliutil.Writef(fs.Output(), "  cat openapi.json | oacontract generate --zod-import zod/v3 -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Only local #/components/... references are followed\n")
		cliutil.Writef(fs.Output(), "  - Default responses and cookie parameters are reported as issues and left out\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path or '-' for stdin")
	}
	specPath := fs.Arg(0)

	var outputPath string
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{specPath}); err != nil {
			return err
		}
		var err error
		if outputPath, err = pathutil.SanitizeOutputPath(flags.Output); err != nil {
			return err
		}
	}

	logger := NewLogger(flags.Verbose)
	parseResult, err := ParseSpec(specPath, logger)
	if err != nil {
		return err
	}

	result, err := contract.GenerateWithOptions(
		contract.WithParsed(*parseResult),
		contract.WithLogger(logger),
		contract.WithConcurrency(flags.Concurrency),
		contract.WithContractName(flags.ContractName),
		contract.WithZodImport(flags.ZodImport),
	)
	if err != nil {
		return fmt.Errorf("generating contract: %w", err)
	}

	if outputPath == "" {
		if _, err := stdout.Write(result.Module); err != nil {
			return fmt.Errorf("writing module to stdout: %w", err)
		}
	} else if err := result.WriteFile(outputPath); err != nil {
		return err
	}

	if flags.Quiet {
		return nil
	}

	cliutil.Writef(stderr, "OpenAPI Contract Generator\n")
	cliutil.Writef(stderr, "==========================\n\n")
	OutputSpecHeader(specPath, parseResult)
	cliutil.Writef(stderr, "Schemas: %d\n", len(result.Definitions))
	cliutil.Writef(stderr, "Operations: %d\n", len(result.Operations))
	cliutil.Writef(stderr, "Generate Time: %v\n\n", result.GenerateTime)

	if len(result.Issues) > 0 {
		cliutil.Writef(stderr, "Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			cliutil.Writef(stderr, "  %s\n", issue.String())
		}
		cliutil.Writef(stderr, "\n")
	}

	if outputPath != "" {
		cliutil.Writef(stderr, "Output: %s\n", outputPath)
	}
	cliutil.Writef(stderr, "✓ Contract generated")
	if result.InfoCount > 0 || result.WarningCount > 0 {
		cliutil.Writef(stderr, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
	}
	cliutil.Writef(stderr, "\n")
	return nil
}
