package contract

import (
	"fmt"
	"runtime"

	"github.com/erraggy/oacontract/ast"
	"github.com/erraggy/oacontract/internal/options"
	"github.com/erraggy/oacontract/oaserrors"
	"github.com/erraggy/oacontract/parser"
)

// Default values for generation options.
const (
	DefaultContractName = "contract"
	DefaultZodImport    = "zod"
	DefaultTsRestImport = "@ts-rest/core"
)

// Option is a function that configures a generation operation.
type Option func(*generateConfig) error

// generateConfig holds configuration for a generation operation.
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult
	bytes    []byte

	logger       parser.Logger
	concurrency  int
	contractName string
	zodImport    string
}

// GenerateWithOptions generates a contract module using functional options.
//
// Example:
//
//	result, err := contract.GenerateWithOptions(
//	    contract.WithFilePath("openapi.yaml"),
//	    contract.WithContractName("petstore"),
//	)
func GenerateWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("contract: invalid options: %w", err)
	}

	g := &Generator{
		ContractName: cfg.contractName,
		ZodImport:    cfg.zodImport,
		Concurrency:  cfg.concurrency,
		Logger:       cfg.logger,
	}

	switch {
	case cfg.filePath != nil:
		return g.Generate(*cfg.filePath)
	case cfg.parsed != nil:
		return g.GenerateParsed(*cfg.parsed)
	case cfg.bytes != nil:
		return g.GenerateBytes(cfg.bytes)
	}

	// Should never reach here due to validation in applyOptions
	return nil, fmt.Errorf("contract: no input source specified")
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		logger:       parser.NopLogger{},
		concurrency:  0,
		contractName: DefaultContractName,
		zodImport:    DefaultZodImport,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithParsed, or WithBytes)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.parsed != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a local file path as the input source.
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already parsed document as the input source.
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithBytes specifies raw YAML or JSON as the input source.
func WithBytes(data []byte) Option {
	return func(cfg *generateConfig) error {
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the logger passed down to every stage of generation.
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = parser.LoggerOrNop(l)
		return nil
	}
}

// WithConcurrency sets how many schemas and operations are compiled at once.
// Zero selects runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(cfg *generateConfig) error {
		if err := options.ValidatePositive("concurrency", n); err != nil {
			return err
		}
		cfg.concurrency = n
		return nil
	}
}

// moduleBindings are the names the generated module declares or imports
// besides the schema definitions.
var moduleBindings = map[string]bool{
	ast.ZodIdent:   true,
	ast.FileIdent:  true,
	contractIdent:  true,
	"initContract": true,
}

// WithContractName sets the exported name of the router constant.
// Keywords and names bound by the module itself are rejected; a schema whose
// identifier matches the name is exported with a "Schema" suffix.
// Default: "contract"
func WithContractName(name string) Option {
	return func(cfg *generateConfig) error {
		if !ast.IsIdentifier(name) {
			return &oaserrors.ConfigError{
				Option:  "contract name",
				Value:   name,
				Message: "must be a valid identifier",
			}
		}
		if ast.IsReservedWord(name) || moduleBindings[name] {
			return &oaserrors.ConfigError{
				Option:  "contract name",
				Value:   name,
				Message: "is reserved in the generated module",
			}
		}
		cfg.contractName = name
		return nil
	}
}

// WithZodImport sets the module specifier z is imported from.
// Default: "zod"
func WithZodImport(module string) Option {
	return func(cfg *generateConfig) error {
		if module == "" {
			return &oaserrors.ConfigError{Option: "zod import", Message: "must not be empty"}
		}
		cfg.zodImport = module
		return nil
	}
}

func concurrencyOrDefault(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}
