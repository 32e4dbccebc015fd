package contract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/oacontract/ast"
	"github.com/erraggy/oacontract/compiler"
	"github.com/erraggy/oacontract/exports"
	"github.com/erraggy/oacontract/internal/fileutil"
	"github.com/erraggy/oacontract/internal/issues"
	"github.com/erraggy/oacontract/internal/severity"
	"github.com/erraggy/oacontract/operations"
	"github.com/erraggy/oacontract/parser"
	"github.com/erraggy/oacontract/resolver"
)

// Generator turns OpenAPI documents into contract modules.
// The zero value generates with the defaults of [GenerateWithOptions].
type Generator struct {
	// ContractName is the exported name of the router constant.
	ContractName string
	// ZodImport is the module specifier z is imported from.
	ZodImport string
	// Concurrency bounds parallel compilation. Zero uses GOMAXPROCS.
	Concurrency int
	// Logger receives progress and diagnostics. Nil disables logging.
	Logger parser.Logger
}

// New creates a Generator with default settings.
func New() *Generator {
	return &Generator{
		ContractName: DefaultContractName,
		ZodImport:    DefaultZodImport,
	}
}

// Operation is one compiled route of the contract.
type Operation struct {
	// Source is the extracted operation the route was compiled from.
	Source *operations.Operation
	// Key is the name of the route in the router object.
	Key string
	// Route is the route object literal.
	Route ast.Expr
}

// Result contains the compiled contract and metadata about the run.
type Result struct {
	// SourcePath is the path the document was read from.
	SourcePath string
	// SourceFormat is the format of the source document.
	SourceFormat parser.SourceFormat
	// Title and Version come from the document's info object.
	Title   string
	Version string
	// ContractName is the exported name of the router constant.
	ContractName string
	// Table is the export table the definitions were compiled against.
	Table *exports.Table
	// Definitions holds one compiled schema per table entry, in table order.
	Definitions []compiler.Definition
	// Operations holds the compiled routes in document order.
	Operations []Operation
	// Module is the rendered TypeScript source.
	Module []byte
	// Issues lists non-fatal problems in the order they were found.
	Issues []issues.Issue
	// InfoCount is the number of info issues
	InfoCount int
	// WarningCount is the number of warning issues
	WarningCount int
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to compile and render the module
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// HasWarnings returns true if there are any warnings
func (r *Result) HasWarnings() bool {
	return r.WarningCount > 0
}

// WriteFile writes the module to path, creating parent directories.
func (r *Result) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("contract: failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, r.Module, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("contract: failed to write file: %w", err)
	}
	return nil
}

// Generate parses the document at specPath and generates its contract.
func (g *Generator) Generate(specPath string) (*Result, error) {
	pr, err := parser.ParseWithOptions(
		parser.WithFilePath(specPath),
		parser.WithLogger(g.log()),
	)
	if err != nil {
		return nil, err
	}
	return g.GenerateParsed(*pr)
}

// GenerateBytes parses data as YAML or JSON and generates its contract.
func (g *Generator) GenerateBytes(data []byte) (*Result, error) {
	pr, err := parser.ParseWithOptions(
		parser.WithBytes(data),
		parser.WithLogger(g.log()),
	)
	if err != nil {
		return nil, err
	}
	return g.GenerateParsed(*pr)
}

// GenerateParsed generates the contract of an already parsed document.
//
// Schemas are ordered and named by the export table, then every export and
// every operation is compiled on its own goroutine. When several of them
// fail, the error of the earliest one in output order is returned, so the
// result does not depend on scheduling.
func (g *Generator) GenerateParsed(pr parser.ParseResult) (*Result, error) {
	if pr.Document == nil {
		return nil, fmt.Errorf("contract: document is nil")
	}
	start := time.Now()
	log := g.log()
	name := g.ContractName
	if name == "" {
		name = DefaultContractName
	}

	res := resolver.New(pr.Document)
	table, err := exports.Build(res, exports.WithLogger(log), exports.WithReserved(name))
	if err != nil {
		return nil, fmt.Errorf("contract: %w", err)
	}
	ops, err := operations.Extract(res, operations.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("contract: %w", err)
	}
	if err := checkKeys(ops); err != nil {
		return nil, fmt.Errorf("contract: %w", err)
	}

	c := compiler.New(res, table)
	entries := table.Entries()
	defs := make([]compiler.Definition, len(entries))
	routes := make([]Operation, len(ops))
	routeIssues := make([][]issues.Issue, len(ops))
	errs := make([]error, len(entries)+len(ops))

	var eg errgroup.Group
	eg.SetLimit(concurrencyOrDefault(g.Concurrency))
	for i, e := range entries {
		eg.Go(func() error {
			defs[i], errs[i] = c.CompileEntry(e)
			return nil
		})
	}
	for i, op := range ops {
		eg.Go(func() error {
			rb := &routeBuilder{c: c, op: op}
			route, err := rb.build()
			routes[i] = Operation{Source: op, Key: op.Key(), Route: route}
			routeIssues[i] = rb.issues
			errs[len(entries)+i] = err
			return nil
		})
	}
	_ = eg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("contract: %w", err)
		}
	}

	result := &Result{
		SourcePath:   pr.SourcePath,
		SourceFormat: pr.SourceFormat,
		ContractName: name,
		Table:        table,
		Definitions:  defs,
		Operations:   routes,
		Issues:       collisionIssues(table),
		LoadTime:     pr.LoadTime,
		SourceSize:   pr.SourceSize,
	}
	if info := pr.Document.Info; info != nil {
		result.Title = info.Title
		result.Version = info.Version
	}
	for _, list := range routeIssues {
		result.Issues = append(result.Issues, list...)
	}
	result.InfoCount = issues.Count(result.Issues, severity.SeverityInfo)
	result.WarningCount = issues.Count(result.Issues, severity.SeverityWarning)

	zodImport := g.ZodImport
	if zodImport == "" {
		zodImport = DefaultZodImport
	}
	module, err := render(result, zodImport)
	if err != nil {
		return nil, fmt.Errorf("contract: %w", err)
	}
	result.Module = module
	result.GenerateTime = time.Since(start)

	log.Debug("generated contract",
		"schemas", len(defs),
		"operations", len(routes),
		"issues", len(result.Issues),
		"elapsed", result.GenerateTime)
	return result, nil
}

func (g *Generator) log() parser.Logger {
	return parser.LoggerOrNop(g.Logger)
}

// checkKeys rejects two operations that map to the same router key.
func checkKeys(ops []*operations.Operation) error {
	seen := make(map[string]*operations.Operation, len(ops))
	var errs []error
	for _, op := range ops {
		key := op.Key()
		if prev, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("duplicate operation key %q: %s %s and %s %s",
				key, prev.Method, prev.Path, op.Method, op.Path))
			continue
		}
		seen[key] = op
	}
	return errors.Join(errs...)
}

func collisionIssues(table *exports.Table) []issues.Issue {
	var list []issues.Issue
	for _, r := range table.Renames() {
		e, _ := table.Lookup(r.Ref)
		list = append(list, issues.Issue{
			Path:     issues.FormatPath("components", "schemas", e.Name),
			Message:  fmt.Sprintf("identifier %s is reserved, exported as %s", r.From, r.To),
			Severity: severity.SeverityWarning,
			Value:    r.Ref,
		})
	}
	for _, col := range table.Collisions() {
		for _, ref := range col.Refs[1:] {
			e, _ := table.Lookup(ref)
			list = append(list, issues.Issue{
				Path:     issues.FormatPath("components", "schemas", e.Name),
				Message:  fmt.Sprintf("identifier %s is already used by %s", col.Identifier, col.Refs[0]),
				Severity: severity.SeverityWarning,
				Value:    ref,
			})
		}
	}
	return list
}
