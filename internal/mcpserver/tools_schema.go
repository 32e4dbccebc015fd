package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oacontract/ast"
	"github.com/erraggy/oacontract/compiler"
	"github.com/erraggy/oacontract/exports"
	"github.com/erraggy/oacontract/internal/pathutil"
	"github.com/erraggy/oacontract/resolver"
)

type schemaInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI document containing the schema"`
	Name string    `json:"name" jsonschema:"Component schema name, as written under components.schemas"`
}

type schemaOutput struct {
	Name         string   `json:"name"`
	Identifier   string   `json:"identifier"`
	Validator    string   `json:"validator"`
	Dependencies []string `json:"dependencies,omitempty"`
}

func handleSchema(_ context.Context, _ *mcp.CallToolRequest, input schemaInput) (*mcp.CallToolResult, schemaOutput, error) {
	if input.Name == "" {
		return errResult(fmt.Errorf("name is required")), schemaOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), schemaOutput{}, nil
	}
	res := resolver.New(parseResult.Document)
	table, err := exports.Build(res)
	if err != nil {
		return errResult(err), schemaOutput{}, nil
	}

	entry, ok := table.Lookup(pathutil.SchemaRef(input.Name))
	if !ok {
		return errResult(fmt.Errorf("schema %q not found in components", input.Name)), schemaOutput{}, nil
	}
	def, err := compiler.New(res, table).CompileEntry(entry)
	if err != nil {
		return errResult(err), schemaOutput{}, nil
	}

	return nil, schemaOutput{
		Name:         entry.Name,
		Identifier:   entry.Identifier,
		Validator:    ast.Print(def.Expr),
		Dependencies: table.Graph().Edges(entry.Ref),
	}, nil
}
