package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oacontract/exports"
	"github.com/erraggy/oacontract/resolver"
)

type graphInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OpenAPI document to analyze"`
	Name   string    `json:"name,omitempty"   jsonschema:"Filter by component name (supports * and ? glob patterns)"`
	Offset int       `json:"offset,omitempty" jsonschema:"Number of nodes to skip"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of nodes to return"`
}

type graphNode struct {
	Name         string   `json:"name"`
	Identifier   string   `json:"identifier"`
	Ref          string   `json:"ref"`
	Dependencies []string `json:"dependencies,omitempty"`
}

type graphCollision struct {
	Identifier string   `json:"identifier"`
	Refs       []string `json:"refs"`
}

type graphOutput struct {
	Total      int              `json:"total"`
	Matched    int              `json:"matched"`
	Returned   int              `json:"returned"`
	Nodes      []graphNode      `json:"nodes,omitempty"`
	Collisions []graphCollision `json:"collisions,omitempty"`
}

func handleGraph(_ context.Context, _ *mcp.CallToolRequest, input graphInput) (*mcp.CallToolResult, graphOutput, error) {
	if err := validateGlobPattern(input.Name); err != nil {
		return errResult(err), graphOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), graphOutput{}, nil
	}
	table, err := exports.Build(resolver.New(parseResult.Document))
	if err != nil {
		return errResult(err), graphOutput{}, nil
	}

	var matched []graphNode
	for _, e := range table.Entries() {
		if input.Name != "" && !matchGlobName(e.Name, input.Name) {
			continue
		}
		matched = append(matched, graphNode{
			Name:         e.Name,
			Identifier:   e.Identifier,
			Ref:          e.Ref,
			Dependencies: table.Graph().Edges(e.Ref),
		})
	}

	page := paginate(matched, input.Offset, input.Limit)
	output := graphOutput{
		Total:    table.Len(),
		Matched:  len(matched),
		Returned: len(page),
		Nodes:    page,
	}
	output.Collisions = makeSlice[graphCollision](len(table.Collisions()))
	for _, c := range table.Collisions() {
		output.Collisions = append(output.Collisions, graphCollision{Identifier: c.Identifier, Refs: c.Refs})
	}
	return nil, output, nil
}
