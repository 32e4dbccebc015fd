package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oacontract/contract"
	"github.com/erraggy/oacontract/internal/pathutil"
)

type generateInput struct {
	Spec         specInput `json:"spec"                    jsonschema:"The OpenAPI document to generate a contract from"`
	ContractName string    `json:"contract_name,omitempty" jsonschema:"Exported name of the router constant (default: contract)"`
	ZodImport    string    `json:"zod_import,omitempty"    jsonschema:"Module specifier z is imported from (default: zod)"`
	Output       string    `json:"output,omitempty"        jsonschema:"File to write the module to instead of returning it inline"`
}

type issueInfo struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

type generateOutput struct {
	Title        string      `json:"title,omitempty"`
	Version      string      `json:"version,omitempty"`
	ContractName string      `json:"contract_name"`
	Schemas      int         `json:"schemas"`
	Operations   int         `json:"operations"`
	Module       string      `json:"module,omitempty"`
	WrittenTo    string      `json:"written_to,omitempty"`
	Issues       []issueInfo `json:"issues,omitempty"`
	WarningCount int         `json:"warning_count"`
	InfoCount    int         `json:"info_count"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	opts := []contract.Option{
		contract.WithParsed(*parseResult),
		contract.WithConcurrency(cfg.Concurrency),
	}
	if input.ContractName != "" {
		opts = append(opts, contract.WithContractName(input.ContractName))
	}
	if input.ZodImport != "" {
		opts = append(opts, contract.WithZodImport(input.ZodImport))
	}

	result, err := contract.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		Title:        result.Title,
		Version:      result.Version,
		ContractName: result.ContractName,
		Schemas:      len(result.Definitions),
		Operations:   len(result.Operations),
		WarningCount: result.WarningCount,
		InfoCount:    result.InfoCount,
	}
	output.Issues = makeSlice[issueInfo](len(result.Issues))
	for _, i := range result.Issues {
		output.Issues = append(output.Issues, issueInfo{
			Severity: i.Severity.String(),
			Path:     i.Path,
			Message:  i.Message,
		})
	}

	if input.Output == "" {
		output.Module = string(result.Module)
		return nil, output, nil
	}

	path, err := pathutil.SanitizeOutputPath(input.Output)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	if err := result.WriteFile(path); err != nil {
		return errResult(fmt.Errorf("failed to write module: %w", err)), generateOutput{}, nil
	}
	output.WrittenTo = path
	return nil, output, nil
}
