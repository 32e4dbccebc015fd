// Package oacontract generates ts-rest contracts with zod validators from
// OpenAPI 3.0 documents.
//
// The work is split across packages that each own one stage:
//
//   - parser loads YAML or JSON into an order-preserving document model
//   - resolver follows local "#/components/..." references
//   - depgraph builds the schema dependency graph and sorts it
//   - exports assigns every component schema an identifier and an order
//   - compiler turns schemas into validator expressions ([ast.Expr])
//   - operations extracts the paths and methods of the document
//   - contract runs the pipeline and renders the TypeScript module
//
// # Quick Start
//
//	result, err := contract.GenerateWithOptions(
//		contract.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(result.Module)
//
// The oacontract command wraps the same pipeline and also serves it over the
// Model Context Protocol.
//
// [ast.Expr]: https://pkg.go.dev/github.com/erraggy/oacontract/ast#Expr
package oacontract
