// Package contract generates a ts-rest contract module from an OpenAPI 3.0
// document.
//
// Generation runs the whole pipeline: the document is parsed, its component
// schemas are ordered and named by an [exports.Table], every export and
// every operation is compiled to a validator expression, and the results are
// rendered as one TypeScript module that imports zod and @ts-rest/core.
//
// # Quick Start
//
//	result, err := contract.GenerateWithOptions(
//		contract.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFile("src/contract.ts"); err != nil {
//		log.Fatal(err)
//	}
//
// # Routes
//
// Each operation becomes one entry of the router, keyed by its camel-cased
// operationId (or method and path when there is none). Path templates are
// rewritten to the colon form, parameters are grouped into pathParams, query
// and headers objects, and responses are keyed by status code. POST, PUT and
// PATCH routes always carry a body, c.noBody() when the document declares
// none.
//
// # Issues
//
// Parts of the document the contract cannot express are reported in
// [Result.Issues] rather than failing generation: the default response,
// cookie parameters, request bodies on GET-like methods and schemas whose
// names normalize to the same identifier.
package contract
