// Package parser loads OpenAPI 3.0 documents into an order-preserving object model.
//
// Documents are read from YAML or JSON into a yaml.Node tree and decoded by
// hand into [Document], so that every user-named mapping (component sections,
// paths, properties, responses, content types) keeps its declaration order in
// a sequenced map. Downstream packages rely on that order: the dependency
// graph iterates schemas in insertion order and the compiler emits object
// fields in declaration order.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for name, schema := range result.Document.Components.Schemas.All() {
//		fmt.Println(name, schema.Type)
//	}
//
// # Schema Model
//
// A [Schema] is a reference when its Ref field is non-empty. "type" is always
// decoded into a slice, "additionalProperties" into an [AdditionalProperties]
// pointer (nil when absent) and "exclusiveMinimum"/"exclusiveMaximum" into
// both their 3.0 boolean and 3.1 numeric forms. Keywords outside the supported
// subset are ignored, except tuple-typed "items" which is rejected.
//
// # Path Items
//
// A [PathItem] keeps every key that is not a fixed field or an extension in
// its Operations map, as written. The operations package decides which keys
// are valid HTTP methods.
//
// # Errors
//
// Structural problems are reported as *oaserrors.ParseError with the line and
// column of the offending node.
package parser
