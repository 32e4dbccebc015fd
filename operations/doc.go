// Package operations extracts the operations of an OpenAPI document.
//
// [Extract] walks the paths object in order, resolves path item, parameter,
// request body and response references, and merges path-level parameters
// into each operation. Each [Operation] knows its contract key:
//
//	ops, err := operations.Extract(resolver.New(doc))
//	for _, op := range ops {
//		fmt.Println(op.Key(), strings.ToUpper(op.Method), op.Path)
//	}
package operations
