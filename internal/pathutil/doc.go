// Package pathutil holds small path helpers shared by the compiler, the
// resolver and the contract writer.
//
// [PathBuilder] records where the compiler is inside a schema tree so an
// error can name the offending node ("properties.owner.oneOf[1]") without
// building strings on the happy path. Use [Get] and [Put] to pool builders:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("properties")
//	path.Push(name)
//	// ... recurse ...
//	path.Pop()
//	path.Pop()
//
// The reference helpers build and split "#/components/{section}/{name}"
// strings, escaping names as JSON Pointer tokens:
//
//	ref := pathutil.SchemaRef("Pet") // "#/components/schemas/Pet"
//	section, name, ok := pathutil.SplitComponentRef(ref)
//
// [ToRoutePath] converts OpenAPI path templates to the ":param" form and
// [SanitizeOutputPath] validates files the CLI is asked to write.
package pathutil
