// Package resolver parses and follows $ref strings within one OpenAPI document.
//
// References must have the form "#/components/{section}/{name}" where section
// is one of schemas, parameters, requestBodies, responses or headers (path
// item references are followed only by [Resolver.PathItem]). Anything else
// fails with an *oaserrors.ReferenceError whose reason is ReasonInvalid.
//
// Dereferencing follows reference-to-reference chains. A missing component
// or a chain longer than [MaxRefDepth] hops fails with ReasonUnresolvable,
// which turns a malformed reference cycle into a deterministic error.
//
//	r := resolver.New(doc)
//	pet, err := r.Schema("#/components/schemas/Pet")
//	if errors.Is(err, oaserrors.ErrUnresolvableReference) {
//		// dangling or cyclic reference
//	}
package resolver
