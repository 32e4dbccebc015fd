// Package depgraph builds the dependency graph of a document's schema
// components and orders it for emission.
//
// [Build] records an edge a -> b whenever the expansion of schema a can reach
// a reference to b, through any nesting of allOf/oneOf/anyOf, array items,
// object properties or schema-typed additionalProperties. [Sort] turns the
// graph into a dependencies-first order and reports reference cycles as
// *oaserrors.CircularDependencyError.
//
//	r := resolver.New(doc)
//	g, err := depgraph.Build(doc.Components.Schemas, r.Dereference)
//	if err != nil {
//		return err
//	}
//	order, err := depgraph.Sort(g)
//
// Both functions keep their traversal state in a value created per call, so
// independent documents can be processed concurrently.
package depgraph
