// Package compiler translates OpenAPI schema nodes into zod validator
// expressions.
//
// # Dispatch
//
// A node is classified into one shape, checked in this order:
//
//  1. $ref: an exported target compiles to its identifier, any other target
//     is resolved and compiled in place
//  2. oneOf: z.union over the members
//  3. allOf: first member chained with .and() per remaining member
//  4. anyOf: z.union over every non-empty subset merged with .merge(),
//     largest subsets first
//  5. enum: z.literal, z.enum or a union of literals
//  6. type arrays: one element dispatches on it, more build a z.union
//  7. primitives, arrays, objects and records by declared type
//  8. no type: z.unknown()
//
// Composites with a single member compile to that member. Anything else is
// reported as *oaserrors.UnsupportedSchemaError with the location of the node.
//
// # Constraints
//
// [Constraints] appends length, range, pattern and format refinements for
// single-typed primitives and arrays, followed by .nullable(), .default()
// and .optional(). Composite, enum and reference expressions only receive
// the modifiers from [Modifiers], since type-specific refinements are not
// methods of those validators.
//
// # Usage
//
//	res := resolver.New(doc)
//	table, err := exports.Build(res)
//	if err != nil {
//		return err
//	}
//	defs, err := compiler.New(res, table).CompileExports()
package compiler
