// Package ast models zod validator expressions and prints them as TypeScript.
//
// A validator is a base expression followed by chained method calls:
//
//	z.string().min(1).optional()
//
// is Chain{Base: Ident{"z"}, Calls: [string(), min(1), optional()]}. The
// compiler builds these trees; [Print] renders them. Object literals print
// one field per line with two-space indentation, except a single field with
// a literal value which stays inline. Everything else prints on one line.
//
// Nodes are plain values without back-references, so trees can be compared
// with go-cmp and shared freely between goroutines.
package ast
