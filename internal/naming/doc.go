// Package naming turns OpenAPI names into TypeScript identifiers.
//
// [Identifier] maps schema component names to exported constant names and
// [ToCamelCase] builds contract keys from operation IDs. Casing goes through
// golang.org/x/text/cases so non-ASCII letters are title-cased correctly.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
