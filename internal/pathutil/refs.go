package pathutil

import "strings"

// Component reference prefixes for the sections oacontract looks up.
const (
	RefPrefixComponents    = "#/components/"
	RefPrefixSchemas       = "#/components/schemas/"
	RefPrefixParameters    = "#/components/parameters/"
	RefPrefixRequestBodies = "#/components/requestBodies/"
	RefPrefixResponses     = "#/components/responses/"
	RefPrefixHeaders       = "#/components/headers/"
	RefPrefixPathItems     = "#/components/pathItems/"
)

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + EscapeToken(name)
}

// ParameterRef builds "#/components/parameters/{name}".
func ParameterRef(name string) string {
	return RefPrefixParameters + EscapeToken(name)
}

// RequestBodyRef builds "#/components/requestBodies/{name}".
func RequestBodyRef(name string) string {
	return RefPrefixRequestBodies + EscapeToken(name)
}

// ResponseRef builds "#/components/responses/{name}".
func ResponseRef(name string) string {
	return RefPrefixResponses + EscapeToken(name)
}

// HeaderRef builds "#/components/headers/{name}".
func HeaderRef(name string) string {
	return RefPrefixHeaders + EscapeToken(name)
}

// PathItemRef builds "#/components/pathItems/{name}".
func PathItemRef(name string) string {
	return RefPrefixPathItems + EscapeToken(name)
}

var (
	tokenEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	tokenUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// EscapeToken escapes a JSON Pointer reference token (RFC 6901).
func EscapeToken(s string) string {
	return tokenEscaper.Replace(s)
}

// UnescapeToken reverses EscapeToken.
func UnescapeToken(s string) string {
	return tokenUnescaper.Replace(s)
}

// SplitComponentRef splits "#/components/{section}/{name}" into its section
// and unescaped name. ok is false when ref has a different shape, including
// an empty section or name or any further path segment.
func SplitComponentRef(ref string) (section, name string, ok bool) {
	rest, found := strings.CutPrefix(ref, RefPrefixComponents)
	if !found {
		return "", "", false
	}
	section, token, found := strings.Cut(rest, "/")
	if !found || section == "" || token == "" || strings.Contains(token, "/") {
		return "", "", false
	}
	return section, UnescapeToken(token), true
}
