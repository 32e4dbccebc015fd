package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isWordRune reports whether r can appear inside an identifier word.
// Every other rune separates words.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Words splits s into runs of letters and digits.
// Example: "api-client.v2" -> ["api", "client", "v2"]
func Words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !isWordRune(r) })
}

// ToPascalCase converts a string to PascalCase.
// Any non-alphanumeric rune triggers capitalization of the next letter and is
// dropped. Existing capitals are kept.
// Example: "user_profile" -> "UserProfile"
// Example: "Response[User]" -> "ResponseUser"
func ToPascalCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	// A Caser is stateful, so each call gets its own.
	titleCaser := cases.Title(language.English, cases.NoLower)

	var result strings.Builder
	result.Grow(len(s))
	for _, w := range words {
		runes := []rune(w)
		result.WriteString(titleCaser.String(string(runes[0])))
		result.WriteString(string(runes[1:]))
	}
	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "show-pet-by-id" -> "showPetById"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// Identifier normalizes a component name into a valid TypeScript identifier
// in PascalCase. Names that start with a digit get a leading underscore and
// names without any letter or digit become "_".
//
// Identifier is deterministic but not injective: "pet_store" and "PetStore"
// both map to "PetStore". Callers that need unique names must check for
// collisions themselves.
func Identifier(name string) string {
	id := ToPascalCase(name)
	if id == "" {
		return "_"
	}
	if unicode.IsDigit([]rune(id)[0]) {
		return "_" + id
	}
	return id
}
