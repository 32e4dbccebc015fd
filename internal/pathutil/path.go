package pathutil

import "regexp"

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// ToRoutePath rewrites an OpenAPI path template into the colon form used by
// router libraries: "/pets/{petId}" becomes "/pets/:petId".
func ToRoutePath(path string) string {
	return PathParamRegex.ReplaceAllString(path, ":$1")
}

// PathParams returns the template parameter names of path in order.
func PathParams(path string) []string {
	matches := PathParamRegex.FindAllStringSubmatch(path, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
