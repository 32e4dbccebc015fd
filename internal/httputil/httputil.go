// Package httputil provides HTTP method and status code helpers used when
// extracting operations from a document.
package httputil

import (
	"slices"
	"strconv"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode    = 100 // Minimum valid HTTP status code
	MaxStatusCode    = 599 // Maximum valid HTTP status code
	WildcardChar     = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Wildcard boundary characters for validation
const (
	minWildcardBoundary = '1'
	maxWildcardBoundary = '5'
)

// StandardHTTPStatusCodes contains RFC 9110 officially defined HTTP status codes.
// Responses with other numeric codes are kept but logged as non-standard.
var StandardHTTPStatusCodes = map[string]bool{
	// 1xx Informational
	"100": true, "101": true, "102": true, "103": true,
	// 2xx Success
	"200": true, "201": true, "202": true, "203": true, "204": true, "205": true,
	"206": true, "207": true, "208": true, "226": true,
	// 3xx Redirection
	"300": true, "301": true, "302": true, "303": true, "304": true, "305": true,
	"307": true, "308": true,
	// 4xx Client Error
	"400": true, "401": true, "402": true, "403": true, "404": true, "405": true,
	"406": true, "407": true, "408": true, "409": true, "410": true, "411": true,
	"412": true, "413": true, "414": true, "415": true, "416": true, "417": true,
	"418": true, "421": true, "422": true, "423": true, "424": true, "425": true,
	"426": true, "428": true, "429": true, "431": true, "451": true,
	// 5xx Server Error
	"500": true, "501": true, "502": true, "503": true, "504": true, "505": true,
	"506": true, "507": true, "508": true, "510": true, "511": true,
}

// StatusCodeClass is the kind of a response key.
type StatusCodeClass int

const (
	// StatusInvalid is anything not listed below.
	StatusInvalid StatusCodeClass = iota
	// StatusNumeric is a three-digit code between 100 and 599.
	StatusNumeric
	// StatusDefault is the "default" response.
	StatusDefault
	// StatusWildcard is a range pattern such as "2XX".
	StatusWildcard
	// StatusExtension is an "x-" specification extension.
	StatusExtension
)

// ClassifyStatusCode reports what kind of response key code is.
func ClassifyStatusCode(code string) StatusCodeClass {
	if code == "default" {
		return StatusDefault
	}

	if strings.HasPrefix(code, "x-") {
		return StatusExtension
	}

	if len(code) == StatusCodeLength {
		// Check for wildcard patterns (e.g., "2XX", "4XX")
		if code[1] == WildcardChar && code[2] == WildcardChar {
			firstChar := code[0]
			if firstChar >= minWildcardBoundary && firstChar <= maxWildcardBoundary {
				return StatusWildcard
			}
		}

		if isDigit(code[0]) && isDigit(code[1]) && isDigit(code[2]) {
			statusCode, err := strconv.Atoi(code)
			if err == nil && statusCode >= MinStatusCode && statusCode <= MaxStatusCode {
				return StatusNumeric
			}
		}
	}

	return StatusInvalid
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsStandardStatusCode checks if a status code is a well-defined standard HTTP code.
// Returns true only for codes in StandardHTTPStatusCodes map.
func IsStandardStatusCode(code string) bool {
	return StandardHTTPStatusCodes[code]
}

// Methods lists the operation keys of a path item in the order they are
// defined by the OpenAPI specification.
var Methods = []string{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
	MethodTrace,
}

// IsMethod reports whether key is a lowercase HTTP method allowed as a
// path item field.
func IsMethod(key string) bool {
	return slices.Contains(Methods, key)
}
