// Package oaserrors provides structured error types for the oacontract library.
//
// Import path: github.com/erraggy/oacontract/oaserrors
//
// Every failure in the pipeline is raised at the point of detection and is
// never recovered locally: one bad schema aborts the whole compilation. The
// error values carry enough context (reference, node, dependency path) to
// locate the problem in the source document.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON parsing failures and structural issues
//   - [ReferenceError]: malformed or unresolvable $ref strings
//   - [CircularDependencyError]: a cycle among named schema components
//   - [UnsupportedSchemaError]: a schema node that matches no known shape
//   - [OperationError]: invalid HTTP method or status code in the paths object
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrInvalidReference]: Matches [ReferenceError] with Reason=ReasonInvalid
//   - [ErrUnresolvableReference]: Matches [ReferenceError] with Reason=ReasonUnresolvable
//   - [ErrCircularDependency]: Matches [CircularDependencyError]
//   - [ErrUnsupportedSchema]: Matches [UnsupportedSchemaError]
//   - [ErrInvalidHTTPMethod], [ErrInvalidStatusCode]: Match [OperationError] by Kind
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	result, err := contract.GenerateWithOptions(contract.WithFilePath("api.yaml"))
//	var cycle *oaserrors.CircularDependencyError
//	if errors.As(err, &cycle) {
//	    fmt.Println(strings.Join(cycle.Path, " -> "))
//	}
//	if errors.Is(err, oaserrors.ErrUnresolvableReference) {
//	    // dangling $ref
//	}
package oaserrors
