package issues

import (
	"fmt"
	"strings"
)

// OperationContext identifies the operation an issue was found in.
type OperationContext struct {
	// Method is the HTTP method, any case
	Method string
	// Path is the API path pattern (e.g., "/users/{id}")
	Path string
	// OperationID is the operationId if defined (may be empty)
	OperationID string
}

// String returns "(operationId: x)" when an operationId is known, otherwise
// "(GET /path)". Returns empty string if the context is empty.
func (c OperationContext) String() string {
	switch {
	case c.IsEmpty():
		return ""
	case c.OperationID != "":
		return fmt.Sprintf("(operationId: %s)", c.OperationID)
	case c.Method != "":
		return fmt.Sprintf("(%s %s)", strings.ToUpper(c.Method), c.Path)
	default:
		return fmt.Sprintf("(path: %s)", c.Path)
	}
}

// IsEmpty returns true if the context has no meaningful information.
func (c OperationContext) IsEmpty() bool {
	return c.Method == "" && c.Path == "" && c.OperationID == ""
}
