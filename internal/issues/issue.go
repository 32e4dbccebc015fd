// Package issues provides the issue type for non-fatal generation problems.
package issues

import (
	"fmt"

	"github.com/erraggy/oacontract/internal/severity"
)

// Issue represents a single problem found while generating a contract.
type Issue struct {
	// Path is the dotted location in the document (e.g., "paths./pets.get.responses.default")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Value is the problematic value (optional)
	Value any
	// OperationContext identifies the operation the issue belongs to. Nil for
	// component-level issues.
	OperationContext *OperationContext
}

// String returns a formatted string representation of the issue.
// Uses "⚠" for warnings and "ℹ" for info.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	path := i.Path
	if i.OperationContext != nil && !i.OperationContext.IsEmpty() {
		path = fmt.Sprintf("%s %s", i.Path, i.OperationContext.String())
	}
	return fmt.Sprintf("%s %s: %s", symbol, path, i.Message)
}

// Count returns how many issues have the given severity.
func Count(list []Issue, s severity.Severity) int {
	n := 0
	for _, i := range list {
		if i.Severity == s {
			n++
		}
	}
	return n
}
