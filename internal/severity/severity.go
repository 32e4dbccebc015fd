// Package severity provides the severity levels of generation issues.
//
// Problems that make the generated module unusable are returned as errors,
// so only the non-fatal levels exist here, ordered Info < Warning.
package severity

// Severity indicates how much attention a generation issue needs.
type Severity int

const (
	// SeverityInfo indicates a processing choice, such as a response that
	// was left out of the contract.
	SeverityInfo Severity = iota

	// SeverityWarning indicates output that compiles but may not behave as
	// the document intends, such as two schemas sharing one identifier.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}
