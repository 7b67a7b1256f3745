package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostics holds the non-fatal findings collected while ingesting messy
// input.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Field identifies which slot or column this relates to (if any).
	Field string
	// Line is the 1-based input line this relates to, or 0.
	Line int
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, field string, line int) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Field:    field,
		Line:     line,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, field string, line int) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Field:    field,
		Line:     line,
	})
}

// IsClean returns true when no errors were collected (warnings are
// tolerated findings, not failures).
func (d *Diagnostics) IsClean() bool {
	return len(d.Errors) == 0
}

// String renders one finding.
func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s [%s] line %d: %s", d.Severity, d.Code, d.Line, d.Message)
	}

	return fmt.Sprintf("%s [%s]: %s", d.Severity, d.Code, d.Message)
}

// String renders every finding, one per line.
func (d *Diagnostics) String() string {
	var b strings.Builder
	for _, diags := range [][]Diagnostic{d.Errors, d.Warnings} {
		for _, diag := range diags {
			b.WriteString(diag.String())
			b.WriteByte('\n')
		}
	}

	return b.String()
}
