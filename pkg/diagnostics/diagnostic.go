package diagnostics

import (
	"fmt"

	"github.com/stackb/fir-symbols/pkg/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Factory describes a kind of diagnostic.  Factories are compared by
// identity.
type Factory struct {
	Name     string
	Severity Severity
	Message  string
}

// EmptyRange is reported for a range expression that can never contain a
// value.
var EmptyRange = &Factory{
	Name:     "EMPTY_RANGE",
	Severity: Warning,
	Message:  "this range is empty",
}

// Diagnostic is a reported diagnostic anchored at a source element.
type Diagnostic struct {
	Factory *Factory
	Source  source.Element
}

// String implements fmt.Stringer
func (d *Diagnostic) String() string {
	if d.Source == nil {
		return fmt.Sprintf("%s %s: %s", d.Factory.Severity, d.Factory.Name, d.Factory.Message)
	}
	return fmt.Sprintf("%d:%d: %s %s: %s", d.Source.StartOffset(), d.Source.EndOffset(), d.Factory.Severity, d.Factory.Name, d.Factory.Message)
}

// Reporter receives diagnostics.  Reporting is fire-and-forget.
type Reporter interface {
	Report(src source.Element, factory *Factory)
}
