package parse

import "fmt"

// Severity classifies a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is a message produced during parsing. The span is optional; a
// zero span means the message is not tied to a source location. A
// diagnostic with empty text is treated as absent by the outcome algebra.
type Diagnostic struct {
	Severity Severity
	Text     string
	Span     Span
}

// Errorf builds an Error-severity diagnostic without a span.
func Errorf(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Error, Text: fmt.Sprintf(format, args...)}
}

func (d Diagnostic) String() string {
	if d.Span.Empty() && d.Span.Start.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Severity, d.Text)
	}
	return fmt.Sprintf("%s: %s: %s", d.Span.Start, d.Severity, d.Text)
}
