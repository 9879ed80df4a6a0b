package diagnostic

import "inputtype-generator/internal/logger"

// Reporter receives diagnostics as they are produced.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) {
	f(d)
}

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// LogReporter writes each diagnostic as one line through the logger package.
type LogReporter struct{}

// Report logs d at a level matching its severity.
func (LogReporter) Report(d Diagnostic) {
	switch d.Severity {
	case DiagnosticError:
		logger.Error("%s", d.Line())
	case DiagnosticWarning:
		logger.Warning("%s", d.Line())
	default:
		logger.Verbose("%s", d.Line())
	}
}

// Tee forwards every diagnostic to all reporters in order.
func Tee(reporters ...Reporter) Reporter {
	return ReporterFunc(func(d Diagnostic) {
		for _, r := range reporters {
			if r != nil {
				r.Report(d)
			}
		}
	})
}
