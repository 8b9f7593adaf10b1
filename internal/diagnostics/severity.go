package diagnostics

// Severity defines how serious a diagnostic is. Only SeverityError affects
// the aggregate pass/fail state of a run; warnings are recorded but benign.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	}
	return "UNKNOWN"
}
