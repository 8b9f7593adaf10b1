package diagnostics

import (
	"iter"
	"strings"
)

// Log is an append-only, insertion-ordered collection of diagnostics for one
// analysis run. Entries are never mutated or deduplicated. A Log is owned by
// a single goroutine; concurrent analysis units each take their own Log and
// merge afterward.
type Log struct {
	reg     *Registry
	entries []*Diagnostic
}

// NewLog returns an empty log that resolves kind names through reg.
func NewLog(reg *Registry) *Log {
	return &Log{reg: reg}
}

// Error records a true error located at the innermost frame of stack.
// details may be empty for none. Panics with *ConfigError when no kind is
// bound.
func (l *Log) Error(stack Stack, message string, details string) {
	l.Add(l.reg.FromStack(stack, SeverityError, message, Details(details)))
}

// Warn records a warning; warnings never fail a run.
func (l *Log) Warn(stack Stack, message string, details string) {
	l.Add(l.reg.FromStack(stack, SeverityWarning, message, Details(details)))
}

// Add appends an already-built diagnostic. Callers that merge per-unit logs
// use this to concatenate entries in a defined order.
func (l *Log) Add(d *Diagnostic) {
	l.entries = append(l.entries, d)
}

func (l *Log) Len() int {
	return len(l.entries)
}

// HasError reports whether at least one entry is a true error. A log holding
// only warnings is a passing run.
func (l *Log) HasError() bool {
	for _, d := range l.entries {
		if d.severity == SeverityError {
			return true
		}
	}
	return false
}

// All yields entries in insertion order. The log must not be appended to
// while an iteration is in progress.
func (l *Log) All() iter.Seq[*Diagnostic] {
	return func(yield func(*Diagnostic) bool) {
		for _, d := range l.entries {
			if !yield(d) {
				return
			}
		}
	}
}

// String renders the full text report: one block per entry, the single-line
// form followed by any details re-emitted indented by two spaces.
func (l *Log) String() string {
	var b strings.Builder
	for _, d := range l.entries {
		b.WriteString(d.String())
		b.WriteByte('\n')
		if d.details == "" {
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.details, "\n"), "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
