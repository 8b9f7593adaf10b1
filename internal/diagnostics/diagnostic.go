package diagnostics

import "fmt"

// Frame is the minimal view of one call-stack frame needed for location
// reporting. The analysis engine supplies the concrete type.
type Frame interface {
	File() string
	Line() int
	Routine() string
}

// Stack is an ordered call trace, outermost frame first. The reporting core
// only ever reads the last (innermost) frame.
type Stack []Frame

// Diagnostic is one immutable finding: a severity, a message, the kind name
// that was bound when it was built, and optional location metadata. Zero
// values mean absent for the optional fields.
type Diagnostic struct {
	severity Severity
	kind     string
	message  string
	filename string
	line     int
	column   int
	lineText string
	routine  string
	details  string
}

// Option sets an optional field during construction.
type Option func(*Diagnostic)

// At sets the source file and line of the finding.
func At(filename string, line int) Option {
	return func(d *Diagnostic) {
		d.filename = filename
		d.line = line
	}
}

// Column sets the source column. Stacks do not carry columns, so this is
// only ever set by direct construction.
func Column(column int) Option {
	return func(d *Diagnostic) {
		d.column = column
	}
}

// LineText sets the literal source line. Like Column, never stack-derived.
func LineText(text string) Option {
	return func(d *Diagnostic) {
		d.lineText = text
	}
}

// Routine sets the name of the function or method active at the finding.
func Routine(name string) Option {
	return func(d *Diagnostic) {
		d.routine = name
	}
}

// Details attaches free-form multi-line context to the finding.
func Details(text string) Option {
	return func(d *Diagnostic) {
		d.details = text
	}
}

// New builds a Diagnostic carrying the currently bound kind. It panics with
// *ConfigError when called outside Registry.WithKind.
func (r *Registry) New(severity Severity, message string, opts ...Option) *Diagnostic {
	d := &Diagnostic{
		severity: severity,
		kind:     r.activeKind(),
		message:  message,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FromStack builds a Diagnostic located at the innermost frame of stack.
// A nil or empty stack yields a diagnostic without location.
func (r *Registry) FromStack(stack Stack, severity Severity, message string, opts ...Option) *Diagnostic {
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		opts = append([]Option{At(top.File(), top.Line()), Routine(top.Routine())}, opts...)
	}
	return r.New(severity, message, opts...)
}

func (d *Diagnostic) Severity() Severity { return d.severity }

func (d *Diagnostic) Kind() string { return d.kind }

func (d *Diagnostic) Message() string { return d.message }

func (d *Diagnostic) Filename() string { return d.filename }

func (d *Diagnostic) Line() int { return d.line }

func (d *Diagnostic) Column() int { return d.column }

func (d *Diagnostic) LineText() string { return d.lineText }

func (d *Diagnostic) Routine() string { return d.routine }

func (d *Diagnostic) Details() string { return d.details }

// String renders the single-line report form. Column and line text are part
// of the data model but deliberately absent from this rendering.
func (d *Diagnostic) String() string {
	if d.filename == "" {
		return fmt.Sprintf("%s [%s]", d.message, d.kind)
	}
	return fmt.Sprintf("File %q, line %d, in %s: %s [%s]", d.filename, d.line, d.routine, d.message, d.kind)
}
