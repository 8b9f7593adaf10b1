package diagnostics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testKind    = "test-error"
	testMessage = "an error message"
)

type fakeFrame struct {
	file    string
	line    int
	routine string
}

func (f fakeFrame) File() string    { return f.file }
func (f fakeFrame) Line() int       { return f.line }
func (f fakeFrame) Routine() string { return f.routine }

func stackOf(frames ...fakeFrame) Stack {
	s := make(Stack, 0, len(frames))
	for _, f := range frames {
		s = append(s, f)
	}
	return s
}

// withTestKind runs body with testKind bound, failing the test on error.
func withTestKind(t *testing.T, reg *Registry, body func()) {
	t.Helper()
	require.NoError(t, reg.WithKind(testKind, func() error {
		body()
		return nil
	}))
}

func TestNewSetsAllFields(t *testing.T) {
	reg := NewRegistry()
	withTestKind(t, reg, func() {
		d := reg.New(SeverityError, testMessage,
			At("foo.py", 123),
			Column(2),
			LineText("hello"),
			Routine("foo"),
		)
		require.Equal(t, SeverityError, d.Severity())
		require.Equal(t, testMessage, d.Message())
		require.Equal(t, testKind, d.Kind())
		require.Equal(t, "foo.py", d.Filename())
		require.Equal(t, 123, d.Line())
		require.Equal(t, 2, d.Column())
		require.Equal(t, "hello", d.LineText())
		require.Equal(t, "foo", d.Routine())
	})
}

func TestFromStackWithoutFrames(t *testing.T) {
	reg := NewRegistry()
	withTestKind(t, reg, func() {
		for _, stack := range []Stack{nil, {}} {
			d := reg.FromStack(stack, SeverityError, testMessage)
			require.Equal(t, SeverityError, d.Severity())
			require.Equal(t, testKind, d.Kind())
			require.Empty(t, d.Filename())
			require.Zero(t, d.Line())
			require.Empty(t, d.Routine())
		}
	})
}

func TestFromStackUsesInnermostFrame(t *testing.T) {
	reg := NewRegistry()
	withTestKind(t, reg, func() {
		stack := stackOf(
			fakeFrame{file: "outer.py", line: 1, routine: "main"},
			fakeFrame{file: "foo.py", line: 123, routine: "foo"},
		)
		d := reg.FromStack(stack, SeverityError, testMessage)
		require.Equal(t, "foo.py", d.Filename())
		require.Equal(t, 123, d.Line())
		require.Equal(t, "foo", d.Routine())
		// Columns and line text are never derived from a stack.
		require.Zero(t, d.Column())
		require.Empty(t, d.LineText())
	})
}

func TestStringWithLocation(t *testing.T) {
	reg := NewRegistry()
	withTestKind(t, reg, func() {
		d := reg.New(SeverityError, testMessage,
			At("foo.py", 123),
			Column(2),
			LineText("hello"),
			Routine("foo"),
		)
		require.Equal(t,
			`File "foo.py", line 123, in foo: an error message [test-error]`,
			d.String())
	})
}

func TestStringWithoutLocation(t *testing.T) {
	reg := NewRegistry()
	withTestKind(t, reg, func() {
		d := reg.New(SeverityWarning, testMessage)
		require.Equal(t, "an error message [test-error]", d.String())
	})
}

func TestConstructionOutsideWithKindPanics(t *testing.T) {
	reg := NewRegistry()
	for _, sev := range []Severity{SeverityError, SeverityWarning} {
		require.PanicsWithError(t,
			"diagnostics: diagnostic constructed outside WithKind",
			func() { reg.New(sev, testMessage) })
	}
	require.Panics(t, func() { reg.FromStack(nil, SeverityError, testMessage) })
}

func TestWithKindNestsAndRestores(t *testing.T) {
	reg := NewRegistry()
	var outer, inner, after *Diagnostic
	err := reg.WithKind("outer-kind", func() error {
		outer = reg.New(SeverityError, "m")
		if err := reg.WithKind("inner-kind", func() error {
			inner = reg.New(SeverityError, "m")
			return nil
		}); err != nil {
			return err
		}
		after = reg.New(SeverityError, "m")
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "outer-kind", outer.Kind())
	require.Equal(t, "inner-kind", inner.Kind())
	require.Equal(t, "outer-kind", after.Kind())
}

func TestWithKindRestoresOnPanic(t *testing.T) {
	reg := NewRegistry()
	require.Panics(t, func() {
		_ = reg.WithKind("doomed-kind", func() error {
			panic(errors.New("boom"))
		})
	})
	// The binding must be gone after the abnormal exit.
	require.Panics(t, func() { reg.New(SeverityError, testMessage) })
}

func TestWithKindPropagatesBodyError(t *testing.T) {
	reg := NewRegistry()
	wantErr := errors.New("analysis failed")
	err := reg.WithKind(testKind, func() error { return wantErr })
	require.ErrorIs(t, err, wantErr)
}

func TestWithKindRejectsEmptyName(t *testing.T) {
	reg := NewRegistry()
	require.Panics(t, func() {
		_ = reg.WithKind("", func() error { return nil })
	})
}

func TestRegisteredNames(t *testing.T) {
	reg := NewRegistry()
	withTestKind(t, reg, func() {})
	require.True(t, IsRegistered(testKind))
	require.Contains(t, RegisteredNames(), testKind)
	require.False(t, IsRegistered("never-bound"))
}
