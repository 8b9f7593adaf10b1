package diagnostics

import (
	"sort"
	"sync"
)

// ConfigError reports a violated reporting contract, such as constructing a
// Diagnostic while no kind is bound. It indicates a programming mistake in
// the caller, never a finding about analyzed code, and is raised via panic.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "diagnostics: " + e.Reason
}

// Process-wide set of every kind name ever bound. It only grows and exists
// for introspection and tests; reporting paths never consult it.
var (
	namesMu sync.Mutex
	names   = map[string]struct{}{}
)

func registerName(name string) {
	namesMu.Lock()
	defer namesMu.Unlock()
	names[name] = struct{}{}
}

// IsRegistered reports whether name has ever been bound as a diagnostic kind.
func IsRegistered(name string) bool {
	namesMu.Lock()
	defer namesMu.Unlock()
	_, ok := names[name]
	return ok
}

// RegisteredNames returns a sorted copy of all kind names seen so far.
func RegisteredNames() []string {
	namesMu.Lock()
	defer namesMu.Unlock()
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Registry scopes the active diagnostic kind for reporting calls. Bindings
// nest and are restored on every exit path, so call sites inside WithKind
// need not pass a kind name on each construction.
//
// A Registry must not be shared across goroutines; give each concurrent
// analysis unit its own Registry and Log.
type Registry struct {
	active []string
}

func NewRegistry() *Registry {
	return &Registry{}
}

// WithKind runs body with name bound as the active kind. The previous
// binding is restored when body returns, errors, or panics.
func (r *Registry) WithKind(name string, body func() error) error {
	if name == "" {
		panic(&ConfigError{Reason: "WithKind called with an empty kind name"})
	}
	registerName(name)
	r.active = append(r.active, name)
	defer func() {
		r.active = r.active[:len(r.active)-1]
	}()
	return body()
}

// activeKind returns the innermost bound kind and panics with *ConfigError
// when no WithKind call is in progress. Silently defaulting a kind here
// would corrupt the diagnostic taxonomy.
func (r *Registry) activeKind() string {
	if len(r.active) == 0 {
		panic(&ConfigError{Reason: "diagnostic constructed outside WithKind"})
	}
	return r.active[len(r.active)-1]
}
