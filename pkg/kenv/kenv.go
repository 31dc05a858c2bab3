// Package kenv implements the single global environment Knight programs
// run against: a name-to-Identifier table with no lexical scoping (spec
// §4.3's Invariant 1 — every variable is global, and every textual
// occurrence of a name shares one Identifier node). This is a flattened
// version of the teacher's parent-chained Env (pkg/evaluator/env.go):
// Knight has exactly one scope, so there is no Child/parent chain to carry
// forward, only the interning table itself.
package kenv

import (
	"sync"

	"github.com/knight-lang/knight-go/pkg/value"
)

// Environment interns Identifier nodes by name and owns their bindings.
// Knight programs have no concurrency (spec §5), but the name table is
// still guarded by a mutex the way the teacher guards its Env, so Lookup,
// Reset, and Len are safe to call from several goroutines. The bindings
// themselves live on each Identifier and are not synchronized.
type Environment struct {
	mu    sync.Mutex
	names map[string]*value.Identifier
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{names: make(map[string]*value.Identifier)}
}

// Lookup returns the interned Identifier node for name, creating an unbound
// one on first sight. Every subsequent Lookup of the same name, from
// anywhere in the program, returns the identical pointer.
func (e *Environment) Lookup(name string) *value.Identifier {
	e.mu.Lock()
	defer e.mu.Unlock()
	if id, ok := e.names[name]; ok {
		return id
	}
	id := value.NewIdentifier(name)
	e.names[name] = id
	return id
}

// Reset clears every binding, as if the Environment were freshly created,
// for callers (such as tests) that need a clean global namespace between
// cases.
func (e *Environment) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.names = make(map[string]*value.Identifier)
}

// Len reports how many distinct names have been interned, bound or not.
func (e *Environment) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.names)
}
