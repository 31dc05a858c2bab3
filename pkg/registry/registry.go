// Package registry implements the Knight function table: one ASCII opcode
// byte maps to a fixed arity and an operation, grounded on the teacher's
// pkg/stdlib registry.go/Fn split (there keyed by dotted name, here by
// opcode byte since that is the key the parser and evaluator actually use).
// The ~30 built-ins are split by arity into registry_nullary.go,
// registry_unary.go, registry_binary.go, and registry_ternary.go, mirroring
// the teacher's split of pkg/stdlib by domain (math_ops.go, string_ops.go,
// list_ops.go, ...).
package registry

import (
	"context"
	"io"

	"github.com/knight-lang/knight-go/pkg/capabilities"
	"github.com/knight-lang/knight-go/pkg/kenv"
	"github.com/knight-lang/knight-go/pkg/value"
)

// OpContext is everything an operation needs beyond its own argument
// subtrees: the ability to recursively run a value (since most operations
// run their own arguments rather than having the evaluator do it for them,
// per spec §4.5), the global environment, stdio, the host capability
// policy, and shell access. pkg/evaluator implements this interface;
// registry only depends on value/kenv/capabilities/diagnostics, so there is
// no import cycle between registry and evaluator.
type OpContext interface {
	Run(value.Value) (value.Value, error)
	Parse(source string) (value.Value, error)
	Env() *kenv.Environment
	Stdout() io.Writer
	FlushStdout() error
	ReadLine() (line string, ok bool, err error)
	Rand() uint32
	Policy() *capabilities.Policy
	Shell(ctx context.Context, cmdline string) (string, error)
	Context() context.Context
}

// Op is a registered operation: it receives ctx and its own unevaluated
// argument subtrees, and decides for itself which (if any) to run, per
// spec §4.5's "operations do NOT run their arguments unless stated."
type Op func(ctx OpContext, args []value.Value) (value.Value, error)

// Entry is one opcode table row.
type Entry struct {
	Arity int
	Op    Op
}

// Table holds the frozen opcode-to-Entry mapping. Per spec §5, the
// registry is populated once at startup and never mutated again; Table
// itself carries no mutex because of that.
type Table struct {
	entries map[byte]Entry
}

// NewTable builds the standard Knight opcode table.
func NewTable() *Table {
	t := &Table{entries: make(map[byte]Entry)}
	registerNullary(t)
	registerUnary(t)
	registerBinary(t)
	registerTernary(t)
	return t
}

func (t *Table) register(opcode byte, arity int, op Op) {
	t.entries[opcode] = Entry{Arity: arity, Op: op}
}

// Lookup returns the entry for opcode and whether it exists. A miss must be
// reported as an "unknown function" ParseError before any further work —
// spec §9's first open question, resolved that way here rather than
// reading a non-existent entry.
func (t *Table) Lookup(opcode byte) (Entry, bool) {
	e, ok := t.entries[opcode]
	return e, ok
}
