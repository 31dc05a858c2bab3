// Package evaluator implements Run: the exhaustive per-kind evaluation
// rule from spec.md §4.6. Inert kinds (Integer, String, Boolean, Null,
// List) return themselves; Identifier resolves through the environment;
// Function nodes invoke their opcode's registered operation. Grounded on
// the teacher's unexported evaluator struct plus a functional-options
// public entrypoint (pkg/evaluator/evaluator.go's Execute/ExecOptions).
package evaluator

import (
	"bufio"
	"context"
	"io"
	"math/rand"

	"github.com/knight-lang/knight-go/pkg/capabilities"
	"github.com/knight-lang/knight-go/pkg/diagnostics"
	"github.com/knight-lang/knight-go/pkg/kenv"
	"github.com/knight-lang/knight-go/pkg/parser"
	"github.com/knight-lang/knight-go/pkg/registry"
	"github.com/knight-lang/knight-go/pkg/tools"
	"github.com/knight-lang/knight-go/pkg/value"
)

// Options configures an Evaluator. Stdin and Stdout must be supplied by the
// caller (os.Stdin/os.Stdout or equivalents); a nil Env, Policy, or Table is
// replaced by New with a fresh environment, an allow-all policy, or the
// standard opcode table, and a zero Seed seeds RANDOM with 0.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Env    *kenv.Environment
	Policy *capabilities.Policy
	Table  *registry.Table
	Seed   int64
}

// Evaluator runs parsed Knight value trees against one global environment.
// Unexported fields mirror the teacher's unexported evaluator struct;
// Evaluator itself is the public handle, constructed via New.
type Evaluator struct {
	in     *bufio.Reader
	out    *bufio.Writer
	env    *kenv.Environment
	policy *capabilities.Policy
	table  *registry.Table
	rng    *rand.Rand
	ctx    context.Context
}

// New builds an Evaluator from opts, defaulting Env/Policy/Table when left
// unset.
func New(opts Options) *Evaluator {
	env := opts.Env
	if env == nil {
		env = kenv.New()
	}
	policy := opts.Policy
	if policy == nil {
		policy = capabilities.AllowAll()
	}
	table := opts.Table
	if table == nil {
		table = registry.NewTable()
	}
	return &Evaluator{
		in:     bufio.NewReader(opts.Stdin),
		out:    bufio.NewWriter(opts.Stdout),
		env:    env,
		policy: policy,
		table:  table,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		ctx:    context.Background(),
	}
}

// SetContext installs the context SHELL uses for its child process,
// letting a REPL scope one program's SHELL calls to a Ctrl-C-cancellable
// context without threading ctx through Run's signature.
func (e *Evaluator) SetContext(ctx context.Context) { e.ctx = ctx }

// Context returns the context installed via SetContext, or
// context.Background() if none was set.
func (e *Evaluator) Context() context.Context { return e.ctx }

// Run implements the spec's per-kind run rule. It satisfies
// registry.OpContext's Run method, so operations can recurse into it for
// their own argument subtrees.
func (e *Evaluator) Run(v value.Value) (value.Value, error) {
	switch t := v.(type) {
	case *value.Identifier:
		bound, ok := t.Binding()
		if !ok {
			return nil, diagnostics.Name("unbound variable %q", t.Name).WithName(t.Name)
		}
		return bound, nil
	case *value.Function:
		entry, ok := e.table.Lookup(t.Opcode)
		if !ok {
			return nil, diagnostics.Parse("unknown function %q", t.OpcodeName()).WithOpcode(t.OpcodeName())
		}
		result, err := entry.Op(e, t.Args)
		if err != nil {
			if d, ok := err.(*diagnostics.Diagnostic); ok && d.Opcode == "" {
				d.WithOpcode(t.OpcodeName())
			}
			return nil, err
		}
		return result, nil
	default:
		// Integer, Str, Bool, Null, *List are inert: running one is the
		// identity. (spec.md §4.6's own prose also lists "Function node" in
		// this inert set, but that contradicts the very next clause and the
		// glossary's Active-value definition required by BLOCK/CALL; see
		// DESIGN.md for the resolution this switch encodes.)
		return v, nil
	}
}

// Parse parses source as a fresh top-level value, for EVAL. It satisfies
// registry.OpContext's Parse method; putting the import of pkg/parser here
// (rather than in pkg/registry) keeps parser -> registry a one-way
// dependency with no cycle back.
func (e *Evaluator) Parse(source string) (value.Value, error) {
	v, err := parser.ParseProgram(source, e.env, e.table)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Env returns the global environment.
func (e *Evaluator) Env() *kenv.Environment { return e.env }

// Stdout returns the evaluator's output sink. Every Write call flushes
// immediately (see flushingWriter) so PROMPT's blocking read never leaves
// previously written OUTPUT/DUMP text stuck in a buffer.
func (e *Evaluator) Stdout() io.Writer { return flushingWriter{e.out} }

// FlushStdout flushes any buffered output. Normally a no-op given
// flushingWriter already flushes per write; kept for QUIT's belt-and-braces
// flush before os.Exit.
func (e *Evaluator) FlushStdout() error { return e.out.Flush() }

// ReadLine implements PROMPT: one line, trimming at most one trailing
// CR and/or LF. End-of-input with no partial line yields ok=false.
func (e *Evaluator) ReadLine() (string, bool, error) {
	line, err := e.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, diagnostics.IO("read failed: %v", err)
	}
	if line == "" && err == io.EOF {
		return "", false, nil
	}
	line = trimTrailingNewline(line)
	return line, true, nil
}

func trimTrailingNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}

// Rand implements RANDOM: a uniform value in [0, 2^32).
func (e *Evaluator) Rand() uint32 { return e.rng.Uint32() }

// Policy returns the host capability policy gating SHELL and QUIT.
func (e *Evaluator) Policy() *capabilities.Policy { return e.policy }

// Shell implements SHELL via pkg/tools.
func (e *Evaluator) Shell(ctx context.Context, cmdline string) (string, error) {
	return tools.Shell(ctx, cmdline)
}

// flushingWriter flushes the underlying bufio.Writer after every Write,
// so OUTPUT/DUMP text appears immediately rather than waiting for a
// buffer to fill — necessary because a blocking PROMPT can follow
// immediately after in the same program.
type flushingWriter struct {
	w *bufio.Writer
}

func (f flushingWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if err != nil {
		return n, err
	}
	return n, f.w.Flush()
}
