// Package runtime wires the interpreter's components together behind one
// handle, grounded on the teacher's pkg/runtime.Runtime: a functional-
// options constructor plus Run/Check/Format methods that `cmd/knight`
// calls directly instead of touching pkg/parser, pkg/evaluator, and
// pkg/registry itself.
package runtime

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/knight-lang/knight-go/pkg/capabilities"
	"github.com/knight-lang/knight-go/pkg/evaluator"
	"github.com/knight-lang/knight-go/pkg/formatter"
	"github.com/knight-lang/knight-go/pkg/kenv"
	"github.com/knight-lang/knight-go/pkg/parser"
	"github.com/knight-lang/knight-go/pkg/registry"
	"github.com/knight-lang/knight-go/pkg/value"
)

// Runtime holds one global environment, opcode table, and evaluator for
// the process's (or REPL session's) lifetime. Every Run call against the
// same Runtime shares ASSIGN bindings, per spec §4.3's single global
// environment — the natural extension to a multi-statement REPL session.
type Runtime struct {
	env   *kenv.Environment
	table *registry.Table
	ev    *evaluator.Evaluator
}

// Option configures a Runtime under construction.
type Option func(*config)

type config struct {
	stdin  io.Reader
	stdout io.Writer
	policy *capabilities.Policy
	seed   int64
}

// WithStdin overrides the input stream PROMPT reads from.
func WithStdin(r io.Reader) Option {
	return func(c *config) { c.stdin = r }
}

// WithStdout overrides the output stream OUTPUT/DUMP write to.
func WithStdout(w io.Writer) Option {
	return func(c *config) { c.stdout = w }
}

// WithPolicy overrides the default allow-all host capability policy.
func WithPolicy(p *capabilities.Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithSeed fixes RANDOM's seed, for reproducible tests.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// New builds a Runtime. Unset options default to os.Stdin/os.Stdout, an
// allow-all policy, and a time-derived random seed.
func New(opts ...Option) *Runtime {
	c := &config{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		policy: capabilities.AllowAll(),
		seed:   time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(c)
	}

	env := kenv.New()
	table := registry.NewTable()
	ev := evaluator.New(evaluator.Options{
		Stdin:  c.stdin,
		Stdout: c.stdout,
		Env:    env,
		Policy: c.policy,
		Table:  table,
		Seed:   c.seed,
	})
	return &Runtime{env: env, table: table, ev: ev}
}

// Run parses source as one top-level program and runs it against the
// Runtime's persistent global environment, returning the terminal value.
func (rt *Runtime) Run(source string) (value.Value, error) {
	v, err := parser.ParseProgram(source, rt.env, rt.table)
	if err != nil {
		return nil, err
	}
	return rt.ev.Run(v)
}

// Check parses source without running it, against a throwaway environment
// so check-mode invocations never pollute the Runtime's real bindings.
func (rt *Runtime) Check(source string) error {
	_, err := parser.ParseProgram(source, kenv.New(), rt.table)
	return err
}

// Format parses source and re-renders it via pkg/formatter.
func (rt *Runtime) Format(source string) (string, error) {
	v, err := parser.ParseProgram(source, kenv.New(), rt.table)
	if err != nil {
		return "", err
	}
	return formatter.Format(v), nil
}

// Env exposes the Runtime's persistent global environment, mainly so a
// REPL can report variable state or reset it between sessions.
func (rt *Runtime) Env() *kenv.Environment { return rt.env }

// SetContext installs the context SHELL's child processes run under for
// every subsequent Run call, letting a caller scope SHELL to a
// Ctrl-C-cancellable context per program without changing Run's signature.
func (rt *Runtime) SetContext(ctx context.Context) { rt.ev.SetContext(ctx) }
