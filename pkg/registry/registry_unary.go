package registry

import (
	"os"
	"strings"

	"github.com/knight-lang/knight-go/pkg/capabilities"
	"github.com/knight-lang/knight-go/pkg/diagnostics"
	"github.com/knight-lang/knight-go/pkg/value"
)

func registerUnary(t *Table) {
	t.register('E', 1, opEval)
	t.register('B', 1, opBlock)
	t.register('C', 1, opCall)
	t.register('`', 1, opShell)
	t.register('Q', 1, opQuit)
	t.register('!', 1, opNot)
	t.register('~', 1, opNeg)
	t.register('A', 1, opAscii)
	t.register('L', 1, opLength)
	t.register('D', 1, opDump)
	t.register('O', 1, opOutput)
	t.register(',', 1, opBox)
	t.register('[', 1, opHead)
	t.register(']', 1, opTail)
}

// EVAL runs its String-coerced argument, parses the result as a fresh
// program, and runs that.
func opEval(ctx OpContext, args []value.Value) (value.Value, error) {
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	c, err := value.AsCoercible(run)
	if err != nil {
		return nil, err
	}
	src, err := c.ToString()
	if err != nil {
		return nil, err
	}
	parsed, err := ctx.Parse(src)
	if err != nil {
		return nil, err
	}
	return ctx.Run(parsed)
}

// BLOCK returns its argument unevaluated, emulating a nullary thunk.
func opBlock(ctx OpContext, args []value.Value) (value.Value, error) {
	return args[0], nil
}

// CALL runs its argument, then runs the result again — the second run is
// what forces a BLOCK-produced thunk.
func opCall(ctx OpContext, args []value.Value) (value.Value, error) {
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	return ctx.Run(run)
}

// SHELL runs the String-coerced argument as a host shell command and
// returns its captured stdout.
func opShell(ctx OpContext, args []value.Value) (value.Value, error) {
	if !ctx.Policy().IsAllowed(capabilities.Shell) {
		return nil, diagnostics.Domain("shell capability denied by policy")
	}
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	c, err := value.AsCoercible(run)
	if err != nil {
		return nil, err
	}
	cmdline, err := c.ToString()
	if err != nil {
		return nil, err
	}
	out, err := ctx.Shell(ctx.Context(), cmdline)
	if err != nil {
		return nil, err
	}
	return value.Str(out), nil
}

// QUIT terminates the process with the Integer-coerced argument as exit
// code. Stdout is flushed first so buffered OUTPUT/DUMP writes are not
// lost.
func opQuit(ctx OpContext, args []value.Value) (value.Value, error) {
	if !ctx.Policy().IsAllowed(capabilities.Quit) {
		return nil, diagnostics.Domain("quit capability denied by policy")
	}
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	c, err := value.AsCoercible(run)
	if err != nil {
		return nil, err
	}
	code, err := c.ToInteger()
	if err != nil {
		return nil, err
	}
	_ = ctx.FlushStdout()
	os.Exit(int(code))
	panic("unreachable")
}

// NOT is Boolean negation of the run, coerced-to-Boolean argument.
func opNot(ctx OpContext, args []value.Value) (value.Value, error) {
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	c, err := value.AsCoercible(run)
	if err != nil {
		return nil, err
	}
	b, err := c.ToBool()
	if err != nil {
		return nil, err
	}
	return value.Bool(!b), nil
}

// NEG is arithmetic negation: 0 minus the run, Integer-coerced argument.
func opNeg(ctx OpContext, args []value.Value) (value.Value, error) {
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	c, err := value.AsCoercible(run)
	if err != nil {
		return nil, err
	}
	n, err := c.ToInteger()
	if err != nil {
		return nil, err
	}
	return value.Integer(-n), nil
}

// ASCII dispatches to the run argument's Ascii capability.
func opAscii(ctx OpContext, args []value.Value) (value.Value, error) {
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	a, ok := run.(value.Asciier)
	if !ok {
		return nil, diagnostics.Type("ascii is not supported by %T", run)
	}
	return a.Ascii()
}

// LENGTH List-coerces the run argument and returns its Integer length.
func opLength(ctx OpContext, args []value.Value) (value.Value, error) {
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	c, err := value.AsCoercible(run)
	if err != nil {
		return nil, err
	}
	list, err := c.ToList()
	if err != nil {
		return nil, err
	}
	return value.Integer(list.Len()), nil
}

// DUMP runs the argument, writes its dump form to stdout with no trailing
// newline, and returns the (run) value.
func opDump(ctx OpContext, args []value.Value) (value.Value, error) {
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	d, ok := run.(value.Dumper)
	if !ok {
		return nil, diagnostics.Type("dump is not supported by %T", run)
	}
	if _, err := ctx.Stdout().Write([]byte(d.Dump())); err != nil {
		return nil, diagnostics.IO("write failed: %v", err)
	}
	return run, nil
}

// OUTPUT runs and String-coerces the argument. A trailing backslash
// suppresses the newline that would otherwise be appended.
func opOutput(ctx OpContext, args []value.Value) (value.Value, error) {
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	c, err := value.AsCoercible(run)
	if err != nil {
		return nil, err
	}
	s, err := c.ToString()
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(s, `\`) {
		s = s[:len(s)-1]
	} else {
		s += "\n"
	}
	if _, err := ctx.Stdout().Write([]byte(s)); err != nil {
		return nil, diagnostics.IO("write failed: %v", err)
	}
	return value.TheNull, nil
}

// BOX runs the argument and wraps it in a one-element List.
func opBox(ctx OpContext, args []value.Value) (value.Value, error) {
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewList([]value.Value{run}), nil
}

// HEAD dispatches to the run argument's Container.Head.
func opHead(ctx OpContext, args []value.Value) (value.Value, error) {
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	c, ok := run.(value.Container)
	if !ok {
		return nil, diagnostics.Type("head is not supported by %T", run)
	}
	return c.Head()
}

// TAIL dispatches to the run argument's Container.Tail.
func opTail(ctx OpContext, args []value.Value) (value.Value, error) {
	run, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	c, ok := run.(value.Container)
	if !ok {
		return nil, diagnostics.Type("tail is not supported by %T", run)
	}
	return c.Tail()
}
