package registry

import (
	"github.com/knight-lang/knight-go/pkg/diagnostics"
	"github.com/knight-lang/knight-go/pkg/value"
)

func registerBinary(t *Table) {
	t.register('+', 2, opAdd)
	t.register('-', 2, opSub)
	t.register('*', 2, opMul)
	t.register('/', 2, opDiv)
	t.register('%', 2, opMod)
	t.register('^', 2, opPow)
	t.register('<', 2, opLess)
	t.register('>', 2, opGreater)
	t.register('?', 2, opEquals)
	t.register('&', 2, opAnd)
	t.register('|', 2, opOr)
	t.register(';', 2, opThen)
	t.register('W', 2, opWhile)
	t.register('=', 2, opAssign)
}

func runBoth(ctx OpContext, args []value.Value) (value.Value, value.Value, error) {
	lhs, err := ctx.Run(args[0])
	if err != nil {
		return nil, nil, err
	}
	rhs, err := ctx.Run(args[1])
	if err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

func opAdd(ctx OpContext, args []value.Value) (value.Value, error) {
	lhs, rhs, err := runBoth(ctx, args)
	if err != nil {
		return nil, err
	}
	a, ok := lhs.(value.Adder)
	if !ok {
		return nil, diagnostics.Type("add is not supported by %T", lhs)
	}
	return a.Add(rhs)
}

func opSub(ctx OpContext, args []value.Value) (value.Value, error) {
	lhs, rhs, err := runBoth(ctx, args)
	if err != nil {
		return nil, err
	}
	s, ok := lhs.(value.Subber)
	if !ok {
		return nil, diagnostics.Type("sub is not supported by %T", lhs)
	}
	return s.Sub(rhs)
}

func opMul(ctx OpContext, args []value.Value) (value.Value, error) {
	lhs, rhs, err := runBoth(ctx, args)
	if err != nil {
		return nil, err
	}
	m, ok := lhs.(value.Muler)
	if !ok {
		return nil, diagnostics.Type("mul is not supported by %T", lhs)
	}
	return m.Mul(rhs)
}

func opDiv(ctx OpContext, args []value.Value) (value.Value, error) {
	lhs, rhs, err := runBoth(ctx, args)
	if err != nil {
		return nil, err
	}
	d, ok := lhs.(value.Diver)
	if !ok {
		return nil, diagnostics.Type("div is not supported by %T", lhs)
	}
	return d.Div(rhs)
}

func opMod(ctx OpContext, args []value.Value) (value.Value, error) {
	lhs, rhs, err := runBoth(ctx, args)
	if err != nil {
		return nil, err
	}
	m, ok := lhs.(value.Moder)
	if !ok {
		return nil, diagnostics.Type("mod is not supported by %T", lhs)
	}
	return m.Mod(rhs)
}

func opPow(ctx OpContext, args []value.Value) (value.Value, error) {
	lhs, rhs, err := runBoth(ctx, args)
	if err != nil {
		return nil, err
	}
	p, ok := lhs.(value.Power)
	if !ok {
		return nil, diagnostics.Type("pow is not supported by %T", lhs)
	}
	return p.Pow(rhs)
}

func cmp(ctx OpContext, args []value.Value) (int, error) {
	lhs, rhs, err := runBoth(ctx, args)
	if err != nil {
		return 0, err
	}
	c, ok := lhs.(value.Comparer)
	if !ok {
		return 0, diagnostics.Type("cmp is not supported by %T", lhs)
	}
	return c.Cmp(rhs)
}

func opLess(ctx OpContext, args []value.Value) (value.Value, error) {
	c, err := cmp(ctx, args)
	if err != nil {
		return nil, err
	}
	return value.Bool(c < 0), nil
}

func opGreater(ctx OpContext, args []value.Value) (value.Value, error) {
	c, err := cmp(ctx, args)
	if err != nil {
		return nil, err
	}
	return value.Bool(c > 0), nil
}

func opEquals(ctx OpContext, args []value.Value) (value.Value, error) {
	lhs, rhs, err := runBoth(ctx, args)
	if err != nil {
		return nil, err
	}
	e, ok := lhs.(value.Equaler)
	if !ok {
		return nil, diagnostics.Type("equals is not supported by %T", lhs)
	}
	return value.Bool(e.Equals(rhs)), nil
}

// AND runs lhs; if falsey, returns it without touching rhs. Otherwise
// returns the result of running rhs.
func opAnd(ctx OpContext, args []value.Value) (value.Value, error) {
	lhs, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	c, err := value.AsCoercible(lhs)
	if err != nil {
		return nil, err
	}
	truthy, err := c.ToBool()
	if err != nil {
		return nil, err
	}
	if !truthy {
		return lhs, nil
	}
	return ctx.Run(args[1])
}

// OR runs lhs; if truthy, returns it without touching rhs. Otherwise
// returns the result of running rhs.
func opOr(ctx OpContext, args []value.Value) (value.Value, error) {
	lhs, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	c, err := value.AsCoercible(lhs)
	if err != nil {
		return nil, err
	}
	truthy, err := c.ToBool()
	if err != nil {
		return nil, err
	}
	if truthy {
		return lhs, nil
	}
	return ctx.Run(args[1])
}

// THEN runs lhs (discarding its result), then runs and returns rhs.
func opThen(ctx OpContext, args []value.Value) (value.Value, error) {
	if _, err := ctx.Run(args[0]); err != nil {
		return nil, err
	}
	return ctx.Run(args[1])
}

// WHILE repeatedly Boolean-coerces a fresh run of the condition, running
// the body while true. Always returns Null.
func opWhile(ctx OpContext, args []value.Value) (value.Value, error) {
	for {
		cond, err := ctx.Run(args[0])
		if err != nil {
			return nil, err
		}
		c, err := value.AsCoercible(cond)
		if err != nil {
			return nil, err
		}
		truthy, err := c.ToBool()
		if err != nil {
			return nil, err
		}
		if !truthy {
			return value.TheNull, nil
		}
		if _, err := ctx.Run(args[1]); err != nil {
			return nil, err
		}
	}
}

// ASSIGN resolves the target Identifier (running and String-coercing lhs
// first if it is not itself an Identifier), runs rhs, binds it, and
// returns the assigned value.
func opAssign(ctx OpContext, args []value.Value) (value.Value, error) {
	target, ok := args[0].(*value.Identifier)
	if !ok {
		run, err := ctx.Run(args[0])
		if err != nil {
			return nil, err
		}
		c, err := value.AsCoercible(run)
		if err != nil {
			return nil, err
		}
		name, err := c.ToString()
		if err != nil {
			return nil, err
		}
		target = ctx.Env().Lookup(name)
	}
	rhs, err := ctx.Run(args[1])
	if err != nil {
		return nil, err
	}
	target.Bind(rhs)
	return rhs, nil
}
