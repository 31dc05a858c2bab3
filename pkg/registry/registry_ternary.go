package registry

import (
	"github.com/knight-lang/knight-go/pkg/diagnostics"
	"github.com/knight-lang/knight-go/pkg/value"
)

// registerTernary also registers SET, which spec.md's table groups under
// "Ternary" by section but is itself 4-ary (container plus start, length,
// replacement).
func registerTernary(t *Table) {
	t.register('I', 3, opIf)
	t.register('G', 3, opGet)
	t.register('S', 4, opSet)
}

// IF runs the condition, Boolean-coerces it, and runs (only) the selected
// branch.
func opIf(ctx OpContext, args []value.Value) (value.Value, error) {
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
	if truthy {
		return ctx.Run(args[1])
	}
	return ctx.Run(args[2])
}

func runIndices(ctx OpContext, startArg, lengthArg value.Value) (int, int, error) {
	startV, err := ctx.Run(startArg)
	if err != nil {
		return 0, 0, err
	}
	sc, err := value.AsCoercible(startV)
	if err != nil {
		return 0, 0, err
	}
	start, err := sc.ToInteger()
	if err != nil {
		return 0, 0, err
	}

	lengthV, err := ctx.Run(lengthArg)
	if err != nil {
		return 0, 0, err
	}
	lc, err := value.AsCoercible(lengthV)
	if err != nil {
		return 0, 0, err
	}
	length, err := lc.ToInteger()
	if err != nil {
		return 0, 0, err
	}
	if start < 0 || length < 0 {
		return 0, 0, diagnostics.Domain("negative start or length: %d, %d", start, length)
	}
	return int(start), int(length), nil
}

// GET runs all three arguments, then dispatches to the container's Get.
func opGet(ctx OpContext, args []value.Value) (value.Value, error) {
	recv, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	start, length, err := runIndices(ctx, args[1], args[2])
	if err != nil {
		return nil, err
	}
	c, ok := recv.(value.Container)
	if !ok {
		return nil, diagnostics.Type("get is not supported by %T", recv)
	}
	return c.Get(start, length)
}

// SET runs all four arguments, then dispatches to the container's Set.
func opSet(ctx OpContext, args []value.Value) (value.Value, error) {
	recv, err := ctx.Run(args[0])
	if err != nil {
		return nil, err
	}
	start, length, err := runIndices(ctx, args[1], args[2])
	if err != nil {
		return nil, err
	}
	repl, err := ctx.Run(args[3])
	if err != nil {
		return nil, err
	}
	c, ok := recv.(value.Container)
	if !ok {
		return nil, diagnostics.Type("set is not supported by %T", recv)
	}
	return c.Set(start, length, repl)
}
