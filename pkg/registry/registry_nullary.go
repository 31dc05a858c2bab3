package registry

import "github.com/knight-lang/knight-go/pkg/value"

func registerNullary(t *Table) {
	t.register('P', 0, opPrompt)
	t.register('R', 0, opRandom)
}

// PROMPT reads one line from standard input, stripping at most one trailing
// CR and/or LF. End-of-input returns Null rather than erroring.
func opPrompt(ctx OpContext, args []value.Value) (value.Value, error) {
	line, ok, err := ctx.ReadLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return value.TheNull, nil
	}
	return value.Str(line), nil
}

// RANDOM returns a uniform Integer in [0, 2^32).
func opRandom(ctx OpContext, args []value.Value) (value.Value, error) {
	return value.Integer(ctx.Rand()), nil
}
