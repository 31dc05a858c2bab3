package value

import "strconv"

// Function is an opcode character plus a fixed-length array of argument
// subtrees, each itself any Value variant (spec §3). It is immutable after
// construction (Invariant 2); evaluating its opcode and running its
// arguments is pkg/registry and pkg/evaluator's job, not this package's —
// Function here is pure data, matching the closed-sum design note.
type Function struct {
	Opcode byte
	Args   []Value
}

func (*Function) isValue() {}

// NewFunction builds a Function node. args is not copied; the parser must
// not mutate it afterward.
func NewFunction(opcode byte, args []Value) *Function {
	return &Function{Opcode: opcode, Args: args}
}

// Equals uses identity equality, per spec §4.2.
func (f *Function) Equals(other Value) bool {
	o, ok := other.(*Function)
	return ok && o == f
}

// Dump has no representation specified by spec §6 (DUMP always runs its
// argument first); BLOCK can hand back an unevaluated Function node, so
// DUMPing one is reachable in practice (e.g. `DUMP BLOCK + 1 2`). This
// rendering is a reasonable, stable approximation of the source form.
func (f *Function) Dump() string {
	out := "<block " + string(f.Opcode)
	for _, a := range f.Args {
		out += " "
		if d, ok := a.(Dumper); ok {
			out += d.Dump()
		} else {
			out += "?"
		}
	}
	return out + ">"
}

// OpcodeName renders the opcode for diagnostics, quoting non-printable
// bytes.
func (f *Function) OpcodeName() string {
	if f.Opcode >= 0x20 && f.Opcode < 0x7f {
		return string(f.Opcode)
	}
	return "0x" + strconv.FormatUint(uint64(f.Opcode), 16)
}
