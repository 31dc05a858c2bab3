package value

// Identifier is a name bound in the global environment. Per spec §3's
// Invariant 1, every textual occurrence of a name shares one Identifier
// node (interning is pkg/kenv's job); this type just owns the mutable
// binding cell that ASSIGN writes and evaluation reads.
type Identifier struct {
	Name  string
	bound bool
	value Value
}

func (*Identifier) isValue() {}

// NewIdentifier creates an unbound Identifier node for name. Callers
// outside pkg/kenv should not normally call this directly — interning
// requires going through the environment so that two occurrences of the
// same name share one node.
func NewIdentifier(name string) *Identifier {
	return &Identifier{Name: name}
}

// Binding returns the identifier's current value and whether it is bound.
func (id *Identifier) Binding() (Value, bool) {
	return id.value, id.bound
}

// Bind assigns v as the identifier's current value.
func (id *Identifier) Bind(v Value) {
	id.value = v
	id.bound = true
}

// Equals uses identity equality, per spec §4.2.
func (id *Identifier) Equals(other Value) bool {
	o, ok := other.(*Identifier)
	return ok && o == id
}

// Dump has no representation specified by spec §6. DUMP runs its argument
// first, so a raw Identifier only reaches here when BLOCK hands one back
// unevaluated (e.g. `DUMP BLOCK x`); this rendering prints the name.
func (id *Identifier) Dump() string {
	return id.Name
}
