// Package value implements the Knight value model: a closed sum of seven
// kinds (Integer, String, Boolean, Null, List, Identifier, Function node),
// each implementing a fixed capability set per spec §3/§4.2. This models
// the teacher's base-class-polymorphism-turned-sealed-interface approach
// (see pkg/evaluator/value.go in the teacher) as a closed sum type: every
// operation is an exhaustive case analysis over a small, fixed set of
// concrete types, and a variant that does not implement a given capability
// interface produces a TypeError at the call site.
package value

import "github.com/knight-lang/knight-go/pkg/diagnostics"

// Value is the sealed interface every Knight value implements. The
// unexported marker method restricts implementations to this package,
// closing the sum over exactly the seven variants in spec §3.
type Value interface {
	isValue()
}

// Dumper is implemented by every variant; it produces the representation
// spec §6 specifies for Integer, String, Boolean, Null, and List, and a
// best-effort rendering for the two active variants (which DUMP only ever
// observes after they have already been run once).
type Dumper interface {
	Value
	Dump() string
}

// Equaler is implemented by every variant. Integer/String/Boolean/Null/List
// compare structurally; Identifier and Function nodes compare by identity,
// per spec §4.2.
type Equaler interface {
	Value
	Equals(other Value) bool
}

// Coercible is implemented by the five inert variants. Coercion among
// Integer/String/Boolean is genuinely total per spec §3, but List is not:
// a List may hold active (Identifier/Function) elements — e.g. `, BLOCK +
// 1 2` boxes an unevaluated Function node — and coercing such a list to
// String must fail with a TypeError rather than panic, so every method
// here returns an error. Identifier and Function
// nodes deliberately do not implement Coercible — per spec §9's design
// note, coercing an active value means running it first and coercing the
// (inert) result, which the evaluator package does by calling Run before
// ever reaching these methods.
type Coercible interface {
	Value
	ToInteger() (int64, error)
	ToBool() (bool, error)
	ToString() (string, error)
	ToList() (*List, error)
}

// Integer is a signed machine integer (spec requires at least 64 bits).
type Integer int64

func (Integer) isValue() {}

// Str is an immutable byte sequence.
type Str string

func (Str) isValue() {}

// Bool is a boolean value.
type Bool bool

func (Bool) isValue() {}

// Null is the singleton null value.
type Null struct{}

func (Null) isValue() {}

// TheNull is the one Null instance; Null carries no state so any zero value
// works equally well, but a shared instance avoids needless allocation.
var TheNull = Null{}

// AsCoercible safely narrows v to Coercible, turning a failed assertion
// into a TypeError instead of a panic. Every arithmetic/comparison/
// container method in this package uses this instead of a bare assertion
// when it needs to coerce an operand, since operands reaching these
// methods are always supposed to be already-run (and hence ordinarily
// Coercible) values, but a BLOCK-produced Function node can still surface
// here and must fail gracefully per spec §4.2.
func AsCoercible(v Value) (Coercible, error) {
	c, ok := v.(Coercible)
	if !ok {
		return nil, diagnostics.Type("value of kind %T cannot be coerced", v)
	}
	return c, nil
}

