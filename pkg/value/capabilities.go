package value

// These narrower interfaces are the per-variant capability set from spec
// §4.2: arithmetic and container operations are only defined on some
// variants. A registry operation type-asserts the receiver against the
// interface it needs and turns a failed assertion into a TypeError — the
// Go-idiomatic rendering of "an operation invoked on a variant that does
// not support it is a runtime error."
//
// Every method here receives already-run arguments: per spec §4.5, the
// opcode runs its operands before invoking these methods, so "rhs" is
// ordinarily one of the five Coercible kinds. A BLOCK-produced Function or
// Identifier can still arrive as rhs, so cross-type coercion (e.g. coercing
// a List rhs to Integer for Sub) goes through AsCoercible, which turns that
// case into a TypeError.

// Adder supports `add`: Integer addition, String concatenation, List
// concatenation.
type Adder interface {
	Value
	Add(rhs Value) (Value, error)
}

// Subber supports `sub`: Integer subtraction only.
type Subber interface {
	Value
	Sub(rhs Value) (Value, error)
}

// Muler supports `mul`: Integer multiplication, String/List repetition.
type Muler interface {
	Value
	Mul(rhs Value) (Value, error)
}

// Diver supports `div`: Integer truncating division only.
type Diver interface {
	Value
	Div(rhs Value) (Value, error)
}

// Moder supports `mod`: Integer truncating modulo only.
type Moder interface {
	Value
	Mod(rhs Value) (Value, error)
}

// Power supports `pow`: Integer exponentiation, List join.
type Power interface {
	Value
	Pow(rhs Value) (Value, error)
}

// Comparer supports `cmp`: a total order within a kind. Implementations
// coerce rhs to their own kind before comparing.
type Comparer interface {
	Value
	Cmp(rhs Value) (int, error)
}

// Container supports `head`/`tail`/`get`/`set`: String and List only.
type Container interface {
	Value
	Head() (Value, error)
	Tail() (Value, error)
	Get(start, length int) (Value, error)
	Set(start, length int, replacement Value) (Value, error)
}

// Asciier supports `ascii`: Integer <-> one-character String.
type Asciier interface {
	Value
	Ascii() (Value, error)
}
