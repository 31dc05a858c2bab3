package value

import "strings"

// List is an immutable ordered sequence of Values. Every operation that
// appears to modify a list returns a fresh List, per Invariant 3.
type List struct {
	items []Value
}

func (*List) isValue() {}

// NewList builds a List from items. The caller must not mutate items after
// passing it in; NewList takes ownership of the slice.
func NewList(items []Value) *List {
	return &List{items: items}
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// At returns the element at index i.
func (l *List) At(i int) Value { return l.items[i] }

// Items returns the underlying elements; callers must treat it as
// read-only.
func (l *List) Items() []Value { return l.items }

// Slice returns a fresh List holding items[start:start+length].
func (l *List) Slice(start, length int) *List {
	out := make([]Value, length)
	copy(out, l.items[start:start+length])
	return NewList(out)
}

// Concat returns a fresh List holding l's elements followed by other's.
func (l *List) Concat(other *List) *List {
	out := make([]Value, 0, l.Len()+other.Len())
	out = append(out, l.items...)
	out = append(out, other.items...)
	return NewList(out)
}

func (l *List) ToInteger() (int64, error) { return int64(len(l.items)), nil }
func (l *List) ToBool() (bool, error)     { return len(l.items) != 0, nil }
func (l *List) ToList() (*List, error)    { return l, nil }

// ToString joins the elements with "\n", each coerced to String. A list
// element is not guaranteed to be inert — `, BLOCK + 1 2` boxes an
// unevaluated Function node — so coercion here goes through AsCoercible and
// can fail with a TypeError rather than panicking.
func (l *List) ToString() (string, error) {
	parts := make([]string, len(l.items))
	for i, it := range l.items {
		c, err := AsCoercible(it)
		if err != nil {
			return "", err
		}
		s, err := c.ToString()
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, "\n"), nil
}

// Dump renders every element via Dumper, which all seven kinds implement, so
// this cannot fail the way ToString can.
func (l *List) Dump() string {
	parts := make([]string, len(l.items))
	for i, it := range l.items {
		if d, ok := it.(Dumper); ok {
			parts[i] = d.Dump()
		} else {
			parts[i] = "?"
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) Equals(other Value) bool {
	o, ok := other.(*List)
	if !ok || o.Len() != l.Len() {
		return false
	}
	for i := range l.items {
		eq, ok := l.items[i].(Equaler)
		if !ok || !eq.Equals(o.items[i]) {
			return false
		}
	}
	return true
}
