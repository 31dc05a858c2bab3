package value

import (
	"strings"

	"github.com/knight-lang/knight-go/pkg/diagnostics"
)

// --- Integer ---

func (v Integer) Add(rhs Value) (Value, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return nil, err
	}
	n, err := c.ToInteger()
	if err != nil {
		return nil, err
	}
	return v + Integer(n), nil
}

func (v Integer) Sub(rhs Value) (Value, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return nil, err
	}
	n, err := c.ToInteger()
	if err != nil {
		return nil, err
	}
	return v - Integer(n), nil
}

func (v Integer) Mul(rhs Value) (Value, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return nil, err
	}
	n, err := c.ToInteger()
	if err != nil {
		return nil, err
	}
	return v * Integer(n), nil
}

func (v Integer) Div(rhs Value) (Value, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return nil, err
	}
	d, err := c.ToInteger()
	if err != nil {
		return nil, err
	}
	if d == 0 {
		return nil, diagnostics.Domain("division by zero")
	}
	return Integer(int64(v) / d), nil
}

func (v Integer) Mod(rhs Value) (Value, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return nil, err
	}
	m, err := c.ToInteger()
	if err != nil {
		return nil, err
	}
	if m == 0 {
		return nil, diagnostics.Domain("modulo by zero")
	}
	return Integer(int64(v) % m), nil
}

// Pow raises v to the rhs-coerced-to-integer power. A negative exponent
// truncates to 0 per spec §4.2.
func (v Integer) Pow(rhs Value) (Value, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return nil, err
	}
	exp, err := c.ToInteger()
	if err != nil {
		return nil, err
	}
	if exp < 0 {
		return Integer(0), nil
	}
	base := int64(v)
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return Integer(result), nil
}

func (v Integer) Cmp(rhs Value) (int, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return 0, err
	}
	n, err := c.ToInteger()
	if err != nil {
		return 0, err
	}
	o := Integer(n)
	switch {
	case v < o:
		return -1, nil
	case v > o:
		return 1, nil
	default:
		return 0, nil
	}
}

// --- Str ---

func (v Str) Add(rhs Value) (Value, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return nil, err
	}
	s, err := c.ToString()
	if err != nil {
		return nil, err
	}
	return v + Str(s), nil
}

func (v Str) Mul(rhs Value) (Value, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return nil, err
	}
	n, err := c.ToInteger()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return Str(""), nil
	}
	out := make([]byte, 0, int64(len(v))*n)
	for i := int64(0); i < n; i++ {
		out = append(out, v...)
	}
	return Str(out), nil
}

func (v Str) Cmp(rhs Value) (int, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return 0, err
	}
	o, err := c.ToString()
	if err != nil {
		return 0, err
	}
	switch {
	case string(v) < o:
		return -1, nil
	case string(v) > o:
		return 1, nil
	default:
		return 0, nil
	}
}

// --- Bool ---

func (v Bool) Cmp(rhs Value) (int, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return 0, err
	}
	o, err := c.ToBool()
	if err != nil {
		return 0, err
	}
	b := bool(v)
	switch {
	case b == o:
		return 0, nil
	case !b && o:
		return -1, nil
	default:
		return 1, nil
	}
}

// --- List ---

func (l *List) Add(rhs Value) (Value, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return nil, err
	}
	other, err := c.ToList()
	if err != nil {
		return nil, err
	}
	return l.Concat(other), nil
}

func (l *List) Mul(rhs Value) (Value, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return nil, err
	}
	n, err := c.ToInteger()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return NewList(nil), nil
	}
	out := make([]Value, 0, int64(l.Len())*n)
	for i := int64(0); i < n; i++ {
		out = append(out, l.items...)
	}
	return NewList(out), nil
}

// Pow joins the list's elements (each coerced to String) using rhs coerced
// to String as the separator.
func (l *List) Pow(rhs Value) (Value, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return nil, err
	}
	sep, err := c.ToString()
	if err != nil {
		return nil, err
	}
	parts := make([]string, l.Len())
	for i, it := range l.items {
		ic, err := AsCoercible(it)
		if err != nil {
			return nil, err
		}
		s, err := ic.ToString()
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	return Str(strings.Join(parts, sep)), nil
}

func (l *List) Cmp(rhs Value) (int, error) {
	c, err := AsCoercible(rhs)
	if err != nil {
		return 0, err
	}
	o, err := c.ToList()
	if err != nil {
		return 0, err
	}
	n := l.Len()
	if o.Len() < n {
		n = o.Len()
	}
	for i := 0; i < n; i++ {
		cmp, err := cmpAny(l.items[i], o.items[i])
		if err != nil {
			return 0, err
		}
		if cmp != 0 {
			return cmp, nil
		}
	}
	switch {
	case l.Len() < o.Len():
		return -1, nil
	case l.Len() > o.Len():
		return 1, nil
	default:
		return 0, nil
	}
}

// cmpAny compares two already-run values of the same kind (the lhs's),
// coercing rhs to lhs's kind first, matching Cmp's contract for scalar
// kinds so List.Cmp can recurse elementwise.
func cmpAny(a, b Value) (int, error) {
	cmp, ok := a.(Comparer)
	if !ok {
		return 0, diagnostics.Type("elements of kind %T do not support comparison", a)
	}
	return cmp.Cmp(b)
}
