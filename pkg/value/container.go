package value

import "github.com/knight-lang/knight-go/pkg/diagnostics"

// --- Str ---

func (v Str) Head() (Value, error) {
	if len(v) == 0 {
		return nil, diagnostics.Domain("head of empty string")
	}
	return v[:1], nil
}

func (v Str) Tail() (Value, error) {
	if len(v) == 0 {
		return nil, diagnostics.Domain("tail of empty string")
	}
	return v[1:], nil
}

func (v Str) Get(start, length int) (Value, error) {
	s := string(v)
	start, end := clampRange(start, length, len(s))
	return Str(s[start:end]), nil
}

// Set returns a fresh Str whose prefix is [0,start), middle is replacement
// coerced to String, and suffix is [start+length, end). start beyond the
// string's length clamps to append, per spec §4.2.
func (v Str) Set(start, length int, replacement Value) (Value, error) {
	c, err := AsCoercible(replacement)
	if err != nil {
		return nil, err
	}
	repl, err := c.ToString()
	if err != nil {
		return nil, err
	}
	s := string(v)
	start, end := clampRange(start, length, len(s))
	return Str(s[:start] + repl + s[end:]), nil
}

// --- List ---

func (l *List) Head() (Value, error) {
	if l.Len() == 0 {
		return nil, diagnostics.Domain("head of empty list")
	}
	return l.items[0], nil
}

func (l *List) Tail() (Value, error) {
	if l.Len() == 0 {
		return nil, diagnostics.Domain("tail of empty list")
	}
	return l.Slice(1, l.Len()-1), nil
}

func (l *List) Get(start, length int) (Value, error) {
	start, end := clampRange(start, length, l.Len())
	return l.Slice(start, end-start), nil
}

func (l *List) Set(start, length int, replacement Value) (Value, error) {
	c, err := AsCoercible(replacement)
	if err != nil {
		return nil, err
	}
	repl, err := c.ToList()
	if err != nil {
		return nil, err
	}
	start, end := clampRange(start, length, l.Len())
	out := make([]Value, 0, start+repl.Len()+l.Len()-end)
	out = append(out, l.items[:start]...)
	out = append(out, repl.items...)
	out = append(out, l.items[end:]...)
	return NewList(out), nil
}

// clampRange turns a non-negative (start, length) pair into a [start, end)
// slice bound within [0, size], clamping start>size (or start+length
// overflowing size) to an append at the end, per spec §4.2's "start >
// length ... clamps to append". Negative inputs are not clamped; GET and SET
// reject them with a DomainError before reaching here.
func clampRange(start, length, size int) (int, int) {
	if start > size {
		start = size
	}
	end := start + length
	if end > size {
		end = size
	}
	return start, end
}
