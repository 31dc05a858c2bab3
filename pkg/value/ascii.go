package value

import "github.com/knight-lang/knight-go/pkg/diagnostics"

// Ascii returns a one-character Str whose byte is v's low 8 bits. Masking
// (rather than erroring on negative integers) keeps the operation total
// over the whole Integer domain, resolving spec §9's open question.
func (v Integer) Ascii() (Value, error) {
	b := byte(int64(v) & 0xFF)
	return Str(string([]byte{b})), nil
}

// Ascii returns the first byte's value as an Integer; empty strings error.
func (v Str) Ascii() (Value, error) {
	if len(v) == 0 {
		return nil, diagnostics.Domain("ascii of empty string")
	}
	return Integer(v[0]), nil
}
