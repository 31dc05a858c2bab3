// Package formatter re-renders a parsed Knight value tree back to source
// text, for `knight fmt`. Grounded on the teacher's pkg/formatter.Format,
// generalized from A0's statement/expression AST to Knight's single value
// tree (which, per spec.md §2, doubles as the program's AST).
package formatter

import (
	"strconv"
	"strings"

	"github.com/knight-lang/knight-go/pkg/value"
)

// Format renders v as Knight source. It round-trips everything a parsed
// program can contain: literals, identifiers, and function nodes. A
// non-empty List cannot appear in source (Knight's only list literal is
// the empty `@`; every other List is a runtime result), so Format falls
// back to its dump form for that case, clearly out of band from valid
// source syntax.
func Format(v value.Value) string {
	var b strings.Builder
	format(&b, v)
	return b.String()
}

func format(b *strings.Builder, v value.Value) {
	switch t := v.(type) {
	case value.Integer:
		b.WriteString(strconv.FormatInt(int64(t), 10))
	case value.Str:
		formatString(b, string(t))
	case value.Bool:
		if bool(t) {
			b.WriteByte('T')
		} else {
			b.WriteByte('F')
		}
	case value.Null:
		b.WriteByte('N')
	case *value.List:
		if t.Len() == 0 {
			b.WriteByte('@')
			return
		}
		b.WriteString(t.Dump())
	case *value.Identifier:
		b.WriteString(t.Name)
	case *value.Function:
		formatFunction(b, t)
	default:
		b.WriteByte('?')
	}
}

func formatString(b *strings.Builder, s string) {
	quote := byte('"')
	if strings.Contains(s, `"`) && !strings.Contains(s, "'") {
		quote = '\''
	}
	b.WriteByte(quote)
	b.WriteString(s)
	b.WriteByte(quote)
}

func formatFunction(b *strings.Builder, f *value.Function) {
	b.WriteByte(f.Opcode)
	for _, arg := range f.Args {
		b.WriteByte(' ')
		format(b, arg)
	}
}
