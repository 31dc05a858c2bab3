package parser

import (
	"testing"

	"github.com/knight-lang/knight-go/pkg/diagnostics"
	"github.com/knight-lang/knight-go/pkg/kenv"
	"github.com/knight-lang/knight-go/pkg/kstream"
	"github.com/knight-lang/knight-go/pkg/registry"
	"github.com/knight-lang/knight-go/pkg/value"
)

func newParser() *Parser {
	return New(kenv.New(), registry.NewTable())
}

func TestParseInteger(t *testing.T) {
	p := newParser()
	v, err := p.Parse(kstream.New("123"))
	if err != nil {
		t.Fatal(err)
	}
	if v != value.Integer(123) {
		t.Fatalf("expected Integer(123), got %#v", v)
	}
}

func TestParseStringDoubleAndSingleQuoted(t *testing.T) {
	p := newParser()
	v, err := p.Parse(kstream.New(`"hello"`))
	if err != nil {
		t.Fatal(err)
	}
	if v != value.Str("hello") {
		t.Fatalf("expected Str(hello), got %#v", v)
	}
	v, err = p.Parse(kstream.New(`'world'`))
	if err != nil {
		t.Fatal(err)
	}
	if v != value.Str("world") {
		t.Fatalf("expected Str(world), got %#v", v)
	}
}

func TestParseUnterminatedStringErrors(t *testing.T) {
	p := newParser()
	_, err := p.Parse(kstream.New(`"unterminated`))
	if err == nil {
		t.Fatal("expected an error")
	}
	d, ok := err.(*diagnostics.Diagnostic)
	if !ok || d.Code != diagnostics.EParse {
		t.Fatalf("expected a ParseError, got %v", err)
	}
}

func TestParseBooleanKeywordSpellings(t *testing.T) {
	p := newParser()
	for _, src := range []string{"T", "TRU", "TRUE"} {
		v, err := p.Parse(kstream.New(src))
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if v != value.Bool(true) {
			t.Fatalf("%q: expected true, got %#v", src, v)
		}
	}
	for _, src := range []string{"F", "FALSE"} {
		v, err := p.Parse(kstream.New(src))
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if v != value.Bool(false) {
			t.Fatalf("%q: expected false, got %#v", src, v)
		}
	}
}

func TestParseNullKeywordSpellings(t *testing.T) {
	p := newParser()
	for _, src := range []string{"N", "NULL"} {
		v, err := p.Parse(kstream.New(src))
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if _, ok := v.(value.Null); !ok {
			t.Fatalf("%q: expected Null, got %#v", src, v)
		}
	}
}

func TestParseListLiteralIsEmpty(t *testing.T) {
	p := newParser()
	v, err := p.Parse(kstream.New("@"))
	if err != nil {
		t.Fatal(err)
	}
	l, ok := v.(*value.List)
	if !ok || l.Len() != 0 {
		t.Fatalf("expected an empty list, got %#v", v)
	}
}

func TestParseIdentifierIsInterned(t *testing.T) {
	env := kenv.New()
	p := New(env, registry.NewTable())
	a, err := p.Parse(kstream.New("foo"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Parse(kstream.New("foo"))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("expected pointer-equal identifiers for repeated name")
	}
}

func TestParseFunctionKeywordSpellingDiscardsExtraLetters(t *testing.T) {
	p := newParser()
	v, err := p.Parse(kstream.New("OUTPUT 1"))
	if err != nil {
		t.Fatal(err)
	}
	fn, ok := v.(*value.Function)
	if !ok || fn.Opcode != 'O' {
		t.Fatalf("expected a Function with opcode O, got %#v", v)
	}
}

func TestParseFunctionSymbolicOpcode(t *testing.T) {
	p := newParser()
	v, err := p.Parse(kstream.New("+ 1 2"))
	if err != nil {
		t.Fatal(err)
	}
	fn, ok := v.(*value.Function)
	if !ok || fn.Opcode != '+' || len(fn.Args) != 2 {
		t.Fatalf("expected a binary + Function, got %#v", v)
	}
}

func TestParseUnknownOpcodeErrors(t *testing.T) {
	p := newParser()
	_, err := p.Parse(kstream.New("ZZZ"))
	if err == nil {
		t.Fatal("expected an error for unknown opcode")
	}
}

func TestParseMissingArgumentErrors(t *testing.T) {
	p := newParser()
	_, err := p.Parse(kstream.New("+"))
	if err == nil {
		t.Fatal("expected an error for missing argument")
	}
}

func TestParseWhitespaceAndParensAndColonAreSkipped(t *testing.T) {
	p := newParser()
	v, err := p.Parse(kstream.New("  (  : + 1 2 )  "))
	if err != nil {
		t.Fatal(err)
	}
	fn, ok := v.(*value.Function)
	if !ok || fn.Opcode != '+' {
		t.Fatalf("expected a + Function, got %#v", v)
	}
}

func TestParseEmptyProgramErrors(t *testing.T) {
	_, err := ParseProgram("  # nothing but a comment\n", kenv.New(), registry.NewTable())
	if err == nil {
		t.Fatal("expected an error for an empty program")
	}
}
