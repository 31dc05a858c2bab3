// Package parser implements spec.md §4.4: parse(stream) strips once, then
// tries each variant's pattern in a fixed order until one succeeds,
// building the value tree that doubles as the evaluator's input. Grounded
// on the teacher's recursive-descent pkg/parser/parser.go structure,
// generalized from A0's statement/expression grammar to Knight's flat
// "one value, fixed arity" grammar.
package parser

import (
	"regexp"
	"strconv"

	"github.com/knight-lang/knight-go/pkg/diagnostics"
	"github.com/knight-lang/knight-go/pkg/kenv"
	"github.com/knight-lang/knight-go/pkg/kstream"
	"github.com/knight-lang/knight-go/pkg/registry"
	"github.com/knight-lang/knight-go/pkg/value"
)

var (
	identifierPattern = regexp.MustCompile(`^[a-z_][a-z_0-9]*`)
	integerPattern     = regexp.MustCompile(`^\d+`)
	doubleQuotePattern = regexp.MustCompile(`^"([^"]*)"`)
	singleQuotePattern = regexp.MustCompile(`^'([^']*)'`)
	boolPattern        = regexp.MustCompile(`^[TF][A-Z]*`)
	nullPattern        = regexp.MustCompile(`^N[A-Z]*`)
	listLiteralPattern = regexp.MustCompile(`^@`)
	wordOpcodePattern  = regexp.MustCompile(`^[A-Z]+`)
	anyCharPattern     = regexp.MustCompile(`(?s)^.`)
)

// Parser holds the two collaborators every parse rule needs beyond the
// stream itself: the environment (for identifier interning) and the
// opcode table (for arity lookups when building Function nodes).
type Parser struct {
	env   *kenv.Environment
	table *registry.Table
}

// New builds a Parser over env and table.
func New(env *kenv.Environment, table *registry.Table) *Parser {
	return &Parser{env: env, table: table}
}

// Parse strips the stream, then dispatches to the first matching variant
// rule. A nil, nil result means the stream held nothing but whitespace and
// comments — an empty program, which is the caller's call on how to treat.
func (p *Parser) Parse(s *kstream.Stream) (value.Value, error) {
	s.Strip()
	if s.Empty() {
		return nil, nil
	}

	if name, ok := s.Match(identifierPattern, 0); ok {
		return p.env.Lookup(name), nil
	}

	if lit, ok := s.Match(integerPattern, 0); ok {
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return nil, diagnostics.Parse("integer literal %q out of range: %v", lit, err)
		}
		return value.Integer(n), nil
	}

	if body, ok := s.Match(doubleQuotePattern, 1); ok {
		return value.Str(body), nil
	}
	if body, ok := s.Match(singleQuotePattern, 1); ok {
		return value.Str(body), nil
	}
	if r := s.Remaining(); len(r) > 0 && (r[0] == '"' || r[0] == '\'') {
		return nil, diagnostics.Parse("unterminated string literal")
	}

	if lit, ok := s.Match(boolPattern, 0); ok {
		return value.Bool(lit[0] == 'T'), nil
	}

	if _, ok := s.Match(nullPattern, 0); ok {
		return value.TheNull, nil
	}

	if _, ok := s.Match(listLiteralPattern, 0); ok {
		return value.NewList(nil), nil
	}

	return p.parseFunction(s)
}

// parseFunction handles the last parse rule: a keyword-spelled opcode
// (a run of uppercase letters, of which only the first matters) or a
// single symbolic character, followed by exactly `arity` recursively
// parsed argument subtrees.
func (p *Parser) parseFunction(s *kstream.Stream) (value.Value, error) {
	var opcode byte
	if word, ok := s.Match(wordOpcodePattern, 0); ok {
		opcode = word[0]
	} else {
		ch, ok := s.Match(anyCharPattern, 0)
		if !ok {
			return nil, nil
		}
		opcode = ch[0]
	}

	entry, ok := p.table.Lookup(opcode)
	if !ok {
		return nil, diagnostics.Parse("unknown function %q", string(opcode)).WithOpcode(string(opcode))
	}

	args := make([]value.Value, entry.Arity)
	for i := 0; i < entry.Arity; i++ {
		arg, err := p.Parse(s)
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, diagnostics.Parse(
				"missing argument %d of %d for function %q", i+1, entry.Arity, string(opcode),
			).WithOpcode(string(opcode))
		}
		args[i] = arg
	}
	return value.NewFunction(opcode, args), nil
}

// ParseProgram parses source as one top-level value against env and table.
// An empty program (nothing but whitespace/comments) is reported as a
// ParseError — the driver and EVAL both need a value back, unlike the bare
// parse(stream) primitive which may legitimately return nothing.
func ParseProgram(source string, env *kenv.Environment, table *registry.Table) (value.Value, error) {
	s := kstream.New(source)
	p := New(env, table)
	v, err := p.Parse(s)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, diagnostics.Parse("empty program")
	}
	return v, nil
}
