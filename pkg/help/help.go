// Package help holds the opcode reference `knight help` prints, grounded
// on the teacher's pkg/help (a QUICKREF constant plus a name-indexed lookup
// with prefix matching — see help_test.go in the teacher, whose topics map
// here becomes one entry per Knight opcode instead of one per A0 subsystem).
package help

import (
	"sort"
	"strings"

	"github.com/knight-lang/knight-go/pkg/diagnostics"
)

// Entry documents one opcode: its canonical keyword name, arity, and a
// one-line description of its semantics.
type Entry struct {
	Opcode byte
	Name   string
	Arity  int
	Doc    string
}

// Entries is the full opcode reference, spec.md §4.5 in tabular form.
var Entries = []Entry{
	{'P', "prompt", 0, "read a line from stdin, trimming one trailing CR/LF; EOF yields Null"},
	{'R', "random", 0, "a uniform Integer in [0, 2^32)"},
	{'E', "eval", 1, "parse and run a String-coerced argument as a fresh program"},
	{'B', "block", 1, "return the argument unevaluated"},
	{'C', "call", 1, "run the argument, then run the result again"},
	{'`', "shell", 1, "run the argument as a shell command, return captured stdout"},
	{'Q', "quit", 1, "terminate the process with the Integer-coerced argument as exit code"},
	{'!', "not", 1, "Boolean negation"},
	{'~', "neg", 1, "arithmetic negation"},
	{'A', "ascii", 1, "Integer -> one-character String, or String -> first byte's Integer"},
	{'L', "length", 1, "List-coerce, then return the Integer length"},
	{'D', "dump", 1, "run the argument, write its dump form to stdout, return it"},
	{'O', "output", 1, "run and String-coerce the argument and write it to stdout"},
	{',', "box", 1, "run the argument and wrap it in a one-element List"},
	{'[', "head", 1, "first element/character; error on empty"},
	{']', "tail", 1, "all but the first element/character; error on empty"},
	{'+', "add", 2, "Integer addition, String concatenation, or List concatenation"},
	{'-', "sub", 2, "Integer subtraction"},
	{'*', "mul", 2, "Integer multiplication, or String/List repetition"},
	{'/', "div", 2, "Integer truncating division"},
	{'%', "mod", 2, "Integer truncating modulo"},
	{'^', "pow", 2, "Integer exponentiation, or List join with a String separator"},
	{'<', "lt", 2, "strict less-than, coercing rhs to lhs's kind"},
	{'>', "gt", 2, "strict greater-than, coercing rhs to lhs's kind"},
	{'?', "eql", 2, "structural equality"},
	{'&', "and", 2, "run lhs; if falsey return it, else run and return rhs"},
	{'|', "or", 2, "run lhs; if truthy return it, else run and return rhs"},
	{';', "then", 2, "run lhs (discarded), then run and return rhs"},
	{'W', "while", 2, "run the body while the Boolean-coerced condition holds; returns Null"},
	{'=', "assign", 2, "bind rhs to the lhs Identifier (stringifying lhs first if needed)"},
	{'I', "if", 3, "run and return the then- or else-branch, by the Boolean-coerced condition"},
	{'G', "get", 3, "substring/subsequence starting at start, of length length"},
	{'S', "set", 4, "replace [start, start+length) with the replacement"},
}

var byOpcode = make(map[byte]*Entry, len(Entries))
var byName = make(map[string]*Entry, len(Entries))

func init() {
	for i := range Entries {
		e := &Entries[i]
		byOpcode[e.Opcode] = e
		byName[e.Name] = e
	}
}

// Lookup resolves query to its Entry: a single character matches by
// opcode, anything longer matches a name exactly or by unambiguous prefix.
func Lookup(query string) (*Entry, error) {
	if len(query) == 1 {
		if e, ok := byOpcode[query[0]]; ok {
			return e, nil
		}
	}
	name := strings.ToLower(query)
	if e, ok := byName[name]; ok {
		return e, nil
	}
	var matches []*Entry
	for n, e := range byName {
		if strings.HasPrefix(n, name) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, diagnostics.New("E_HELP", "no opcode matches "+query)
	default:
		return nil, diagnostics.New("E_HELP", "ambiguous opcode prefix "+query)
	}
}

// QuickRef renders the full opcode table as one line per entry, sorted by
// name, the form `knight help` prints with no argument.
func QuickRef() string {
	sorted := make([]Entry, len(Entries))
	copy(sorted, Entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var b strings.Builder
	b.WriteString("Knight opcode reference\n")
	for _, e := range sorted {
		b.WriteString(formatLine(e))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatLine(e Entry) string {
	return "  " + string(e.Opcode) + "  " + padName(e.Name) + "(" + arityLabel(e.Arity) + ")  " + e.Doc
}

func padName(name string) string {
	const width = 8
	if len(name) >= width {
		return name + " "
	}
	return name + strings.Repeat(" ", width-len(name))
}

func arityLabel(n int) string {
	switch n {
	case 0:
		return "nullary"
	case 1:
		return "unary"
	case 2:
		return "binary"
	case 3:
		return "ternary"
	default:
		return "quaternary"
	}
}
