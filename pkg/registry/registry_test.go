package registry

import "testing"

func TestTableRegistersEveryOpcodeWithExpectedArity(t *testing.T) {
	want := map[byte]int{
		'P': 0, 'R': 0,
		'E': 1, 'B': 1, 'C': 1, '`': 1, 'Q': 1, '!': 1, '~': 1, 'A': 1,
		'L': 1, 'D': 1, 'O': 1, ',': 1, '[': 1, ']': 1,
		'+': 2, '-': 2, '*': 2, '/': 2, '%': 2, '^': 2,
		'<': 2, '>': 2, '?': 2, '&': 2, '|': 2, ';': 2, 'W': 2, '=': 2,
		'I': 3, 'G': 3,
		'S': 4,
	}
	tbl := NewTable()
	for opcode, arity := range want {
		e, ok := tbl.Lookup(opcode)
		if !ok {
			t.Errorf("opcode %q: expected to be registered", string(opcode))
			continue
		}
		if e.Arity != arity {
			t.Errorf("opcode %q: expected arity %d, got %d", string(opcode), arity, e.Arity)
		}
		if e.Op == nil {
			t.Errorf("opcode %q: nil operation", string(opcode))
		}
	}
}

func TestLookupMissReportsFalse(t *testing.T) {
	tbl := NewTable()
	if _, ok := tbl.Lookup('z'); ok {
		t.Fatalf("expected unregistered opcode to miss")
	}
}
