package help

import "testing"

func TestLookupByOpcode(t *testing.T) {
	e, err := Lookup("+")
	if err != nil {
		t.Fatal(err)
	}
	if e.Name != "add" {
		t.Errorf("got %q", e.Name)
	}
}

func TestLookupByExactName(t *testing.T) {
	e, err := Lookup("output")
	if err != nil {
		t.Fatal(err)
	}
	if e.Opcode != 'O' {
		t.Errorf("got %q", string(e.Opcode))
	}
}

func TestLookupByUnambiguousPrefix(t *testing.T) {
	e, err := Lookup("qu")
	if err != nil {
		t.Fatal(err)
	}
	if e.Opcode != 'Q' {
		t.Errorf("got %q", string(e.Opcode))
	}
}

func TestLookupUnknownErrors(t *testing.T) {
	if _, err := Lookup("bogus"); err == nil {
		t.Fatal("expected an error for an unknown opcode name")
	}
}

func TestEveryEntryHasArityMatchingRegistryConventions(t *testing.T) {
	for _, e := range Entries {
		if e.Arity < 0 || e.Arity > 4 {
			t.Errorf("opcode %q: implausible arity %d", string(e.Opcode), e.Arity)
		}
	}
}

func TestQuickRefMentionsEveryOpcode(t *testing.T) {
	ref := QuickRef()
	for _, e := range Entries {
		if !containsByte(ref, e.Opcode) {
			t.Errorf("QuickRef missing opcode %q", string(e.Opcode))
		}
	}
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}
