package kenv

import "testing"

func TestLookupInterns(t *testing.T) {
	e := New()
	a := e.Lookup("x")
	b := e.Lookup("x")
	if a != b {
		t.Fatalf("expected identical pointer for repeated lookup of same name")
	}
}

func TestLookupDistinctNames(t *testing.T) {
	e := New()
	a := e.Lookup("x")
	b := e.Lookup("y")
	if a == b {
		t.Fatalf("expected distinct pointers for distinct names")
	}
}

func TestLookupStartsUnbound(t *testing.T) {
	e := New()
	id := e.Lookup("x")
	if _, bound := id.Binding(); bound {
		t.Fatalf("freshly interned identifier should be unbound")
	}
}

func TestBindPersistsAcrossLookups(t *testing.T) {
	e := New()
	id := e.Lookup("x")
	id.Bind(nil)
	again := e.Lookup("x")
	if _, bound := again.Binding(); !bound {
		t.Fatalf("binding should be visible through a later lookup of the same name")
	}
}

func TestReset(t *testing.T) {
	e := New()
	first := e.Lookup("x")
	e.Reset()
	second := e.Lookup("x")
	if first == second {
		t.Fatalf("expected a fresh identifier after Reset")
	}
	if e.Len() != 1 {
		t.Fatalf("expected exactly one interned name after Reset+Lookup, got %d", e.Len())
	}
}
