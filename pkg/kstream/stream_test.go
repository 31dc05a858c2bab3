package kstream

import (
	"regexp"
	"testing"
)

func TestStripSkipsWhitespaceParensColonComments(t *testing.T) {
	s := New("  ( : # comment\n  OUTPUT)")
	s.Strip()
	if got := s.Remaining(); got != "OUTPUT)" {
		t.Fatalf("got %q", got)
	}
}

func TestStripToEndOfInputComment(t *testing.T) {
	s := New("# trailing, no newline")
	s.Strip()
	if !s.Empty() {
		t.Fatalf("expected empty, got %q", s.Remaining())
	}
}

var identPattern = regexp.MustCompile(`\A[a-z_][a-z_0-9]*`)

func TestMatchAdvancesOnSuccess(t *testing.T) {
	s := New("abc_123 rest")
	got, ok := s.Match(identPattern, 0)
	if !ok || got != "abc_123" {
		t.Fatalf("got %q, %v", got, ok)
	}
	if s.Remaining() != " rest" {
		t.Fatalf("remaining %q", s.Remaining())
	}
}

func TestMatchLeavesStreamUnchangedOnFailure(t *testing.T) {
	s := New("123abc")
	_, ok := s.Match(identPattern, 0)
	if ok {
		t.Fatal("expected no match")
	}
	if s.Remaining() != "123abc" {
		t.Fatalf("stream mutated on failed match: %q", s.Remaining())
	}
}

func TestMatchCaptureGroup(t *testing.T) {
	strPattern := regexp.MustCompile(`\A"([^"]*)"`)
	s := New(`"hello" world`)
	got, ok := s.Match(strPattern, 1)
	if !ok || got != "hello" {
		t.Fatalf("got %q, %v", got, ok)
	}
	if s.Remaining() != " world" {
		t.Fatalf("remaining %q", s.Remaining())
	}
}
