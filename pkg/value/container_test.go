package value

import "testing"

func TestStrHeadTail(t *testing.T) {
	s := Str("abc")
	h, err := s.Head()
	if err != nil || h != Str("a") {
		t.Fatalf("Head: got %#v, %v", h, err)
	}
	tl, err := s.Tail()
	if err != nil || tl != Str("bc") {
		t.Fatalf("Tail: got %#v, %v", tl, err)
	}
}

func TestStrHeadTailOnEmptyErrors(t *testing.T) {
	if _, err := Str("").Head(); err == nil {
		t.Error("expected Head of empty string to error")
	}
	if _, err := Str("").Tail(); err == nil {
		t.Error("expected Tail of empty string to error")
	}
}

func TestStrGet(t *testing.T) {
	v, err := Str("abcdef").Get(1, 3)
	if err != nil || v != Str("bcd") {
		t.Fatalf("got %#v, %v", v, err)
	}
}

func TestStrSetReplacesRange(t *testing.T) {
	v, err := Str("abcdef").Set(1, 3, Str("XY"))
	if err != nil {
		t.Fatal(err)
	}
	if v != Str("aXYef") {
		t.Fatalf("got %#v", v)
	}
}

func TestStrSetStartBeyondLengthAppends(t *testing.T) {
	v, err := Str("abc").Set(10, 5, Str("Z"))
	if err != nil {
		t.Fatal(err)
	}
	if v != Str("abcZ") {
		t.Fatalf("got %#v", v)
	}
}

func TestListHeadTailGetSet(t *testing.T) {
	l := NewList([]Value{Integer(1), Integer(2), Integer(3)})
	h, err := l.Head()
	if err != nil || h != Integer(1) {
		t.Fatalf("Head: got %#v, %v", h, err)
	}
	tl, err := l.Tail()
	if err != nil {
		t.Fatal(err)
	}
	tail := tl.(*List)
	if tail.Len() != 2 || tail.At(0) != Integer(2) {
		t.Fatalf("Tail: got %#v", tail)
	}

	got, err := l.Get(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	gl := got.(*List)
	if gl.Len() != 2 || gl.At(0) != Integer(2) || gl.At(1) != Integer(3) {
		t.Fatalf("Get: got %#v", gl)
	}

	set, err := l.Set(1, 1, NewList([]Value{Integer(9), Integer(9)}))
	if err != nil {
		t.Fatal(err)
	}
	sl := set.(*List)
	want := []Integer{1, 9, 9, 3}
	if sl.Len() != len(want) {
		t.Fatalf("Set: got %#v", sl)
	}
	for i, w := range want {
		if sl.At(i) != w {
			t.Errorf("Set[%d]: got %#v, want %v", i, sl.At(i), w)
		}
	}
}

func TestListHeadTailOnEmptyErrors(t *testing.T) {
	empty := NewList(nil)
	if _, err := empty.Head(); err == nil {
		t.Error("expected Head of empty list to error")
	}
	if _, err := empty.Tail(); err == nil {
		t.Error("expected Tail of empty list to error")
	}
}

func TestAsciiMasksToLowByte(t *testing.T) {
	v, err := Integer(321).Ascii() // 321 & 0xFF == 65 == 'A'
	if err != nil {
		t.Fatal(err)
	}
	if v != Str("A") {
		t.Fatalf("got %#v", v)
	}
}

func TestAsciiOfNegativeIntegerIsTotal(t *testing.T) {
	if _, err := Integer(-1).Ascii(); err != nil {
		t.Fatalf("ascii on negative integers should be total, got error: %v", err)
	}
}

func TestStrAsciiFirstByte(t *testing.T) {
	v, err := Str("Zed").Ascii()
	if err != nil {
		t.Fatal(err)
	}
	if v != Integer('Z') {
		t.Fatalf("got %#v", v)
	}
}

func TestStrAsciiOfEmptyErrors(t *testing.T) {
	if _, err := Str("").Ascii(); err == nil {
		t.Error("expected ascii of empty string to error")
	}
}
