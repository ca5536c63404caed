package expr

import "testing"

func TestCanonicalizeSortsObjectKeys(t *testing.T) {
	v := NewObjectFromPairs(
		[]string{"b", "a", "c"},
		map[string]Value{"b": NewInt(2), "a": NewInt(1), "c": NewInt(3)},
	)
	got, err := Canonicalize(v)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if want := `{"a":1,"b":2,"c":3}`; got != want {
		t.Fatalf("Canonicalize = %s, want %s", got, want)
	}
}

func TestCanonicalizeKeyOrderIsIndependentOfInsertionOrder(t *testing.T) {
	a := NewObjectFromPairs([]string{"x", "y"}, map[string]Value{"x": NewInt(1), "y": NewInt(2)})
	b := NewObjectFromPairs([]string{"y", "x"}, map[string]Value{"x": NewInt(1), "y": NewInt(2)})
	ca, err := Canonicalize(a)
	if err != nil {
		t.Fatalf("Canonicalize(a): %v", err)
	}
	cb, err := Canonicalize(b)
	if err != nil {
		t.Fatalf("Canonicalize(b): %v", err)
	}
	if ca != cb {
		t.Fatalf("canonical forms differ by insertion order: %s vs %s", ca, cb)
	}
}

func TestCanonicalizeHasNoWhitespace(t *testing.T) {
	v := NewObjectFromPairs(
		[]string{"list"},
		map[string]Value{"list": NewArray([]Value{NewInt(1), NewInt(2)})},
	)
	got, err := Canonicalize(v)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	for _, r := range got {
		if r == ' ' || r == '\t' || r == '\n' {
			t.Fatalf("Canonicalize produced insignificant whitespace: %q", got)
		}
	}
}

func TestCanonicalizeNonFiniteFloatsBecomeNull(t *testing.T) {
	nan := NewFloat(nanValue())
	inf := NewFloat(infValue())
	for _, v := range []Value{nan, inf} {
		got, err := Canonicalize(v)
		if err != nil {
			t.Fatalf("Canonicalize: %v", err)
		}
		if got != "null" {
			t.Fatalf("Canonicalize(non-finite) = %s, want null", got)
		}
	}
}

func TestCanonicalizeIntegerValuedFloatDropsDecimalPoint(t *testing.T) {
	got, err := Canonicalize(NewFloat(4.0))
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if got != "4" {
		t.Fatalf("Canonicalize(4.0) = %s, want 4", got)
	}
}

func TestCanonicalizeStringEscaping(t *testing.T) {
	got, err := Canonicalize(NewString("a\"b\\c\nd\te"))
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	want := `"a\"b\\c\nd\te"`
	if got != want {
		t.Fatalf("Canonicalize(escaped string) = %s, want %s", got, want)
	}
}

func TestCanonicalizeEscapesBackspaceAndFormFeed(t *testing.T) {
	got, err := Canonicalize(NewString("a\bb\fc"))
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	want := `"a\bb\fc"`
	if got != want {
		t.Fatalf("Canonicalize(backspace/form-feed) = %s, want %s", got, want)
	}
}

func TestCanonicalizeIsIdempotentThroughParseJSON(t *testing.T) {
	v := NewObjectFromPairs(
		[]string{"b", "a"},
		map[string]Value{
			"a": NewArray([]Value{NewInt(1), NewString("x"), NewBool(true), NewNull()}),
			"b": NewFloat(2.5),
		},
	)
	first, err := Canonicalize(v)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	parsed, err := ParseJSON(first)
	if err != nil {
		t.Fatalf("ParseJSON(%s): %v", first, err)
	}
	second, err := Canonicalize(parsed)
	if err != nil {
		t.Fatalf("Canonicalize(parsed): %v", err)
	}
	if first != second {
		t.Fatalf("canonicalize is not idempotent: %s != %s", first, second)
	}
}

func TestParseJSONDistinguishesIntFromFloat(t *testing.T) {
	v, err := ParseJSON(`[1, 1.5]`)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	elems := v.Array()
	if elems[0].Kind() != KindInt {
		t.Fatalf("elems[0].Kind() = %v, want Int", elems[0].Kind())
	}
	if elems[1].Kind() != KindFloat {
		t.Fatalf("elems[1].Kind() = %v, want Float", elems[1].Kind())
	}
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func infValue() float64 {
	var zero float64
	return 1 / zero
}
