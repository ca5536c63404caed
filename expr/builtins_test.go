package expr

import "testing"

func TestRegistryStringFunctions(t *testing.T) {
	ctx := mustRootContext(t)
	tests := []struct {
		src  string
		want string
	}{
		{`upper("hi")`, "HI"},
		{`lower("HI")`, "hi"},
		{`length("hello")`, "5"},
		{`length([1, 2, 3])`, "3"},
		{`trimStart("  hi")`, "hi"},
		{`trimEnd("hi  ")`, "hi"},
		{`substring("hello", 1, 3)`, "el"},
		{`replace("aaa", "a", "b")`, "baa"},
		{`replaceAll("aaa", "a", "b")`, "bbb"},
		{`padStart("5", 3, "0")`, "005"},
		{`padEnd("5", 3, "0")`, "500"},
	}
	for _, tc := range tests {
		result := mustRun(t, ctx, tc.src)
		if result.String() != tc.want {
			t.Fatalf("%s = %q, want %q", tc.src, result.String(), tc.want)
		}
	}
}

func TestRegistryMathFunctions(t *testing.T) {
	ctx := mustRootContext(t)
	tests := []struct {
		src  string
		want float64
	}{
		{`abs(-5)`, 5},
		{`floor(1.7)`, 1},
		{`ceil(1.2)`, 2},
		{`round(1.5)`, 2},
		{`sqrt(9)`, 3},
		{`pow(2, 10)`, 1024},
		{`min(3, 1, 2)`, 1},
		{`max(3, 1, 2)`, 3},
		{`clamp(15, 0, 10)`, 10},
		{`sum([1, 2, 3])`, 6},
		{`avg([2, 4, 6])`, 4},
	}
	for _, tc := range tests {
		result := mustRun(t, ctx, tc.src)
		if result.Float() != tc.want {
			t.Fatalf("%s = %v, want %v", tc.src, result.Float(), tc.want)
		}
	}
}

func TestRegistryArrayFunctions(t *testing.T) {
	ctx := mustRootContext(t)

	if got := mustRun(t, ctx, `range(5).join(",")`); got.RawString() != "0,1,2,3,4" {
		t.Fatalf("range(5) = %q, want %q", got.RawString(), "0,1,2,3,4")
	}
	if got := mustRun(t, ctx, `range(1, 10, 3).join(",")`); got.RawString() != "1,4,7" {
		t.Fatalf("range(1,10,3) = %q, want %q", got.RawString(), "1,4,7")
	}
	if got := mustRun(t, ctx, `first([1, 2, 3])`); got.Int() != 1 {
		t.Fatalf("first = %v, want 1", got.Int())
	}
	if got := mustRun(t, ctx, `last([1, 2, 3])`); got.Int() != 3 {
		t.Fatalf("last = %v, want 3", got.Int())
	}
	if got := mustRun(t, ctx, `at([1, 2, 3], -1)`); got.Int() != 3 {
		t.Fatalf("at(arr, -1) = %v, want 3", got.Int())
	}
	if got := mustRun(t, ctx, `at([1, 2, 3], 99)`); !got.IsNull() {
		t.Fatalf("at(arr, 99) = %#v, want Null", got)
	}
	if got := mustRun(t, ctx, `count([1, 2, 3, 4], x => x % 2 == 0)`); got.Int() != 2 {
		t.Fatalf("count = %v, want 2", got.Int())
	}
	if got := mustRun(t, ctx, `pluck([{ name: "a" }, { name: "b" }], "name").join(",")`); got.RawString() != "a,b" {
		t.Fatalf("pluck = %q, want %q", got.RawString(), "a,b")
	}
	if got := mustRun(t, ctx, `sortBy([3, 1, 2], x => x).join(",")`); got.RawString() != "1,2,3" {
		t.Fatalf("sortBy = %q, want %q", got.RawString(), "1,2,3")
	}
	grouped := mustRun(t, ctx, `groupBy([1, 2, 3, 4], x => x % 2 == 0 ? "even" : "odd")`)
	if grouped.ObjectLen() != 2 {
		t.Fatalf("groupBy produced %d groups, want 2", grouped.ObjectLen())
	}
	if got := mustRun(t, ctx, `zip([1, 2], ["a", "b"])[0].join(",")`); got.RawString() != "1,a" {
		t.Fatalf("zip = %q, want %q", got.RawString(), "1,a")
	}
}

func TestRegistryObjectFunctions(t *testing.T) {
	ctx := mustRootContext(t)
	ctx.Set("nested", NewObjectFromPairs(
		[]string{"a"},
		map[string]Value{"a": NewObjectFromPairs(
			[]string{"b"},
			map[string]Value{"b": NewArray([]Value{NewInt(10), NewInt(20)})},
		)},
	))

	if got := mustRun(t, ctx, `get(nested, "a.b.1", null)`); got.Int() != 20 {
		t.Fatalf(`get(nested, "a.b.1", null) = %v, want 20`, got.Int())
	}
	if got := mustRun(t, ctx, `get(nested, "a.missing", "fallback")`); got.RawString() != "fallback" {
		t.Fatalf(`get on a missing path = %q, want "fallback"`, got.RawString())
	}
	if got := mustRun(t, ctx, `pick({ a: 1, b: 2, c: 3 }, "a", "c").keys().join(",")`); got.RawString() != "a,c" {
		t.Fatalf("pick = %q, want %q", got.RawString(), "a,c")
	}
	if got := mustRun(t, ctx, `omit({ a: 1, b: 2, c: 3 }, "b").keys().join(",")`); got.RawString() != "a,c" {
		t.Fatalf("omit = %q, want %q", got.RawString(), "a,c")
	}
	if got := mustRun(t, ctx, `fromEntries([["a", 1], ["b", 2]]).get("b", null)`); got.Int() != 2 {
		t.Fatalf("fromEntries = %v, want 2", got.Int())
	}
	if got := mustRun(t, ctx, `object("x", 1, "y", 2).get("y", null)`); got.Int() != 2 {
		t.Fatalf("object(...) = %v, want 2", got.Int())
	}
}

func TestRegistryTypeFunctions(t *testing.T) {
	ctx := mustRootContext(t)
	tests := []struct {
		src  string
		want string
	}{
		{`type(1)`, "integer"},
		{`type(1.5)`, "float"},
		{`type("s")`, "string"},
		{`type(null)`, "null"},
		{`type([])`, "array"},
		{`type({})`, "object"},
	}
	for _, tc := range tests {
		result := mustRun(t, ctx, tc.src)
		if result.RawString() != tc.want {
			t.Fatalf("%s = %q, want %q", tc.src, result.RawString(), tc.want)
		}
	}
	if got := mustRun(t, ctx, `toNumber("42")`); got.Int() != 42 {
		t.Fatalf(`toNumber("42") = %v, want 42`, got.Int())
	}
	if got := mustRun(t, ctx, `toArray({ a: 1, b: 2 }).join(",")`); got.RawString() != "1,2" {
		t.Fatalf("toArray(object) = %q, want %q", got.RawString(), "1,2")
	}
	if got := mustRun(t, ctx, `toArray(5).join(",")`); got.RawString() != "5" {
		t.Fatalf("toArray(scalar) = %q, want %q", got.RawString(), "5")
	}
}

func TestRegistryDateFunctions(t *testing.T) {
	ctx := mustRootContext(t)
	ctx.Set("d", mustRun(t, ctx, `parseDate("2024-01-15T00:00:00Z")`))

	if got := mustRun(t, ctx, `year(d)`); got.Int() != 2024 {
		t.Fatalf("year(d) = %v, want 2024", got.Int())
	}
	if got := mustRun(t, ctx, `month(d)`); got.Int() != 1 {
		t.Fatalf("month(d) = %v, want 1", got.Int())
	}
	if got := mustRun(t, ctx, `day(d)`); got.Int() != 15 {
		t.Fatalf("day(d) = %v, want 15", got.Int())
	}
	if got := mustRun(t, ctx, `formatDate(d, "yyyy-MM-dd")`); got.RawString() != "2024-01-15" {
		t.Fatalf(`formatDate(d, "yyyy-MM-dd") = %q, want "2024-01-15"`, got.RawString())
	}
	after := mustRun(t, ctx, `addDays(d, 5)`)
	if after.DateTime().Day() != 20 {
		t.Fatalf("addDays(d, 5) day = %d, want 20", after.DateTime().Day())
	}
	if got := mustRun(t, ctx, `diffDays(addDays(d, 5), d)`); got.Float() != 5 {
		t.Fatalf("diffDays = %v, want 5", got.Float())
	}
}

func TestRegistryUtilFunctions(t *testing.T) {
	ctx := mustRootContext(t)
	if got := mustRun(t, ctx, `coalesce(null, null, 3)`); got.Int() != 3 {
		t.Fatalf("coalesce = %v, want 3", got.Int())
	}
	if got := mustRun(t, ctx, `null | default(7)`); got.Int() != 7 {
		t.Fatalf("null | default(7) = %v, want 7", got.Int())
	}
	if got := mustRun(t, ctx, `5 | default(7)`); got.Int() != 5 {
		t.Fatalf("5 | default(7) = %v, want 5", got.Int())
	}
	if got := mustRun(t, ctx, `if(true, "yes", "no")`); got.RawString() != "yes" {
		t.Fatalf(`if(true, "yes", "no") = %q, want "yes"`, got.RawString())
	}
	if got := mustRun(t, ctx, `format("{0} of {1}", 1, 3)`); got.RawString() != "1 of 3" {
		t.Fatalf(`format = %q, want "1 of 3"`, got.RawString())
	}
	if got := mustRun(t, ctx, `format("{1} then {0}", "a", "b")`); got.RawString() != "b then a" {
		t.Fatalf(`format with reordered indices = %q, want "b then a"`, got.RawString())
	}
	if got := mustRun(t, ctx, `format("{0} and {1}", "a", "b")`); got.RawString() != "a and b" {
		t.Fatalf(`format = %q, want "a and b"`, got.RawString())
	}
	if got := mustRun(t, ctx, `json({ b: 2, a: 1 })`); got.RawString() != `{"a":1,"b":2}` {
		t.Fatalf(`json({b:2,a:1}) = %s, want sorted-key canonical form`, got.RawString())
	}
	if got := mustRun(t, ctx, `parseJson("[1, 2, 3]").join(",")`); got.RawString() != "1,2,3" {
		t.Fatalf("parseJson = %q, want %q", got.RawString(), "1,2,3")
	}
	if got := mustRun(t, ctx, `"hi" | uppercase`); got.RawString() != "HI" {
		t.Fatalf(`"hi" | uppercase = %q, want "HI"`, got.RawString())
	}
	if got := mustRun(t, ctx, `"HI" | lowercase`); got.RawString() != "hi" {
		t.Fatalf(`"HI" | lowercase = %q, want "hi"`, got.RawString())
	}
}
