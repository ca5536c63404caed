package expr

import (
	"strconv"
	"strings"
	"time"
)

// String renders the value's display form, used by string interpolation and
// by the REPL/CLI to print results. Null renders as the empty string; this
// is the "to_display_string" helper spec.md §9 calls for, distinct from
// the byte-stable form produced by Canonicalize.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindFloat:
		return formatFloatShortest(v.data.(float64))
	case KindString:
		return v.data.(string)
	case KindArray:
		elems := v.Array()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.displayElement()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		o := v.obj()
		parts := make([]string, 0, o.len())
		for _, k := range o.keys {
			val, _ := o.get(k)
			parts = append(parts, k+": "+val.displayElement())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindDateTime:
		return v.DateTime().Format(time.RFC3339Nano)
	case KindLambda:
		return "<lambda>"
	case KindTool:
		return "<tool " + v.Tool().Name + ">"
	default:
		return ""
	}
}

// displayElement quotes strings when nested inside an array/object display
// form so `["a","b"].toString()` reads unambiguously; the top-level String()
// of a bare string value does not quote.
func (v Value) displayElement() string {
	if v.kind == KindString {
		return strconv.Quote(v.data.(string))
	}
	return v.String()
}

func formatFloatShortest(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Truthy implements spec.md §4.4: null/false are falsy, zero numbers are
// falsy, empty strings/arrays/objects are falsy, everything else is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.Bool()
	case KindInt:
		return v.data.(int64) != 0
	case KindFloat:
		return v.data.(float64) != 0
	case KindString:
		return v.data.(string) != ""
	case KindArray:
		return len(v.Array()) > 0
	case KindObject:
		return v.ObjectLen() > 0
	default:
		return true
	}
}

// Equal implements spec.md §4.4's `==`: null equals only null, numbers
// compare by numeric equality across Int/Float, otherwise deep structural
// equality. This is recursive for Array/Object since expression-language
// collections are read-only value data, not mutable references (see
// SPEC_FULL.md §4).
func (v Value) Equal(other Value) bool {
	if v.kind == KindNull || other.kind == KindNull {
		return v.kind == KindNull && other.kind == KindNull
	}
	if v.IsNumber() && other.IsNumber() {
		return v.Float() == other.Float()
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.Bool() == other.Bool()
	case KindString:
		return v.data.(string) == other.data.(string)
	case KindDateTime:
		return v.DateTime().Equal(other.DateTime())
	case KindArray:
		a, b := v.Array(), other.Array()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KindObject:
		oa, ob := v.obj(), other.obj()
		if oa.len() != ob.len() {
			return false
		}
		for _, k := range oa.keys {
			av, _ := oa.get(k)
			bv, ok := ob.get(k)
			if !ok || !av.Equal(bv) {
				return false
			}
		}
		return true
	case KindLambda:
		return v.Closure() == other.Closure()
	case KindTool:
		return v.Tool() == other.Tool()
	default:
		return false
	}
}
