package expr

import (
	"strings"
	"time"
)

func registerDateBuiltins(r *FunctionRegistry) {
	r.Register("now", func(args []Value) (Value, error) {
		return NewNull(), newEvalError("now() is not available in a deterministic evaluation context")
	})
	r.Register("today", func(args []Value) (Value, error) {
		return NewNull(), newEvalError("today() is not available in a deterministic evaluation context")
	})
	r.Register("addDays", func(args []Value) (Value, error) {
		return NewDateTime(arg(args, 0).DateTime().AddDate(0, 0, int(arg(args, 1).Int()))), nil
	})
	r.Register("addMonths", func(args []Value) (Value, error) {
		return NewDateTime(arg(args, 0).DateTime().AddDate(0, int(arg(args, 1).Int()), 0)), nil
	})
	r.Register("addYears", func(args []Value) (Value, error) {
		return NewDateTime(arg(args, 0).DateTime().AddDate(int(arg(args, 1).Int()), 0, 0)), nil
	})
	r.Register("diffDays", func(args []Value) (Value, error) {
		a, b := arg(args, 0).DateTime(), arg(args, 1).DateTime()
		return NewFloat(a.Sub(b).Hours() / 24), nil
	})
	r.Register("dayOfWeek", func(args []Value) (Value, error) {
		return NewInt(int64(arg(args, 0).DateTime().Weekday())), nil
	})
	r.Register("parseDate", func(args []Value) (Value, error) {
		s := arg(args, 0).RawString()
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return NewNull(), newEvalError("cannot parse '" + s + "' as a date")
		}
		return NewDateTime(t), nil
	})
	r.Register("formatDate", func(args []Value) (Value, error) {
		dt := arg(args, 0)
		if dt.Kind() != KindDateTime {
			return NewNull(), newEvalError("formatDate() requires a DateTime")
		}
		layout := time.RFC3339Nano
		if len(args) > 1 {
			layout = goLayoutFromTokens(arg(args, 1).RawString())
		}
		return NewString(dt.DateTime().Format(layout)), nil
	})
	r.Register("year", func(args []Value) (Value, error) { return NewInt(int64(arg(args, 0).DateTime().Year())), nil })
	r.Register("month", func(args []Value) (Value, error) { return NewInt(int64(arg(args, 0).DateTime().Month())), nil })
	r.Register("day", func(args []Value) (Value, error) { return NewInt(int64(arg(args, 0).DateTime().Day())), nil })
	r.Register("hour", func(args []Value) (Value, error) { return NewInt(int64(arg(args, 0).DateTime().Hour())), nil })
	r.Register("minute", func(args []Value) (Value, error) { return NewInt(int64(arg(args, 0).DateTime().Minute())), nil })
	r.Register("second", func(args []Value) (Value, error) { return NewInt(int64(arg(args, 0).DateTime().Second())), nil })
}

// goLayoutFromTokens maps the `yyyy MM dd HH mm ss` token vocabulary
// formatDate() accepts to a Go reference-time layout string.
func goLayoutFromTokens(tokens string) string {
	replacements := []struct{ token, layout string }{
		{"yyyy", "2006"},
		{"MM", "01"},
		{"dd", "02"},
		{"HH", "15"},
		{"mm", "04"},
		{"ss", "05"},
	}
	out := tokens
	for _, r := range replacements {
		out = strings.ReplaceAll(out, r.token, r.layout)
	}
	return out
}
