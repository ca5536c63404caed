package expr

import "strings"

var stringMethods = map[string]methodFunc{
	"uppercase": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewString(strings.ToUpper(r.RawString())), nil
	},
	"lowercase": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewString(strings.ToLower(r.RawString())), nil
	},
	"trim": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewString(strings.TrimSpace(r.RawString())), nil
	},
	"split": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		sep := arg(args, 0).RawString()
		var parts []string
		if sep == "" {
			for _, ru := range r.RawString() {
				parts = append(parts, string(ru))
			}
		} else {
			parts = strings.Split(r.RawString(), sep)
		}
		out := make([]Value, len(parts))
		for i, p := range parts {
			out[i] = NewString(p)
		}
		return NewArray(out), nil
	},
	"contains": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewBool(strings.Contains(r.RawString(), arg(args, 0).RawString())), nil
	},
	"startsWith": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewBool(strings.HasPrefix(r.RawString(), arg(args, 0).RawString())), nil
	},
	"endsWith": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewBool(strings.HasSuffix(r.RawString(), arg(args, 0).RawString())), nil
	},
	"replace": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewString(strings.ReplaceAll(r.RawString(), arg(args, 0).RawString(), arg(args, 1).RawString())), nil
	},
	"substring": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return sliceString(r.RawString(), args)
	},
	"indexOf": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewInt(int64(strings.Index(r.RawString(), arg(args, 0).RawString()))), nil
	},
	"repeat": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		n := arg(args, 0).Int()
		if n < 0 {
			return NewNull(), newEvalError("repeat count must be non-negative")
		}
		return NewString(strings.Repeat(r.RawString(), int(n))), nil
	},
	"padLeft": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewString(padString(r.RawString(), args, true)), nil
	},
	"padRight": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewString(padString(r.RawString(), args, false)), nil
	},
	"toString": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return r, nil
	},
}

func sliceString(s string, args []Value) (Value, error) {
	runes := []rune(s)
	start, end := sliceBounds(len(runes), args)
	return NewString(string(runes[start:end])), nil
}

func sliceBounds(n int, args []Value) (int, int) {
	start := 0
	end := n
	if len(args) > 0 {
		start = clampIndex(arg(args, 0).Int(), n)
	}
	if len(args) > 1 {
		end = clampIndex(arg(args, 1).Int(), n)
	}
	if end < start {
		end = start
	}
	return start, end
}

func clampIndex(i int64, n int) int {
	if i < 0 {
		i += int64(n)
	}
	if i < 0 {
		return 0
	}
	if i > int64(n) {
		return n
	}
	return int(i)
}

func padString(s string, args []Value, left bool) string {
	width := int(arg(args, 0).Int())
	pad := " "
	if len(args) > 1 {
		pad = arg(args, 1).RawString()
	}
	if pad == "" || len([]rune(s)) >= width {
		return s
	}
	need := width - len([]rune(s))
	var b strings.Builder
	for b.Len() < need*len(pad) {
		b.WriteString(pad)
	}
	filler := string([]rune(b.String())[:need])
	if left {
		return filler + s
	}
	return s + filler
}
