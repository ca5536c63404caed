package expr

import "strings"

func registerUtilBuiltins(r *FunctionRegistry) {
	r.Register("coalesce", func(args []Value) (Value, error) {
		for _, a := range args {
			if !a.IsNull() {
				return a, nil
			}
		}
		return NewNull(), nil
	})
	r.Register("default", func(args []Value) (Value, error) {
		v := arg(args, 0)
		if v.IsNull() {
			return arg(args, 1), nil
		}
		return v, nil
	})
	r.Register("if", func(args []Value) (Value, error) {
		if arg(args, 0).Truthy() {
			return arg(args, 1), nil
		}
		return arg(args, 2), nil
	})
	r.Register("switch", func(args []Value) (Value, error) {
		if len(args) == 0 {
			return NewNull(), newEvalError("switch() requires at least a subject argument")
		}
		subject := args[0]
		rest := args[1:]
		for i := 0; i+1 < len(rest); i += 2 {
			if subject.Equal(rest[i]) {
				return rest[i+1], nil
			}
		}
		if len(rest)%2 == 1 {
			return rest[len(rest)-1], nil
		}
		return NewNull(), nil
	})
	r.Register("format", func(args []Value) (Value, error) {
		if len(args) == 0 {
			return NewString(""), nil
		}
		return NewString(formatTemplate(args[0].RawString(), args[1:])), nil
	})
	r.Register("json", func(args []Value) (Value, error) {
		out, err := Canonicalize(arg(args, 0))
		if err != nil {
			return NewNull(), err
		}
		return NewString(out), nil
	})
	r.Register("parseJson", func(args []Value) (Value, error) {
		return ParseJSON(arg(args, 0).RawString())
	})
}

// formatTemplate substitutes positional placeholders `{0}`, `{1}`, … in
// template with args[0], args[1], …, per spec.md §4.5. A placeholder
// whose index has no corresponding argument, or that isn't a run of
// digits between braces, is copied through verbatim.
func formatTemplate(template string, args []Value) string {
	var sb strings.Builder
	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			sb.WriteByte(template[i])
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end == -1 {
			sb.WriteString(template[i:])
			break
		}
		end += i
		digits := template[i+1 : end]
		idx, ok := parseDigits(digits)
		if !ok || idx < 0 || idx >= len(args) {
			sb.WriteString(template[i : end+1])
			i = end
			continue
		}
		sb.WriteString(args[idx].String())
		i = end
	}
	return sb.String()
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
