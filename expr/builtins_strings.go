package expr

import "strings"

func registerStringBuiltins(r *FunctionRegistry) {
	r.Register("length", func(args []Value) (Value, error) {
		v := arg(args, 0)
		switch v.Kind() {
		case KindString:
			return NewInt(int64(len([]rune(v.RawString())))), nil
		case KindArray:
			return NewInt(int64(len(v.Array()))), nil
		case KindObject:
			return NewInt(int64(v.ObjectLen())), nil
		default:
			return NewNull(), newEvalError("length() requires a string, array, or object")
		}
	})
	r.Register("upper", func(args []Value) (Value, error) {
		return NewString(strings.ToUpper(arg(args, 0).RawString())), nil
	})
	r.Register("lower", func(args []Value) (Value, error) {
		return NewString(strings.ToLower(arg(args, 0).RawString())), nil
	})
	r.Register("uppercase", func(args []Value) (Value, error) {
		return NewString(strings.ToUpper(arg(args, 0).RawString())), nil
	})
	r.Register("lowercase", func(args []Value) (Value, error) {
		return NewString(strings.ToLower(arg(args, 0).RawString())), nil
	})
	r.Register("trim", func(args []Value) (Value, error) {
		return NewString(strings.TrimSpace(arg(args, 0).RawString())), nil
	})
	r.Register("trimStart", func(args []Value) (Value, error) {
		return NewString(strings.TrimLeft(arg(args, 0).RawString(), " \t\r\n")), nil
	})
	r.Register("trimEnd", func(args []Value) (Value, error) {
		return NewString(strings.TrimRight(arg(args, 0).RawString(), " \t\r\n")), nil
	})
	r.Register("substring", func(args []Value) (Value, error) {
		return sliceString(arg(args, 0).RawString(), argsFrom(args, 1))
	})
	r.Register("replace", func(args []Value) (Value, error) {
		return NewString(strings.Replace(arg(args, 0).RawString(), arg(args, 1).RawString(), arg(args, 2).RawString(), 1)), nil
	})
	r.Register("replaceAll", func(args []Value) (Value, error) {
		return NewString(strings.ReplaceAll(arg(args, 0).RawString(), arg(args, 1).RawString(), arg(args, 2).RawString())), nil
	})
	r.Register("split", func(args []Value) (Value, error) {
		parts := strings.Split(arg(args, 0).RawString(), arg(args, 1).RawString())
		out := make([]Value, len(parts))
		for i, p := range parts {
			out[i] = NewString(p)
		}
		return NewArray(out), nil
	})
	r.Register("join", func(args []Value) (Value, error) {
		return arrayMethods["join"](arg(args, 0), argsFrom(args, 1), nil)
	})
	r.Register("startsWith", func(args []Value) (Value, error) {
		return NewBool(strings.HasPrefix(arg(args, 0).RawString(), arg(args, 1).RawString())), nil
	})
	r.Register("endsWith", func(args []Value) (Value, error) {
		return NewBool(strings.HasSuffix(arg(args, 0).RawString(), arg(args, 1).RawString())), nil
	})
	r.Register("contains", func(args []Value) (Value, error) {
		return NewBool(strings.Contains(arg(args, 0).RawString(), arg(args, 1).RawString())), nil
	})
	r.Register("indexOf", func(args []Value) (Value, error) {
		return NewInt(int64(strings.Index(arg(args, 0).RawString(), arg(args, 1).RawString()))), nil
	})
	r.Register("padStart", func(args []Value) (Value, error) {
		return NewString(padString(arg(args, 0).RawString(), argsFrom(args, 1), true)), nil
	})
	r.Register("padEnd", func(args []Value) (Value, error) {
		return NewString(padString(arg(args, 0).RawString(), argsFrom(args, 1), false)), nil
	})
}
