package expr

import "strconv"

func registerTypeBuiltins(r *FunctionRegistry) {
	r.Register("type", func(args []Value) (Value, error) {
		return NewString(arg(args, 0).Kind().String()), nil
	})
	r.Register("isNull", func(args []Value) (Value, error) {
		return NewBool(arg(args, 0).IsNull()), nil
	})
	r.Register("isNumber", func(args []Value) (Value, error) {
		return NewBool(arg(args, 0).IsNumber()), nil
	})
	r.Register("isString", func(args []Value) (Value, error) {
		return NewBool(arg(args, 0).Kind() == KindString), nil
	})
	r.Register("isArray", func(args []Value) (Value, error) {
		return NewBool(arg(args, 0).Kind() == KindArray), nil
	})
	r.Register("isObject", func(args []Value) (Value, error) {
		return NewBool(arg(args, 0).Kind() == KindObject), nil
	})
	r.Register("isBool", func(args []Value) (Value, error) {
		return NewBool(arg(args, 0).Kind() == KindBool), nil
	})
	r.Register("toString", func(args []Value) (Value, error) {
		return NewString(arg(args, 0).String()), nil
	})
	r.Register("toNumber", func(args []Value) (Value, error) {
		v := arg(args, 0)
		switch v.Kind() {
		case KindInt, KindFloat:
			return v, nil
		case KindString:
			s := v.RawString()
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return NewInt(i), nil
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return NewNull(), newEvalError("cannot convert '" + s + "' to a number")
			}
			return NewFloat(f), nil
		case KindBool:
			if v.Bool() {
				return NewInt(1), nil
			}
			return NewInt(0), nil
		default:
			return NewNull(), newEvalError("cannot convert " + v.Kind().String() + " to a number")
		}
	})
	r.Register("toInt", func(args []Value) (Value, error) {
		v := arg(args, 0)
		if !v.IsNumber() {
			num, err := r.Lookup("toNumber").Fn(args)
			if err != nil {
				return NewNull(), err
			}
			v = num
		}
		return NewInt(v.Int()), nil
	})
	r.Register("toBool", func(args []Value) (Value, error) {
		return NewBool(arg(args, 0).Truthy()), nil
	})
	r.Register("toArray", func(args []Value) (Value, error) {
		v := arg(args, 0)
		switch v.Kind() {
		case KindArray:
			return v, nil
		case KindObject:
			return objectMethods["values"](v, nil, nil)
		default:
			return NewArray([]Value{v}), nil
		}
	})
}
