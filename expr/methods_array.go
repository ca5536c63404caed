package expr

import "sort"

var arrayMethods map[string]methodFunc

func init() {
	arrayMethods = map[string]methodFunc{
		"map": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		elems := r.Array()
		out := make([]Value, len(elems))
		for i, e := range elems {
			v, err := callValue(arg(args, 0), []Value{e, NewInt(int64(i))})
			if err != nil {
				return NewNull(), err
			}
			out[i] = v
		}
		return NewArray(out), nil
	},
	"filter": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return arrayMethodFilter(r, args, ctx)
	},
	"where": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return arrayMethodFilter(r, args, ctx)
	},
	"reduce": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		elems := r.Array()
		fn := arg(args, 0)
		var acc Value
		start := 0
		if len(args) > 1 {
			acc = args[1]
		} else {
			if len(elems) == 0 {
				return NewNull(), newEvalError("reduce of empty array with no initial value")
			}
			acc = elems[0]
			start = 1
		}
		for i := start; i < len(elems); i++ {
			v, err := callValue(fn, []Value{acc, elems[i], NewInt(int64(i))})
			if err != nil {
				return NewNull(), err
			}
			acc = v
		}
		return acc, nil
	},
	"find": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		elems := r.Array()
		for i, e := range elems {
			v, err := callValue(arg(args, 0), []Value{e, NewInt(int64(i))})
			if err != nil {
				return NewNull(), err
			}
			if v.Truthy() {
				return e, nil
			}
		}
		return NewNull(), nil
	},
	"every": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		elems := r.Array()
		for i, e := range elems {
			v, err := callValue(arg(args, 0), []Value{e, NewInt(int64(i))})
			if err != nil {
				return NewNull(), err
			}
			if !v.Truthy() {
				return NewBool(false), nil
			}
		}
		return NewBool(true), nil
	},
	"some": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return arrayMethodSome(r, args, ctx)
	},
	"any": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return arrayMethodSome(r, args, ctx)
	},
	"sort": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		elems := append([]Value{}, r.Array()...)
		var sortErr error
		sort.SliceStable(elems, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			if len(args) > 0 {
				v, err := callValue(args[0], []Value{elems[i], elems[j]})
				if err != nil {
					sortErr = err
					return false
				}
				return v.Float() < 0
			}
			return defaultLess(elems[i], elems[j])
		})
		if sortErr != nil {
			return NewNull(), sortErr
		}
		return NewArray(elems), nil
	},
	"reverse": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		elems := r.Array()
		out := make([]Value, len(elems))
		for i, e := range elems {
			out[len(elems)-1-i] = e
		}
		return NewArray(out), nil
	},
	"join": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		sep := ""
		if len(args) > 0 {
			sep = arg(args, 0).RawString()
		}
		elems := r.Array()
		out := ""
		for i, e := range elems {
			if i > 0 {
				out += sep
			}
			out += e.String()
		}
		return NewString(out), nil
	},
	"slice": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		elems := r.Array()
		start, end := sliceBounds(len(elems), args)
		return NewArray(append([]Value{}, elems[start:end]...)), nil
	},
	"concat": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		out := append([]Value{}, r.Array()...)
		for _, a := range args {
			out = append(out, a.Array()...)
		}
		return NewArray(out), nil
	},
	"contains": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		target := arg(args, 0)
		for _, e := range r.Array() {
			if e.Equal(target) {
				return NewBool(true), nil
			}
		}
		return NewBool(false), nil
	},
	"indexOf": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		target := arg(args, 0)
		for i, e := range r.Array() {
			if e.Equal(target) {
				return NewInt(int64(i)), nil
			}
		}
		return NewInt(-1), nil
	},
	"flatten": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		var out []Value
		for _, e := range r.Array() {
			if e.Kind() == KindArray {
				out = append(out, e.Array()...)
			} else {
				out = append(out, e)
			}
		}
		return NewArray(out), nil
	},
	"unique": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		var out []Value
		for _, e := range r.Array() {
			dup := false
			for _, seen := range out {
				if seen.Equal(e) {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, e)
			}
		}
		return NewArray(out), nil
	},
	"toString": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewString(r.String()), nil
	},
	}
}

func defaultLess(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		return a.Float() < b.Float()
	}
	if a.Kind() == KindString && b.Kind() == KindString {
		return a.RawString() < b.RawString()
	}
	return false
}

func arrayMethodFilter(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
	var out []Value
	for i, e := range r.Array() {
		v, err := callValue(arg(args, 0), []Value{e, NewInt(int64(i))})
		if err != nil {
			return NewNull(), err
		}
		if v.Truthy() {
			out = append(out, e)
		}
	}
	return NewArray(out), nil
}

func arrayMethodSome(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
	for i, e := range r.Array() {
		v, err := callValue(arg(args, 0), []Value{e, NewInt(int64(i))})
		if err != nil {
			return NewNull(), err
		}
		if v.Truthy() {
			return NewBool(true), nil
		}
	}
	return NewBool(false), nil
}
