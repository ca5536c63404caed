package expr

func objectMethodHas(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
	_, ok := r.ObjectGet(arg(args, 0).RawString())
	return NewBool(ok), nil
}

var objectMethods = map[string]methodFunc{
	"keys": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		keys := r.ObjectKeys()
		out := make([]Value, len(keys))
		for i, k := range keys {
			out[i] = NewString(k)
		}
		return NewArray(out), nil
	},
	"values": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		keys := r.ObjectKeys()
		out := make([]Value, len(keys))
		for i, k := range keys {
			v, _ := r.ObjectGet(k)
			out[i] = v
		}
		return NewArray(out), nil
	},
	"entries": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		keys := r.ObjectKeys()
		out := make([]Value, len(keys))
		for i, k := range keys {
			v, _ := r.ObjectGet(k)
			out[i] = NewArray([]Value{NewString(k), v})
		}
		return NewArray(out), nil
	},
	"has": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return objectMethodHas(r, args, ctx)
	},
	"containsKey": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return objectMethodHas(r, args, ctx)
	},
	"containsValue": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		target := arg(args, 0)
		for _, k := range r.ObjectKeys() {
			v, _ := r.ObjectGet(k)
			if v.Equal(target) {
				return NewBool(true), nil
			}
		}
		return NewBool(false), nil
	},
	"get": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		v, ok := r.ObjectGet(arg(args, 0).RawString())
		if !ok && len(args) > 1 {
			return args[1], nil
		}
		return v, nil
	},
	"merge": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		keys := append([]string{}, r.ObjectKeys()...)
		values := make(map[string]Value, len(keys))
		for _, k := range keys {
			v, _ := r.ObjectGet(k)
			values[k] = v
		}
		for _, a := range args {
			for _, k := range a.ObjectKeys() {
				if _, exists := values[k]; !exists {
					keys = append(keys, k)
				}
				v, _ := a.ObjectGet(k)
				values[k] = v
			}
		}
		return NewObjectFromPairs(keys, values), nil
	},
	"toString": func(r Value, args []Value, ctx *EvaluationContext) (Value, error) {
		return NewString(r.String()), nil
	},
}
