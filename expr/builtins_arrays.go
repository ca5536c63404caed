package expr

import "sort"

func sortIndicesByKey(idx []int, keys []Value) {
	sort.SliceStable(idx, func(a, b int) bool {
		return defaultLess(keys[idx[a]], keys[idx[b]])
	})
}

func registerArrayBuiltins(r *FunctionRegistry) {
	r.Register("range", func(args []Value) (Value, error) {
		var start, end, step int64 = 0, 0, 1
		switch len(args) {
		case 1:
			end = arg(args, 0).Int()
		case 2:
			start, end = arg(args, 0).Int(), arg(args, 1).Int()
		case 3:
			start, end, step = arg(args, 0).Int(), arg(args, 1).Int(), arg(args, 2).Int()
		default:
			return NewNull(), newEvalError("range() takes 1 to 3 arguments")
		}
		if step == 0 {
			return NewNull(), newEvalError("range() step must not be zero")
		}
		var out []Value
		if step > 0 {
			for i := start; i < end; i += step {
				out = append(out, NewInt(i))
			}
		} else {
			for i := start; i > end; i += step {
				out = append(out, NewInt(i))
			}
		}
		return NewArray(out), nil
	})
	r.Register("zip", func(args []Value) (Value, error) {
		if len(args) == 0 {
			return NewArray(nil), nil
		}
		minLen := -1
		for _, a := range args {
			n := len(a.Array())
			if minLen == -1 || n < minLen {
				minLen = n
			}
		}
		out := make([]Value, minLen)
		for i := 0; i < minLen; i++ {
			row := make([]Value, len(args))
			for j, a := range args {
				row[j] = a.Array()[i]
			}
			out[i] = NewArray(row)
		}
		return NewArray(out), nil
	})
	r.Register("first", func(args []Value) (Value, error) { return memberAccess(arg(args, 0), "first") })
	r.Register("last", func(args []Value) (Value, error) { return memberAccess(arg(args, 0), "last") })
	r.Register("at", func(args []Value) (Value, error) {
		elems := arg(args, 0).Array()
		i := arg(args, 1).Int()
		if i < 0 {
			i += int64(len(elems))
		}
		if i < 0 || i >= int64(len(elems)) {
			return NewNull(), nil
		}
		return elems[i], nil
	})
	for _, delegated := range []string{"slice", "reverse", "sort", "unique", "flatten", "map", "filter", "reduce", "find", "every", "some"} {
		name := delegated
		r.Register(name, func(args []Value) (Value, error) {
			return arrayMethods[name](arg(args, 0), argsFrom(args, 1), nil)
		})
	}
	r.Register("findIndex", func(args []Value) (Value, error) {
		elems := arg(args, 0).Array()
		fn := arg(args, 1)
		for i, e := range elems {
			v, err := callValue(fn, []Value{e, NewInt(int64(i))})
			if err != nil {
				return NewNull(), err
			}
			if v.Truthy() {
				return NewInt(int64(i)), nil
			}
		}
		return NewInt(-1), nil
	})
	r.Register("count", func(args []Value) (Value, error) {
		elems := arg(args, 0).Array()
		if len(args) < 2 {
			return NewInt(int64(len(elems))), nil
		}
		fn := args[1]
		n := 0
		for i, e := range elems {
			v, err := callValue(fn, []Value{e, NewInt(int64(i))})
			if err != nil {
				return NewNull(), err
			}
			if v.Truthy() {
				n++
			}
		}
		return NewInt(int64(n)), nil
	})
	r.Register("groupBy", func(args []Value) (Value, error) {
		elems := arg(args, 0).Array()
		fn := arg(args, 1)
		var keys []string
		groups := make(map[string][]Value)
		for _, e := range elems {
			k, err := callValue(fn, []Value{e})
			if err != nil {
				return NewNull(), err
			}
			key := k.String()
			if _, ok := groups[key]; !ok {
				keys = append(keys, key)
			}
			groups[key] = append(groups[key], e)
		}
		values := make(map[string]Value, len(keys))
		for _, k := range keys {
			values[k] = NewArray(groups[k])
		}
		return NewObjectFromPairs(keys, values), nil
	})
	r.Register("sortBy", func(args []Value) (Value, error) {
		elems := append([]Value{}, arg(args, 0).Array()...)
		fn := arg(args, 1)
		keyed := make([]Value, len(elems))
		var callErr error
		for i, e := range elems {
			k, err := callValue(fn, []Value{e})
			if err != nil {
				callErr = err
				break
			}
			keyed[i] = k
		}
		if callErr != nil {
			return NewNull(), callErr
		}
		idx := make([]int, len(elems))
		for i := range idx {
			idx[i] = i
		}
		sortIndicesByKey(idx, keyed)
		out := make([]Value, len(elems))
		for i, j := range idx {
			out[i] = elems[j]
		}
		return NewArray(out), nil
	})
	r.Register("pluck", func(args []Value) (Value, error) {
		elems := arg(args, 0).Array()
		field := arg(args, 1).RawString()
		out := make([]Value, len(elems))
		for i, e := range elems {
			v, _ := e.ObjectGet(field)
			out[i] = v
		}
		return NewArray(out), nil
	})
}
