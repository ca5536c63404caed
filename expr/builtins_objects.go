package expr

import "strings"

// dottedGet walks path, a "."-separated sequence of object keys or array
// indices, returning def if any segment is missing or out of range.
func dottedGet(v Value, path string, def Value) (Value, error) {
	for _, segment := range strings.Split(path, ".") {
		switch v.Kind() {
		case KindObject:
			next, ok := v.ObjectGet(segment)
			if !ok {
				return def, nil
			}
			v = next
		case KindArray:
			i, err := parseArrayIndex(segment)
			if err != nil {
				return def, nil
			}
			elems := v.Array()
			if i < 0 || i >= len(elems) {
				return def, nil
			}
			v = elems[i]
		default:
			return def, nil
		}
	}
	return v, nil
}

func parseArrayIndex(segment string) (int, error) {
	n := 0
	if segment == "" {
		return 0, newEvalError("empty path segment")
	}
	for _, ch := range segment {
		if ch < '0' || ch > '9' {
			return 0, newEvalError("not a numeric path segment")
		}
		n = n*10 + int(ch-'0')
	}
	return n, nil
}

func registerObjectBuiltins(r *FunctionRegistry) {
	r.Register("keys", func(args []Value) (Value, error) {
		return objectMethods["keys"](arg(args, 0), nil, nil)
	})
	r.Register("values", func(args []Value) (Value, error) {
		return objectMethods["values"](arg(args, 0), nil, nil)
	})
	r.Register("entries", func(args []Value) (Value, error) {
		return objectMethods["entries"](arg(args, 0), nil, nil)
	})
	r.Register("fromEntries", func(args []Value) (Value, error) {
		pairs := arg(args, 0).Array()
		var keys []string
		values := make(map[string]Value, len(pairs))
		for _, p := range pairs {
			kv := p.Array()
			if len(kv) != 2 {
				return NewNull(), newEvalError("fromEntries() requires [key, value] pairs")
			}
			k := kv[0].RawString()
			if _, exists := values[k]; !exists {
				keys = append(keys, k)
			}
			values[k] = kv[1]
		}
		return NewObjectFromPairs(keys, values), nil
	})
	r.Register("pick", func(args []Value) (Value, error) {
		obj := arg(args, 0)
		var keys []string
		values := make(map[string]Value)
		for _, field := range argsFrom(args, 1) {
			k := field.RawString()
			if v, ok := obj.ObjectGet(k); ok {
				keys = append(keys, k)
				values[k] = v
			}
		}
		return NewObjectFromPairs(keys, values), nil
	})
	r.Register("omit", func(args []Value) (Value, error) {
		obj := arg(args, 0)
		excluded := make(map[string]bool)
		for _, field := range argsFrom(args, 1) {
			excluded[field.RawString()] = true
		}
		var keys []string
		values := make(map[string]Value)
		for _, k := range obj.ObjectKeys() {
			if excluded[k] {
				continue
			}
			v, _ := obj.ObjectGet(k)
			keys = append(keys, k)
			values[k] = v
		}
		return NewObjectFromPairs(keys, values), nil
	})
	r.Register("get", func(args []Value) (Value, error) {
		return dottedGet(arg(args, 0), arg(args, 1).RawString(), arg(args, 2))
	})
	r.Register("has", func(args []Value) (Value, error) {
		return objectMethods["has"](arg(args, 0), argsFrom(args, 1), nil)
	})
	r.Register("merge", func(args []Value) (Value, error) {
		if len(args) == 0 {
			return NewEmptyObject(), nil
		}
		return objectMethods["merge"](args[0], argsFrom(args, 1), nil)
	})
	r.Register("object", func(args []Value) (Value, error) {
		if len(args)%2 != 0 {
			return NewNull(), newEvalError("object() requires an even number of arguments")
		}
		var keys []string
		values := make(map[string]Value)
		for i := 0; i < len(args); i += 2 {
			k := args[i].RawString()
			if _, exists := values[k]; !exists {
				keys = append(keys, k)
			}
			values[k] = args[i+1]
		}
		return NewObjectFromPairs(keys, values), nil
	})
}
