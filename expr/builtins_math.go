package expr

import "math"

func registerMathBuiltins(r *FunctionRegistry) {
	r.Register("abs", func(args []Value) (Value, error) {
		v := arg(args, 0)
		if v.Kind() == KindInt {
			n := v.Int()
			if n < 0 {
				n = -n
			}
			return NewInt(n), nil
		}
		return NewFloat(math.Abs(v.Float())), nil
	})
	r.Register("floor", func(args []Value) (Value, error) {
		return NewFloat(math.Floor(arg(args, 0).Float())), nil
	})
	r.Register("ceil", func(args []Value) (Value, error) {
		return NewFloat(math.Ceil(arg(args, 0).Float())), nil
	})
	r.Register("round", func(args []Value) (Value, error) {
		return NewFloat(math.Round(arg(args, 0).Float())), nil
	})
	r.Register("sqrt", func(args []Value) (Value, error) {
		v := arg(args, 0).Float()
		if v < 0 {
			return NewNull(), newEvalError("sqrt of negative number")
		}
		return NewFloat(math.Sqrt(v)), nil
	})
	r.Register("pow", func(args []Value) (Value, error) {
		return NewFloat(math.Pow(arg(args, 0).Float(), arg(args, 1).Float())), nil
	})
	r.Register("log", func(args []Value) (Value, error) {
		return NewFloat(math.Log(arg(args, 0).Float())), nil
	})
	r.Register("exp", func(args []Value) (Value, error) {
		return NewFloat(math.Exp(arg(args, 0).Float())), nil
	})
	r.Register("sin", func(args []Value) (Value, error) {
		return NewFloat(math.Sin(arg(args, 0).Float())), nil
	})
	r.Register("cos", func(args []Value) (Value, error) {
		return NewFloat(math.Cos(arg(args, 0).Float())), nil
	})
	r.Register("tan", func(args []Value) (Value, error) {
		return NewFloat(math.Tan(arg(args, 0).Float())), nil
	})
	r.Register("clamp", func(args []Value) (Value, error) {
		v, lo, hi := arg(args, 0).Float(), arg(args, 1).Float(), arg(args, 2).Float()
		if v < lo {
			v = lo
		}
		if v > hi {
			v = hi
		}
		return NewFloat(v), nil
	})
	r.Register("min", func(args []Value) (Value, error) {
		return reduceNumeric(args, func(a, b float64) bool { return a < b })
	})
	r.Register("max", func(args []Value) (Value, error) {
		return reduceNumeric(args, func(a, b float64) bool { return a > b })
	})
	r.Register("sum", func(args []Value) (Value, error) {
		elems := collectNumericArgs(args)
		var total float64
		allInt := true
		for _, v := range elems {
			total += v.Float()
			if v.Kind() != KindInt {
				allInt = false
			}
		}
		if allInt {
			return NewInt(int64(total)), nil
		}
		return NewFloat(total), nil
	})
	r.Register("avg", func(args []Value) (Value, error) {
		elems := collectNumericArgs(args)
		if len(elems) == 0 {
			return NewNull(), newEvalError("avg of empty sequence")
		}
		var total float64
		for _, v := range elems {
			total += v.Float()
		}
		return NewFloat(total / float64(len(elems))), nil
	})
	r.Register("random", func(args []Value) (Value, error) {
		return NewNull(), newEvalError("random() is not available in a deterministic evaluation context")
	})
}

func collectNumericArgs(args []Value) []Value {
	if len(args) == 1 && args[0].Kind() == KindArray {
		return args[0].Array()
	}
	return args
}

func reduceNumeric(args []Value, better func(a, b float64) bool) (Value, error) {
	elems := collectNumericArgs(args)
	if len(elems) == 0 {
		return NewNull(), newEvalError("min/max of empty sequence")
	}
	best := elems[0]
	for _, v := range elems[1:] {
		if better(v.Float(), best.Float()) {
			best = v
		}
	}
	return best, nil
}
