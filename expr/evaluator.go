package expr

import (
	"fmt"
	"math"
)

// Evaluate walks expr against ctx, returning the computed Value or the
// *EvalError that stopped evaluation (lexing and parsing errors are
// reported earlier, by Parse). It never
// panics for malformed input; the only panics that can occur are host
// programming errors (a nil ctx).
func Evaluate(node Expr, ctx *EvaluationContext) (Value, error) {
	switch e := node.(type) {
	case *Literal:
		return e.Value, nil
	case *Identifier:
		v, ok := ctx.Get(e.Name)
		if !ok {
			return NewNull(), newEvalError("undefined identifier '" + e.Name + "'")
		}
		return v, nil
	case *Unary:
		return evalUnary(e, ctx)
	case *Binary:
		return evalBinary(e, ctx)
	case *Logical:
		return evalLogical(e, ctx)
	case *Grouping:
		return Evaluate(e.Inner, ctx)
	case *Conditional:
		cond, err := Evaluate(e.Cond, ctx)
		if err != nil {
			return NewNull(), err
		}
		if cond.Truthy() {
			return Evaluate(e.Then, ctx)
		}
		return Evaluate(e.Else, ctx)
	case *ArrayLit:
		elems := make([]Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := Evaluate(el, ctx)
			if err != nil {
				return NewNull(), err
			}
			elems[i] = v
		}
		return NewArray(elems), nil
	case *ObjectLit:
		keys := make([]string, 0, len(e.Entries))
		seen := make(map[string]bool, len(e.Entries))
		values := make(map[string]Value, len(e.Entries))
		for _, entry := range e.Entries {
			k, err := Evaluate(entry.Key, ctx)
			if err != nil {
				return NewNull(), err
			}
			v, err := Evaluate(entry.Value, ctx)
			if err != nil {
				return NewNull(), err
			}
			key := k.String()
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
			values[key] = v
		}
		return NewObjectFromPairs(keys, values), nil
	case *Interpolation:
		var out string
		for _, part := range e.Parts {
			if part.IsText {
				out += part.Text
				continue
			}
			v, err := Evaluate(part.Value, ctx)
			if err != nil {
				return NewNull(), err
			}
			out += v.String()
		}
		return NewString(out), nil
	case *Lambda:
		return NewClosure(&Closure{Params: e.Params, Body: e.Body, Env: ctx}), nil
	case *Member:
		return evalMember(e, ctx)
	case *Index:
		return evalIndex(e, ctx)
	case *Call:
		return evalCall(e, ctx)
	case *Pipe:
		return evalPipe(e, ctx)
	default:
		return NewNull(), newEvalError(fmt.Sprintf("cannot evaluate node of type %T", node))
	}
}

// MustEvaluate is a convenience wrapper for callers that have already
// guaranteed expr evaluates cleanly (tests, REPL history replay); it
// panics on error rather than returning one.
func MustEvaluate(node Expr, ctx *EvaluationContext) Value {
	v, err := Evaluate(node, ctx)
	if err != nil {
		panic(err)
	}
	return v
}

func evalUnary(e *Unary, ctx *EvaluationContext) (Value, error) {
	operand, err := Evaluate(e.Operand, ctx)
	if err != nil {
		return NewNull(), err
	}
	switch e.Op {
	case TokenMinus:
		if !operand.IsNumber() {
			return NewNull(), newEvalError("unary '-' requires a number")
		}
		if operand.Kind() == KindInt {
			return NewInt(-operand.Int()), nil
		}
		return NewFloat(-operand.Float()), nil
	case TokenNot:
		return NewBool(!operand.Truthy()), nil
	default:
		return NewNull(), newEvalError("unsupported unary operator")
	}
}

func evalLogical(e *Logical, ctx *EvaluationContext) (Value, error) {
	left, err := Evaluate(e.Left, ctx)
	if err != nil {
		return NewNull(), err
	}
	switch e.Op {
	case TokenAnd:
		if !left.Truthy() {
			return NewBool(false), nil
		}
		right, err := Evaluate(e.Right, ctx)
		if err != nil {
			return NewNull(), err
		}
		return NewBool(right.Truthy()), nil
	case TokenOr:
		if left.Truthy() {
			return NewBool(true), nil
		}
		right, err := Evaluate(e.Right, ctx)
		if err != nil {
			return NewNull(), err
		}
		return NewBool(right.Truthy()), nil
	default:
		return NewNull(), newEvalError("unsupported logical operator")
	}
}

func evalBinary(e *Binary, ctx *EvaluationContext) (Value, error) {
	left, err := Evaluate(e.Left, ctx)
	if err != nil {
		return NewNull(), err
	}
	right, err := Evaluate(e.Right, ctx)
	if err != nil {
		return NewNull(), err
	}
	switch e.Op {
	case TokenEqual:
		return NewBool(left.Equal(right)), nil
	case TokenNotEqual:
		return NewBool(!left.Equal(right)), nil
	case TokenLT, TokenLE, TokenGT, TokenGE:
		return evalComparison(e.Op, left, right)
	case TokenPlus:
		return evalAdd(left, right)
	case TokenMinus, TokenMultiply, TokenDivide, TokenModulo, TokenPower:
		return evalArith(e.Op, left, right)
	default:
		return NewNull(), newEvalError("unsupported binary operator")
	}
}

func evalComparison(op TokenKind, left, right Value) (Value, error) {
	switch {
	case left.IsNumber() && right.IsNumber():
		a, b := left.Float(), right.Float()
		return NewBool(compareOrdered(op, a < b, a == b, a > b)), nil
	case left.Kind() == KindString && right.Kind() == KindString:
		a, b := left.RawString(), right.RawString()
		return NewBool(compareOrdered(op, a < b, a == b, a > b)), nil
	default:
		return NewNull(), newEvalError("cannot compare values of different types")
	}
}

func compareOrdered(op TokenKind, lt, eq, gt bool) bool {
	switch op {
	case TokenLT:
		return lt
	case TokenLE:
		return lt || eq
	case TokenGT:
		return gt
	case TokenGE:
		return gt || eq
	default:
		return false
	}
}

// evalAdd implements `+` per spec.md §4.4: numeric addition when both
// sides are numbers, string concatenation when either side is a String
// (the non-string operand is coerced via its display form), and array
// concatenation when both sides are Arrays.
func evalAdd(left, right Value) (Value, error) {
	switch {
	case left.IsNumber() && right.IsNumber():
		return evalArith(TokenPlus, left, right)
	case left.Kind() == KindString || right.Kind() == KindString:
		return NewString(left.String() + right.String()), nil
	case left.Kind() == KindArray && right.Kind() == KindArray:
		return NewArray(append(append([]Value{}, left.Array()...), right.Array()...)), nil
	default:
		return NewNull(), newEvalError("'+' requires numbers, strings, or arrays")
	}
}

func evalArith(op TokenKind, left, right Value) (Value, error) {
	if !left.IsNumber() || !right.IsNumber() {
		return NewNull(), newEvalError("arithmetic operator requires numbers")
	}
	bothInt := left.Kind() == KindInt && right.Kind() == KindInt

	if op == TokenDivide {
		if right.Float() == 0 {
			return NewNull(), newEvalError("division by zero")
		}
		return NewFloat(left.Float() / right.Float()), nil
	}
	if op == TokenPower {
		result := math.Pow(left.Float(), right.Float())
		if bothInt && right.Int() >= 0 && result == math.Trunc(result) && math.Abs(result) <= 1<<53 {
			return NewInt(int64(result)), nil
		}
		return NewFloat(result), nil
	}
	if bothInt {
		a, b := left.Int(), right.Int()
		switch op {
		case TokenPlus:
			return NewInt(a + b), nil
		case TokenMinus:
			return NewInt(a - b), nil
		case TokenMultiply:
			return NewInt(a * b), nil
		case TokenModulo:
			if b == 0 {
				return NewNull(), newEvalError("modulo by zero")
			}
			return NewInt(a % b), nil
		}
	}
	a, b := left.Float(), right.Float()
	switch op {
	case TokenPlus:
		return NewFloat(a + b), nil
	case TokenMinus:
		return NewFloat(a - b), nil
	case TokenMultiply:
		return NewFloat(a * b), nil
	case TokenModulo:
		if b == 0 {
			return NewNull(), newEvalError("modulo by zero")
		}
		return NewFloat(math.Mod(a, b)), nil
	}
	return NewNull(), newEvalError("unsupported arithmetic operator")
}

func evalMember(e *Member, ctx *EvaluationContext) (Value, error) {
	obj, err := Evaluate(e.Object, ctx)
	if err != nil {
		return NewNull(), err
	}
	if e.Optional && obj.IsNull() {
		return NewNull(), nil
	}
	return memberAccess(obj, e.Name)
}

// memberAccess resolves a bare member name against obj: an Object field,
// or one of the reserved Array/String properties (length, first, last,
// isEmpty, isNotEmpty) that spec.md §4.5 exposes via plain member access
// rather than a call.
func memberAccess(obj Value, name string) (Value, error) {
	switch obj.Kind() {
	case KindObject:
		if v, ok := obj.ObjectGet(name); ok {
			return v, nil
		}
		return NewNull(), nil
	case KindArray:
		elems := obj.Array()
		switch name {
		case "length":
			return NewInt(int64(len(elems))), nil
		case "first":
			if len(elems) == 0 {
				return NewNull(), nil
			}
			return elems[0], nil
		case "last":
			if len(elems) == 0 {
				return NewNull(), nil
			}
			return elems[len(elems)-1], nil
		case "isEmpty":
			return NewBool(len(elems) == 0), nil
		case "isNotEmpty":
			return NewBool(len(elems) != 0), nil
		}
	case KindString:
		s := obj.RawString()
		switch name {
		case "length":
			return NewInt(int64(len([]rune(s)))), nil
		case "first":
			if s == "" {
				return NewNull(), nil
			}
			return NewString(string([]rune(s)[0])), nil
		case "last":
			if s == "" {
				return NewNull(), nil
			}
			r := []rune(s)
			return NewString(string(r[len(r)-1])), nil
		case "isEmpty":
			return NewBool(s == ""), nil
		case "isNotEmpty":
			return NewBool(s != ""), nil
		}
	}
	return NewNull(), newEvalError("no member '" + name + "' on " + obj.Kind().String())
}

func evalIndex(e *Index, ctx *EvaluationContext) (Value, error) {
	obj, err := Evaluate(e.Object, ctx)
	if err != nil {
		return NewNull(), err
	}
	idx, err := Evaluate(e.IndexVal, ctx)
	if err != nil {
		return NewNull(), err
	}
	switch obj.Kind() {
	case KindArray:
		elems := obj.Array()
		if idx.Kind() != KindInt {
			return NewNull(), newEvalError("array index must be an integer")
		}
		i := idx.Int()
		if i < 0 || i >= int64(len(elems)) {
			return NewNull(), newEvalError("array index out of range")
		}
		return elems[i], nil
	case KindObject:
		v, _ := obj.ObjectGet(idx.String())
		return v, nil
	case KindString:
		runes := []rune(obj.RawString())
		if idx.Kind() != KindInt {
			return NewNull(), newEvalError("string index must be an integer")
		}
		i := idx.Int()
		if i < 0 || i >= int64(len(runes)) {
			return NewNull(), newEvalError("string index out of range")
		}
		return NewString(string(runes[i])), nil
	default:
		return NewNull(), newEvalError("cannot index into " + obj.Kind().String())
	}
}

func evalCall(e *Call, ctx *EvaluationContext) (Value, error) {
	member, isMember := e.Callee.(*Member)
	var receiver Value
	if isMember {
		r, err := Evaluate(member.Object, ctx)
		if err != nil {
			return NewNull(), err
		}
		if member.Optional && r.IsNull() {
			return NewNull(), nil
		}
		receiver = r
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := Evaluate(a, ctx)
		if err != nil {
			return NewNull(), err
		}
		args[i] = v
	}

	if isMember {
		if fn, ok := dispatchMethod(receiver.Kind(), member.Name); ok {
			return fn(receiver, args, ctx)
		}
		if fieldFn, ok := receiver.ObjectGet(member.Name); ok && fieldFn.Kind() == KindLambda {
			return callClosure(fieldFn.Closure(), args)
		}
		return NewNull(), newEvalError("no method '" + member.Name + "' on " + receiver.Kind().String())
	}

	if ident, ok := e.Callee.(*Identifier); ok {
		if v, ok := ctx.Get(ident.Name); ok {
			return callValue(v, args)
		}
		if reg := ctx.Registry(); reg != nil {
			if tool := reg.Lookup(ident.Name); tool != nil {
				return tool.Fn(args)
			}
		}
		return NewNull(), newEvalError("undefined function '" + ident.Name + "'")
	}

	callee, err := Evaluate(e.Callee, ctx)
	if err != nil {
		return NewNull(), err
	}
	return callValue(callee, args)
}

// callValue invokes a Lambda closure or a Tool built-in; it is the shared
// entry point for plain calls, higher-order callbacks, and pipe filters.
func callValue(callee Value, args []Value) (Value, error) {
	switch callee.Kind() {
	case KindLambda:
		return callClosure(callee.Closure(), args)
	case KindTool:
		return callee.Tool().Fn(args)
	default:
		return NewNull(), newEvalError("value of type " + callee.Kind().String() + " is not callable")
	}
}

func callClosure(c *Closure, args []Value) (Value, error) {
	scope := c.Env.Child()
	for i, p := range c.Params {
		if i < len(args) {
			scope.Set(p, args[i])
		} else {
			scope.Set(p, NewNull())
		}
	}
	return Evaluate(c.Body, scope)
}

func evalPipe(e *Pipe, ctx *EvaluationContext) (Value, error) {
	value, err := Evaluate(e.Value, ctx)
	if err != nil {
		return NewNull(), err
	}

	switch f := e.Filter.(type) {
	case *Identifier:
		return applyFilter(f.Name, value, nil, ctx)
	case *Call:
		name, ok := f.Callee.(*Identifier)
		if !ok {
			return NewNull(), newEvalError("pipe filter must be a bare name or call")
		}
		args := make([]Value, len(f.Args))
		for i, a := range f.Args {
			v, err := Evaluate(a, ctx)
			if err != nil {
				return NewNull(), err
			}
			args[i] = v
		}
		return applyFilter(name.Name, value, args, ctx)
	default:
		return NewNull(), newEvalError("pipe filter must be a bare name or call")
	}
}
