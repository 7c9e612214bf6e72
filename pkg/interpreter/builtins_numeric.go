package interpreter

import (
	"math"

	rt "github.com/dimbata23/minischeme/pkg/runtime"
)

func number(name string, v rt.Value) (int64, error) {
	n, ok := v.(rt.Number)
	if !ok {
		return 0, rt.RuntimeErrorf("%s: number expected, got %s %s", name, rt.KindOf(v), rt.Serialize(v))
	}
	return int64(n), nil
}

func procAddMult(name string, args []rt.Value, isAdd bool) (rt.Value, error) {
	var res int64 = 0
	if !isAdd {
		res = 1
	}

	for _, arg := range args {
		n, err := number(name, arg)
		if err != nil {
			return nil, err
		}
		if isAdd {
			res += n
		} else {
			res *= n
		}
	}

	return rt.Number(res), nil
}

func procAdd(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
	return procAddMult("+", args, true)
}

func procMultiply(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
	return procAddMult("*", args, false)
}

// procSubDiv folds from the first argument. A single argument is returned
// as is: (- 5) is 5 and (/ 5) is 5 in this dialect.
func procSubDiv(name string, args []rt.Value, isSub bool) (rt.Value, error) {
	res, err := number(name, args[0])
	if err != nil {
		return nil, err
	}

	for _, arg := range args[1:] {
		n, err := number(name, arg)
		if err != nil {
			return nil, err
		}
		if isSub {
			res -= n
		} else {
			if n == 0 {
				return nil, rt.RuntimeErrorf("%s: division by zero", name)
			}
			res /= n
		}
	}

	return rt.Number(res), nil
}

func procSubtract(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
	return procSubDiv("-", args, true)
}

func procDivide(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
	return procSubDiv("/", args, false)
}

// comparison forms evaluate operands one at a time and stop at the first
// pair that fails, so later operands are never evaluated.
func procComp(name string, comp func(lhs, rhs int64) bool) rt.FormFunc {
	return func(ev rt.Evaluator, env *rt.Environment, args rt.Value) (rt.Value, error) {
		var last int64
		first := true
		for args != nil {
			cell := args.(*rt.Pair)
			val, err := ev.Eval(cell.Car, env)
			if err != nil {
				return nil, err
			}
			n, err := number(name, val)
			if err != nil {
				return nil, err
			}
			if !first && !comp(last, n) {
				return rt.False, nil
			}
			last, first = n, false
			args = cell.Cdr
		}
		return rt.True, nil
	}
}

func less(lhs, rhs int64) bool      { return lhs < rhs }
func lessEq(lhs, rhs int64) bool    { return lhs <= rhs }
func greater(lhs, rhs int64) bool   { return lhs > rhs }
func greaterEq(lhs, rhs int64) bool { return lhs >= rhs }
func equal(lhs, rhs int64) bool     { return lhs == rhs }

func procExtremum(name string, start int64, pick func(a, b int64) int64) rt.ProcFunc {
	return func(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
		res := start
		for _, arg := range args {
			n, err := number(name, arg)
			if err != nil {
				return nil, err
			}
			res = pick(res, n)
		}
		return rt.Number(res), nil
	}
}

var (
	procMax = procExtremum("max", math.MinInt64, func(a, b int64) int64 { return max(a, b) })
	procMin = procExtremum("min", math.MaxInt64, func(a, b int64) int64 { return min(a, b) })
)

func procAbs(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
	n, err := number("abs", args[0])
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = -n
	}
	return rt.Number(n), nil
}
