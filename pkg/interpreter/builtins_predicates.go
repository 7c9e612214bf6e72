package interpreter

import (
	rt "github.com/dimbata23/minischeme/pkg/runtime"
)

func predicate(test func(rt.Value) bool) rt.ProcFunc {
	return func(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
		return rt.Bool(test(args[0])), nil
	}
}

func isNumber(v rt.Value) bool {
	_, ok := v.(rt.Number)
	return ok
}

func isPair(v rt.Value) bool {
	_, ok := v.(*rt.Pair)
	return ok
}

// isSymbol is true for booleans too: they are symbols.
func isSymbol(v rt.Value) bool {
	_, ok := v.(rt.Symbol)
	return ok
}

// isNull also accepts a pair whose car is empty.
func isNull(v rt.Value) bool {
	if v == nil {
		return true
	}
	p, ok := v.(*rt.Pair)
	return ok && p.Car == nil
}

func procNot(_ rt.Evaluator, _ *rt.Environment, args []rt.Value) (rt.Value, error) {
	return rt.Bool(rt.IsFalse(args[0])), nil
}
